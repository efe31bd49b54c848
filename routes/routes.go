package routes

import (
	"github.com/hitenstark10/tenx-tracking/controllers"
	"github.com/hitenstark10/tenx-tracking/middleware"
	"github.com/hitenstark10/tenx-tracking/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.RouterGroup, news *services.NewsCache, quotes *services.QuoteGenerator) {
	router.GET("/health", controllers.Health())

	router.POST("/auth/register", controllers.Register())
	router.POST("/auth/login", controllers.Login())

	router.GET("/quotes/random", controllers.RandomQuote(quotes))
	router.GET("/quotes", controllers.AllQuotes())

	router.GET("/news", controllers.GetNews(news))
	router.GET("/news/refresh", controllers.RefreshNews(news))

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		protected.GET("/me", controllers.GetMe())

		// Per-user documents (a user may only touch their own)
		owned := protected.Group("/")
		owned.Use(middleware.RequireOwnUser())
		{
			controllers.RegisterDataRoutes(owned)
			owned.POST("/streak/:userId/recompute", controllers.RecomputeStreak())
			owned.POST("/activity/:userId/log", controllers.LogActivity())
			owned.GET("/activity/:userId/heatmap", controllers.ActivityHeatmap())
		}
	}
}
