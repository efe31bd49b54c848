package main

import (
	"log"
	"os"

	"github.com/hitenstark10/tenx-tracking/config"
	"github.com/hitenstark10/tenx-tracking/controllers"
	"github.com/hitenstark10/tenx-tracking/helpers"
	"github.com/hitenstark10/tenx-tracking/routes"
	"github.com/hitenstark10/tenx-tracking/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	log.Println("Starting application...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	key := config.GenerateRandomKey()
	helpers.SetJWTKey(key)

	// News cache: one bucket per process, persisted for restart recovery.
	// An empty GNEWS_API_KEY disables external fetches and the cache
	// degrades to curated content.
	var fetcher services.Fetcher
	if apiKey := os.Getenv("GNEWS_API_KEY"); apiKey != "" {
		fetcher = services.NewGNewsFetcher(apiKey)
	}
	newsCache := services.NewNewsCache(fetcher, services.NewMongoBucketStore())

	quotes := services.NewQuoteGenerator(os.Getenv("GROQ_API_KEY"), os.Getenv("GROQ_MODEL"))

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("FRONTEND_URL"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	routes.SetupRoutes(api, newsCache, quotes)

	r.GET("/docs", controllers.Docs())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
