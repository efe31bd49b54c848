package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Health reports process status and which integrations are configured.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    int(time.Since(startedAt).Seconds()),
			"integrations": gin.H{
				"groqAI": os.Getenv("GROQ_API_KEY") != "",
				"gnews":  os.Getenv("GNEWS_API_KEY") != "",
			},
		})
	}
}

type endpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var endpoints = []endpointInfo{
	{"GET", "/docs", "JSON API documentation with all endpoints"},
	{"GET", "/api/health", "Server health check with uptime"},
	{"GET", "/api/quotes/random", "Dynamic AI/ML quote with static fallback"},
	{"GET", "/api/quotes", "All fallback quotes"},
	{"GET", "/api/news", "Daily AI/ML news (up to 10 fetches/day)"},
	{"GET", "/api/news/refresh", "Force a new fetch (counts toward the daily limit)"},
	{"POST", "/api/auth/register", "Register new user"},
	{"POST", "/api/auth/login", "Login user"},
	{"GET", "/api/me", "Current authenticated user"},
	{"GET", "/api/tasks/:userId", "Get all daily tasks for user"},
	{"POST", "/api/tasks/:userId", "Save daily tasks (bulk)"},
	{"GET", "/api/courses/:userId", "Get all courses"},
	{"POST", "/api/courses/:userId", "Save courses (bulk)"},
	{"GET", "/api/papers/:userId", "Get research papers"},
	{"POST", "/api/papers/:userId", "Save research papers"},
	{"GET", "/api/sessions/:userId", "Get study sessions"},
	{"POST", "/api/sessions/:userId", "Save study sessions"},
	{"GET", "/api/bookmarks/:userId", "Get bookmarks"},
	{"POST", "/api/bookmarks/:userId", "Save bookmarks"},
	{"GET", "/api/activity/:userId", "Get activity log"},
	{"POST", "/api/activity/:userId", "Save activity log"},
	{"POST", "/api/activity/:userId/log", "Append one activity event to today's counters"},
	{"GET", "/api/activity/:userId/heatmap", "Month grid of per-day activity levels"},
	{"GET", "/api/streak/:userId", "Get streak data"},
	{"POST", "/api/streak/:userId", "Save streak"},
	{"POST", "/api/streak/:userId/recompute", "Recompute streak from today's completion state"},
	{"GET", "/api/profile/:userId", "Get user profile"},
	{"POST", "/api/profile/:userId", "Save user profile"},
	{"GET", "/api/newsread/:userId", "Get news read status"},
	{"POST", "/api/newsread/:userId", "Save news read status"},
}

// Docs lists every endpoint as JSON.
func Docs() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":     "TenX Tracking API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	}
}
