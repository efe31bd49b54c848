package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/hitenstark10/tenx-tracking/helpers"
	"github.com/hitenstark10/tenx-tracking/models"
	"github.com/hitenstark10/tenx-tracking/services"

	"github.com/gin-gonic/gin"
)

// dataResource describes one per-user JSON document the frontend persists.
// Key is both the request/response field name and distinct from the
// storage resource so the wire shape matches the frontend's.
type dataResource struct {
	Route    string
	Resource string
	Key      string
	Empty    string // JSON default served before first write
}

var dataResources = []dataResource{
	{Route: "tasks", Resource: "tasks", Key: "tasks", Empty: "[]"},
	{Route: "courses", Resource: "courses", Key: "courses", Empty: "[]"},
	{Route: "papers", Resource: "papers", Key: "papers", Empty: "[]"},
	{Route: "sessions", Resource: "sessions", Key: "sessions", Empty: "[]"},
	{Route: "bookmarks", Resource: "bookmarks", Key: "bookmarks", Empty: "[]"},
	{Route: "activity", Resource: "activity", Key: "log", Empty: "[]"},
	{Route: "streak", Resource: "streak", Key: "streak", Empty: `{"count":0,"lastDate":null}`},
	{Route: "profile", Resource: "profile", Key: "profile", Empty: "{}"},
	{Route: "newsread", Resource: "newsread", Key: "newsRead", Empty: "[]"},
}

// RegisterDataRoutes mounts GET/POST pairs for every per-user document.
func RegisterDataRoutes(router *gin.RouterGroup) {
	for _, res := range dataResources {
		res := res
		router.GET("/"+res.Route+"/:userId", getUserData(res))
		router.POST("/"+res.Route+"/:userId", saveUserData(res))
	}
}

func getUserData(res dataResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := services.GetUserDoc(res.Resource, c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if raw == nil {
			raw = json.RawMessage(res.Empty)
		}
		c.JSON(http.StatusOK, gin.H{res.Key: raw})
	}
}

func saveUserData(res dataResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]json.RawMessage
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		data, ok := body[res.Key]
		if !ok {
			data, ok = body["data"]
		}
		if !ok {
			data = json.RawMessage(res.Empty)
		}

		if err := services.SaveUserDoc(res.Resource, c.Param("userId"), data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": res.Key + " saved"})
	}
}

// RecomputeStreak re-derives the consecutive-day counter from the user's
// full completion state and persists it. Called by the frontend after any
// completion-affecting mutation.
func RecomputeStreak() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var (
			tasks    []models.DailyTask
			courses  []models.Course
			papers   []models.ResearchPaper
			newsRead []string
			streak   models.Streak
		)
		if err := services.LoadUserDoc("tasks", userID, &tasks); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := services.LoadUserDoc("courses", userID, &courses); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := services.LoadUserDoc("papers", userID, &papers); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := services.LoadUserDoc("newsread", userID, &newsRead); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := services.LoadUserDoc("streak", userID, &streak); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		next := services.CalculateStreak(tasks, streak, courses, papers, newsRead, helpers.Today())

		if err := services.StoreUserDoc("streak", userID, next); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"streak": next})
	}
}

// LogActivity appends a delta to today's activity counters. The caller
// invokes it once per qualifying event, never per render.
func LogActivity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var body struct {
			Category string `json:"category"`
			Delta    int    `json:"delta"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		switch body.Category {
		case "tasks", "curriculum", "papers", "resources", "articlesRead":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown activity category"})
			return
		}
		if body.Delta == 0 {
			body.Delta = 1
		}

		var activityLog []models.ActivityEntry
		if err := services.LoadUserDoc("activity", userID, &activityLog); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		activityLog = services.ApplyActivity(activityLog, helpers.Today(), body.Category, body.Delta)

		if err := services.StoreUserDoc("activity", userID, activityLog); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"log": activityLog})
	}
}

// ActivityHeatmap renders a month of per-day activity levels for the
// profile heatmap.
func ActivityHeatmap() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		now := time.Now().UTC()
		year := now.Year()
		month := int(now.Month())
		if y := c.Query("year"); y != "" {
			if n, err := strconv.Atoi(y); err == nil && n > 0 {
				year = n
			}
		}
		if m := c.Query("month"); m != "" {
			if n, err := strconv.Atoi(m); err == nil && n >= 1 && n <= 12 {
				month = n
			}
		}

		var (
			activityLog []models.ActivityEntry
			tasks       []models.DailyTask
			courses     []models.Course
			papers      []models.ResearchPaper
		)
		if err := services.LoadUserDoc("activity", userID, &activityLog); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := services.LoadUserDoc("tasks", userID, &tasks); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := services.LoadUserDoc("courses", userID, &courses); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := services.LoadUserDoc("papers", userID, &papers); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		weeks := services.HeatmapMonth(year, month, activityLog, tasks, courses, papers, helpers.Today())
		c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "weeks": weeks})
	}
}
