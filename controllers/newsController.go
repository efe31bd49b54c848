package controllers

import (
	"net/http"
	"strings"

	"github.com/hitenstark10/tenx-tracking/services"

	"github.com/gin-gonic/gin"
)

// parseBookmarked splits the ?bookmarked= query into ids. Malformed input
// degrades to an empty list, never an error.
func parseBookmarked(c *gin.Context) []string {
	raw := c.Query("bookmarked")
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// GetNews serves today's article pool. A persistence failure is only a
// durability loss here, so the in-memory result is still returned.
func GetNews(cache *services.NewsCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		feed, _ := cache.Get(c.Request.Context(), parseBookmarked(c))
		c.JSON(http.StatusOK, feed)
	}
}

// RefreshNews explicitly retries the fetch step. Unlike GetNews, a
// persistence failure on an explicit refresh is surfaced.
func RefreshNews(cache *services.NewsCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		feed, err := cache.Refresh(c.Request.Context(), parseBookmarked(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist news cache"})
			return
		}
		c.JSON(http.StatusOK, feed)
	}
}
