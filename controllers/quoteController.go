package controllers

import (
	"net/http"

	"github.com/hitenstark10/tenx-tracking/services"

	"github.com/gin-gonic/gin"
)

// RandomQuote returns an AI-generated quote, falling back to the static
// list when the generator is unreachable. Always 200.
func RandomQuote(quotes *services.QuoteGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, quotes.Random(c.Request.Context()))
	}
}

// AllQuotes returns the full fallback list.
func AllQuotes() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"total":  len(services.FallbackQuotes),
			"quotes": services.FallbackQuotes,
		})
	}
}
