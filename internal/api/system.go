package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mealprep-ai/backend/config"
)

// Root returns service metadata for GET /
func Root(env config.Environment) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "MealPrep AI Backend",
			"environment": string(env),
			"docs":        "/docs",
		})
	}
}
