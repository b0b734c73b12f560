package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealprep-ai/backend/config"
	"github.com/pageza/mealprep-ai/backend/internal/api"
	"github.com/pageza/mealprep-ai/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(env config.Environment, mealHandler *api.MealHandler, log *logrus.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.CORS(),
	)

	router.GET("/", api.Root(env))

	// API routes
	mealHandler.RegisterRoutes(router.Group("/api"))

	return router
}
