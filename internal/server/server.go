package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealprep-ai/backend/config"
	"github.com/pageza/mealprep-ai/backend/internal/api"
	"github.com/pageza/mealprep-ai/backend/internal/router"
	"github.com/pageza/mealprep-ai/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *logrus.Logger
}

// New creates a new server instance with every route registered
func New(cfg *config.Config, meals service.MealGenerator, log *logrus.Logger) *Server {
	switch env := cfg.Environment; {
	case env.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case env.IsTest(), env.IsCI():
		gin.SetMode(gin.TestMode)
	}

	mealHandler := api.NewMealHandler(meals, log)
	engine := router.SetupRouter(cfg.Environment, mealHandler, log)

	return &Server{
		router: engine,
		log:    log,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.log.WithField("addr", s.http.Addr).Info("Starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
