package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mealprep-ai/backend/config"
	"github.com/pageza/mealprep-ai/backend/internal/logger"
	"github.com/pageza/mealprep-ai/backend/internal/server"
	"github.com/pageza/mealprep-ai/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel, os.Stdout)

	// Initialize services
	llmClient := service.NewLLMClient(cfg)
	mealService := service.NewMealService(llmClient, log)

	// Create and start server
	srv := server.New(cfg, mealService, log)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Received signal")
	}

	// Gracefully shutdown the server
	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
