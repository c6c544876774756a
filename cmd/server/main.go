package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frent-client/internal/app"
	"frent-client/internal/config"
	"frent-client/internal/handler"
	"frent-client/internal/logger"
	"frent-client/internal/router"
	"frent-client/internal/validator"

	"github.com/gin-gonic/gin"
)

// @title           frent API
// @version         1.0
// @description     Backend-for-frontend over the frent movie rental service.

// @host            localhost:8081
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()

	appLogger, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	appLogger.Info("configuration loaded",
		"api", cfg.APIBaseURL,
		"journal", cfg.JournalEnabled(),
		"artwork_storage", cfg.StorageEnabled(),
	)

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Dependency graph
	a, err := app.New(cfg, appLogger, app.Options{QueueWarnings: true})
	if err != nil {
		appLogger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	// Handler layer
	r := router.Setup(&router.Config{
		AuthHandler:       handler.NewAuthHandler(a.AuthService),
		MovieHandler:      handler.NewMovieHandler(a.CatalogService),
		CollectionHandler: handler.NewCollectionHandler(a.CollectionService),
		RentalHandler:     handler.NewRentalHandler(a.RentalService),
		CheckoutHandler:   handler.NewCheckoutHandler(a.CheckoutService),
		UserHandler:       handler.NewUserHandler(a.UserAdminService),
		Authorizer:        a.Authorizer,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start warning processor
	a.Processor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	appLogger.Info("shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown error", "error", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop warning processor (waits for workers)
	a.Processor.Stop()

	appLogger.Info("server shutdown complete")
}
