// Command api is the Statline API server.
//
// Usage:
//
//	statline-api
//	API_PORT=8080 statline-api

// @title Statline API
// @version 1.0.0
// @description NBA player stats explorer: scrapes the basketball-reference per-game table for a season, caches it in-process, and serves filtering, analytics views, and CSV export.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/courtside/statline/internal/api"
	"github.com/courtside/statline/internal/bbref"
	"github.com/courtside/statline/internal/cache"
	"github.com/courtside/statline/internal/config"

	_ "github.com/courtside/statline/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Composition root: the season cache and the scrape client are created
	// here and injected everywhere they are used.
	store := cache.New(cfg.MaxYear, cfg.CacheEnabled)
	logger.Info("Season cache initialized", "enabled", cfg.CacheEnabled)

	client := bbref.NewClient(cfg.ScrapeBaseURL, cfg.ScrapeUserAgent,
		cfg.ScrapePerMinute, cfg.ScrapeTimeout, cfg.MinYear, cfg.MaxYear, logger)
	logger.Info("Scrape client ready",
		"base_url", cfg.ScrapeBaseURL,
		"timeout", cfg.ScrapeTimeout,
		"years", fmt.Sprintf("%d-%d", cfg.MinYear, cfg.MaxYear))

	// Create router
	router := api.NewRouter(store, client, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Statline API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
