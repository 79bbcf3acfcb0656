// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mergington/activity-roster/internal/config"
	"github.com/mergington/activity-roster/internal/handler"
	"github.com/mergington/activity-roster/internal/model"
	"github.com/mergington/activity-roster/internal/roster"
	"github.com/mergington/activity-roster/internal/seed"
	"github.com/mergington/activity-roster/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// ── 1. Load the seed roster ───────────────────────────────────────────
	var seedRoster model.Roster
	if cfg.SeedPath != "" {
		seedRoster, err = seed.FromFile(cfg.SeedPath)
	} else {
		seedRoster, err = seed.Default()
	}
	if err != nil {
		logger.Error("load seed roster", "error", err)
		os.Exit(1)
	}
	logger.Info("roster seeded", "activities", len(seedRoster))

	// ── 2. Wire up layers ────────────────────────────────────────────────
	store := roster.NewStore(seedRoster)
	svc := service.NewRosterService(store)
	activityHandler := handler.NewActivityHandler(svc)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := handler.Routes(activityHandler, handler.Options{
		Logger:    logger,
		StaticDir: cfg.StaticDir,
	})

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
