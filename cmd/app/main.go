// @title StormSheet API
// @version 1.0
// @description Attack resolution and at-least-once grant delivery for tabletop character sheets.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/StormSheet_Go/docs"
	"github.com/osse101/StormSheet_Go/internal/bootstrap"
	"github.com/osse101/StormSheet_Go/internal/config"
	"github.com/osse101/StormSheet_Go/internal/database"
	"github.com/osse101/StormSheet_Go/internal/server"
	"github.com/osse101/StormSheet_Go/internal/sse"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment check failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	slog.Info("Starting StormSheet",
		"environment", cfg.Environment,
		"storage", cfg.StorageBackend,
		"port", cfg.Port,
		"version", cfg.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgPool, err := bootstrap.OpenDatabase(ctx, cfg)
	if err != nil {
		slog.Error("Storage initialization failed", "error", err)
		os.Exit(1)
	}

	// A typed nil *pgxpool.Pool must not leak into the interface, or readyz
	// and shutdown would call methods on it.
	var dbPool database.Pool
	if pgPool != nil {
		dbPool = pgPool
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: eventBus,
		SSEHub:   hub,
	}); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(cfg, pgPool)
	services := bootstrap.InitializeServices(cfg, repos, publisher)
	workerPool, sched := bootstrap.StartBackgroundJobs(cfg, services.Grants)

	srv := server.NewServer(cfg.Port, server.Dependencies{
		DBPool:         dbPool,
		Combat:         services.Combat,
		Characters:     services.Characters,
		Grants:         services.Grants,
		SSEHub:         hub,
		TrustedProxies: cfg.TrustedProxies,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         workerPool,
		SSEHub:             hub,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})
}
