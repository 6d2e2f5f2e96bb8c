package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/StormSheet_Go/internal/database"
	"github.com/osse101/StormSheet_Go/internal/event"
	"github.com/osse101/StormSheet_Go/internal/scheduler"
	"github.com/osse101/StormSheet_Go/internal/server"
	"github.com/osse101/StormSheet_Go/internal/sse"
	"github.com/osse101/StormSheet_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	SSEHub             *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	DBPool             database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. SSE hub (open streams never finish on their own)
// 2. HTTP server (stop accepting new requests)
// 3. Scheduler then worker pool (no new sweeps, finish running ones)
// 4. Event publisher (flush pending events)
// 5. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.SSEHub != nil {
		components.SSEHub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
