package bootstrap

import (
	"log/slog"

	"github.com/osse101/StormSheet_Go/internal/config"
	"github.com/osse101/StormSheet_Go/internal/grant"
	"github.com/osse101/StormSheet_Go/internal/metrics"
	"github.com/osse101/StormSheet_Go/internal/scheduler"
	"github.com/osse101/StormSheet_Go/internal/worker"
)

// StartBackgroundJobs starts the worker pool and schedules the grant
// redelivery sweep and the pending-grants gauge refresh on it.
func StartBackgroundJobs(cfg *config.Config, grants grant.Service) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(JobNameGrantRedelivery, cfg.RedeliveryInterval, grant.NewRedeliveryJob(grants))
	sched.Schedule(JobNamePendingGauge, cfg.RedeliveryInterval, metrics.NewPendingGrantsJob(grants))

	slog.Info(LogMsgBackgroundJobsReady,
		"workers", cfg.WorkerCount,
		"redelivery_interval", cfg.RedeliveryInterval,
		"redelivery_after", cfg.RedeliveryAfter)

	return pool, sched
}
