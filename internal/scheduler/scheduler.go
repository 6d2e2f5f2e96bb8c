package scheduler

import (
	"errors"
	"sync"
	"time"

	"github.com/osse101/StormSheet_Go/internal/logger"
	"github.com/osse101/StormSheet_Go/internal/worker"
)

const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobSkipped   = "Worker queue full, skipping scheduled run"
)

// Enqueuer is the part of worker.Pool the scheduler needs
type Enqueuer interface {
	TryEnqueue(job worker.Job) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool Enqueuer
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run happens
// one interval after scheduling.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	logger.Info(LogMsgJobScheduled, "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// A busy pool skips this tick; the next tick tries again.
				if err := s.workerPool.TryEnqueue(job); err != nil {
					if errors.Is(err, worker.ErrPoolStopped) {
						return
					}
					logger.Warn(LogMsgJobSkipped, "job", name, "error", err)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
