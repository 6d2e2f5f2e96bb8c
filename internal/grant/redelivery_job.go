package grant

import "context"

// RedeliveryJob is a worker.Job that runs one redelivery sweep
type RedeliveryJob struct {
	svc Service
}

// NewRedeliveryJob creates the sweep job
func NewRedeliveryJob(svc Service) *RedeliveryJob {
	return &RedeliveryJob{svc: svc}
}

// Process implements worker.Job
func (j *RedeliveryJob) Process(ctx context.Context) error {
	j.svc.RedeliverStale(ctx)
	return nil
}

// Name identifies the job in worker logs
func (j *RedeliveryJob) Name() string { return "grant-redelivery" }
