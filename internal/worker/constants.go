package worker

import "errors"

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolStarted     = "Worker pool started"
	LogMsgPoolStopped     = "Worker pool stopped"
)

var (
	// ErrQueueFull is returned by TryEnqueue when no slot is free
	ErrQueueFull = errors.New("worker queue is full")
	// ErrPoolStopped is returned when enqueueing after Stop
	ErrPoolStopped = errors.New("worker pool is stopped")
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
