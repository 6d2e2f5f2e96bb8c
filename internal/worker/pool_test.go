package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJob struct {
	executed *int32
	done     chan struct{}
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	if j.done != nil {
		j.done <- struct{}{}
	}
	return j.err
}

type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

type panicJob struct{}

func (panicJob) Process(ctx context.Context) error { panic("boom") }
func (panicJob) Name() string                      { return "panic-job" }

func waitN(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("timed out after %d of %d jobs", i, n)
		}
	}
}

func TestPool(t *testing.T) {
	var executed int32
	done := make(chan struct{}, TestQueueSize)
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed, done: done}
	require.NoError(t, pool.Enqueue(t.Context(), job))
	require.NoError(t, pool.TryEnqueue(job))

	waitN(t, done, TestExpectedJobCount)
	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_FailingJobsDoNotKillWorkers(t *testing.T) {
	var executed int32
	done := make(chan struct{}, TestQueueSize)
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	require.NoError(t, pool.TryEnqueue(panicJob{}))
	require.NoError(t, pool.TryEnqueue(&testJob{executed: &executed, done: done, err: errors.New("nope")}))
	require.NoError(t, pool.TryEnqueue(&testJob{executed: &executed, done: done}))

	waitN(t, done, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

func TestPool_TryEnqueueFull(t *testing.T) {
	pool := NewPool(1, 1)
	var executed int32

	// Not started, so the single slot stays occupied
	require.NoError(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.ErrorIs(t, pool.TryEnqueue(&testJob{executed: &executed}), ErrQueueFull)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, pool.Enqueue(ctx, &testJob{executed: &executed}), context.DeadlineExceeded)

	pool.Stop()
	assert.ErrorIs(t, pool.TryEnqueue(&testJob{executed: &executed}), ErrPoolStopped)
}

func TestPool_StopCancelsRunningJobs(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	job := &blockingJob{started: make(chan struct{})}
	require.NoError(t, pool.TryEnqueue(job))
	<-job.started

	stopped := make(chan struct{})
	go func() {
		pool.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}

	// Stop is idempotent
	pool.Stop()
}
