package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BadgerShop_Go/internal/worker"
)

type mockJob struct {
	done chan struct{}
}

func (m *mockJob) Process(ctx context.Context) error {
	select {
	case m.done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &mockJob{done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	// Wait for at least 2 runs
	timeout := time.After(time.Second)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}
