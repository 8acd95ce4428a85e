package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPool_RunsEnqueuedTasks(t *testing.T) {
	p := NewPool(2, 8, testLogger())

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		p.Enqueue(Task{Name: "t", Run: func(ctx context.Context) error {
			defer wg.Done()
			ran.Add(1)
			return nil
		}})
	}
	wg.Wait()
	p.Close()

	assert.Equal(t, int32(5), ran.Load())
}

func TestPool_RetriesUntilSuccess(t *testing.T) {
	p := NewPool(1, 1, testLogger())
	defer p.Close()

	var attempts atomic.Int32
	done := make(chan struct{})
	p.Enqueue(Task{Name: "flaky", Run: func(ctx context.Context) error {
		if attempts.Add(1) < 3 {
			return errors.New("transient")
		}
		close(done)
		return nil
	}})

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("task was not retried to completion")
	}
	assert.Equal(t, int32(3), attempts.Load())
}

func TestPool_GivesUpAfterMaxRetries(t *testing.T) {
	p := NewPool(1, 1, testLogger())
	p.maxRetries = 2

	var attempts atomic.Int32
	p.Enqueue(Task{Name: "doomed", Run: func(ctx context.Context) error {
		attempts.Add(1)
		return errors.New("permanent")
	}})
	p.Close()

	// initial attempt + maxRetries retries
	assert.Equal(t, int32(3), attempts.Load())
}

func TestPool_EnqueueAfterCloseDropsTask(t *testing.T) {
	p := NewPool(1, 1, testLogger())
	p.Close()

	var ran atomic.Bool
	p.Enqueue(Task{Name: "late", Run: func(ctx context.Context) error {
		ran.Store(true)
		return nil
	}})
	require.False(t, ran.Load())
}

func TestPool_AssignsTaskID(t *testing.T) {
	p := NewPool(1, 1, testLogger())
	defer p.Close()

	done := make(chan struct{})
	task := Task{Name: "id", Run: func(ctx context.Context) error {
		close(done)
		return nil
	}}
	p.Enqueue(task)
	<-done
}
