package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const (
	defaultMaxRetries      = 5
	defaultInitialInterval = 250 * time.Millisecond
)

// Pool runs tasks on a fixed set of workers fed by a buffered queue. Tasks for
// different subjects may run in parallel and tasks for the same subject may
// interleave; callers rely on idempotent task bodies, not on ordering.
type Pool struct {
	tasks      chan Task
	logger     *slog.Logger
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	maxRetries uint64

	mu     sync.Mutex
	closed bool
}

// NewPool returns a Pool with the given worker count and queue capacity.
// Call Start before enqueueing and Close on shutdown.
func NewPool(workers, queueSize int, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		tasks:      make(chan Task, queueSize),
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		maxRetries: defaultMaxRetries,
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Enqueue submits the task. It blocks only while the queue is full, never on
// execution. Enqueueing after Close drops the task with a log line.
func (p *Pool) Enqueue(task Task) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Warn("task dropped, dispatcher closed", "task", task.Name, "task_id", task.ID)
		return
	}
	p.tasks <- task
	p.mu.Unlock()
}

// Close stops accepting tasks and waits for queued work to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()
	p.wg.Wait()
	p.cancel()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

func (p *Pool) run(task Task) {
	start := time.Now()
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = defaultInitialInterval

	attempts := 0
	operation := func() error {
		attempts++
		return task.Run(p.ctx)
	}
	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, p.maxRetries), p.ctx))
	if err != nil {
		// The original writer has long returned; nothing to surface to.
		p.logger.Error("task failed",
			"task", task.Name,
			"task_id", task.ID,
			"attempts", attempts,
			"duration_ms", time.Since(start).Milliseconds(),
			"err", err,
		)
		return
	}
	p.logger.Debug("task done",
		"task", task.Name,
		"task_id", task.ID,
		"attempts", attempts,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
