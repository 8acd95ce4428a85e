// Package dispatch provides the deferred-work queue used to run computations
// after a request has returned: featured-speaker recomputes, announcement
// refreshes, confirmation emails. Work is fire-and-forget from the caller's
// point of view; execution is at-least-once with bounded retry, and failures
// are logged rather than surfaced.
package dispatch

import "context"

// Task is one unit of deferred work. Run must be idempotent: it may execute
// more than once, and concurrently with another enqueue of the same work.
type Task struct {
	// ID identifies the task in logs. Assigned on enqueue when empty.
	ID string
	// Name is a short label for logs, e.g. "featured-speakers".
	Name string
	// Run performs the work. A non-nil error triggers a retry.
	Run func(ctx context.Context) error
}

// Dispatcher accepts deferred work. Enqueue never blocks on execution and
// exposes no completion signal.
type Dispatcher interface {
	Enqueue(task Task)
}
