// Package async runs curation jobs as detached background units of work,
// decoupled from the request that created them. Each job runs on its own
// worker goroutine under a bounded timeout; failures are observed by the
// runner and folded into the job record, never silently dropped.
package async

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Runner executes one job end to end. Implementations are responsible for
// recording failure state on the job before returning an error.
type Runner interface {
	Run(ctx context.Context, jobID uuid.UUID) error
}

type task struct {
	jobID       uuid.UUID
	submittedAt time.Time
}

// Queue is a bounded in-process worker queue over a Runner.
type Queue struct {
	runner  Runner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	tasks  chan task
	wg     sync.WaitGroup
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.tasks = make(chan task, n)
		}
	}
}

func WithRunTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(runner Runner, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		runner:  runner,
		logger:  logger,
		workers: 4,
		timeout: 10 * time.Minute,
		tasks:   make(chan task, 256),
	}
	for _, opt := range opts {
		opt(q)
	}
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Dispatch enqueues a job without blocking. A full or shut-down queue is an
// error so callers can record the job as undispatched.
func (q *Queue) Dispatch(_ context.Context, jobID uuid.UUID) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return fmt.Errorf("queue is shut down")
	}
	select {
	case q.tasks <- task{jobID: jobID, submittedAt: time.Now()}:
		return nil
	default:
		return fmt.Errorf("queue is full")
	}
}

// Shutdown stops intake and waits for in-flight jobs, bounded by ctx.
func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.tasks)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("queue shutdown timed out with jobs in flight")
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for t := range q.tasks {
		q.run(t)
	}
}

func (q *Queue) run(t task) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("job run panicked", "job_id", t.jobID, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	start := time.Now()
	if err := q.runner.Run(ctx, t.jobID); err != nil {
		q.logger.Error("job run failed",
			"job_id", t.jobID,
			"error", err,
			"queued_ms", start.Sub(t.submittedAt).Milliseconds(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return
	}
	q.logger.Info("job run finished",
		"job_id", t.jobID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
