package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	mu    sync.Mutex
	runs  []uuid.UUID
	block chan struct{}
	err   error
}

func (r *recordingRunner) Run(_ context.Context, jobID uuid.UUID) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	r.runs = append(r.runs, jobID)
	r.mu.Unlock()
	return r.err
}

func (r *recordingRunner) ran() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.runs...)
}

func TestQueueRunsDispatchedJobs(t *testing.T) {
	runner := &recordingRunner{}
	q := NewQueue(runner, nil, WithWorkers(2))

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, q.Dispatch(context.Background(), id))
	}

	q.Shutdown(context.Background())
	require.ElementsMatch(t, ids, runner.ran())
}

func TestQueueRunnerErrorDoesNotStopWorkers(t *testing.T) {
	runner := &recordingRunner{err: errors.New("boom")}
	q := NewQueue(runner, nil, WithWorkers(1))

	require.NoError(t, q.Dispatch(context.Background(), uuid.New()))
	require.NoError(t, q.Dispatch(context.Background(), uuid.New()))

	q.Shutdown(context.Background())
	require.Len(t, runner.ran(), 2)
}

func TestQueueRejectsWhenFull(t *testing.T) {
	block := make(chan struct{})
	runner := &recordingRunner{block: block}
	q := NewQueue(runner, nil, WithWorkers(1), WithQueueSize(1))

	// First dispatch is picked up by the (blocked) worker, second fills the
	// buffer; eventually a dispatch must be rejected.
	var rejected bool
	for i := 0; i < 3; i++ {
		if err := q.Dispatch(context.Background(), uuid.New()); err != nil {
			rejected = true
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.True(t, rejected)

	close(block)
	q.Shutdown(context.Background())
}

func TestQueueDispatchAfterShutdown(t *testing.T) {
	runner := &recordingRunner{}
	q := NewQueue(runner, nil)
	q.Shutdown(context.Background())

	require.Error(t, q.Dispatch(context.Background(), uuid.New()))
}

func TestQueueShutdownTwice(t *testing.T) {
	q := NewQueue(&recordingRunner{}, nil)
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}

type panickingRunner struct {
	after sync.WaitGroup
}

func (r *panickingRunner) Run(context.Context, uuid.UUID) error {
	defer r.after.Done()
	panic("unexpected")
}

func TestQueueSurvivesRunnerPanic(t *testing.T) {
	runner := &panickingRunner{}
	runner.after.Add(1)
	q := NewQueue(runner, nil, WithWorkers(1))

	require.NoError(t, q.Dispatch(context.Background(), uuid.New()))
	runner.after.Wait()
	q.Shutdown(context.Background())
}
