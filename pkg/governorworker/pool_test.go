package governorworker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/governor"
	"github.com/punchd-io/punchd/pkg/models"
)

type fakeHost struct {
	mu        sync.Mutex
	aborted   []string
	abortErr  error
	created   []models.SessionRequest
	createErr error
}

func (f *fakeHost) Abort(_ context.Context, sessionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.abortErr != nil {
		return false, f.abortErr
	}
	f.aborted = append(f.aborted, sessionID)
	return false, nil
}

func (f *fakeHost) ListMessages(context.Context, string) ([]map[string]any, error) {
	return nil, nil
}

func (f *fakeHost) CreateSession(_ context.Context, req models.SessionRequest) (models.SessionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return models.SessionResponse{}, f.createErr
	}
	f.created = append(f.created, req)
	return models.SessionResponse{SessionID: fmt.Sprintf("fitter-%d", len(f.created)), Success: true}, nil
}

func (f *fakeHost) abortCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.aborted)
}

func newTestPool(host *fakeHost, config Config) *Pool {
	killer := governor.NewKiller(host, nil)
	diagnoser := governor.NewDiagnoser(host)
	fitter := governor.NewFitter(host, governor.DefaultFitterConfig())
	return NewPool(killer, diagnoser, fitter, config)
}

func testDetection(sessionID string) models.LoopDetection {
	return models.LoopDetection{
		SessionID:      sessionID,
		Classification: models.LoopStepOverflow,
		Reason:         "step count 120 exceeded limit 100",
		Metrics:        models.SessionMetrics{StepCount: 120, TotalCost: 2.5},
		DetectedAt:     time.Now().UTC(),
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestPool_ProcessesDetection(t *testing.T) {
	host := &fakeHost{}
	pool := newTestPool(host, Config{WorkerCount: 1, QueueSize: 4})
	pool.Start(context.Background())
	defer pool.Stop()

	pool.Submit(testDetection("sess-1"))

	waitFor(t, 2*time.Second, func() bool { return pool.Snapshot().FittersLaunched == 1 })
	stats := pool.Snapshot()
	assert.Equal(t, 1, stats.KillsCompleted)
	assert.Zero(t, stats.KillsFailed)
	assert.Zero(t, stats.Dropped)
	assert.Equal(t, 1, host.abortCount())

	host.mu.Lock()
	defer host.mu.Unlock()
	require.Len(t, host.created, 1)
	req := host.created[0]
	assert.True(t, req.AutoApprove)
	assert.Contains(t, req.Prompt, "sess-1")
}

func TestPool_KillFailureStopsPipeline(t *testing.T) {
	host := &fakeHost{abortErr: errors.New("host unreachable")}
	pool := newTestPool(host, Config{WorkerCount: 1, QueueSize: 4})
	pool.Start(context.Background())
	defer pool.Stop()

	pool.Submit(testDetection("sess-dead"))

	waitFor(t, 2*time.Second, func() bool { return pool.Snapshot().KillsFailed == 1 })
	stats := pool.Snapshot()
	assert.Zero(t, stats.KillsCompleted)
	assert.Zero(t, stats.FittersLaunched)
	assert.Zero(t, stats.FittersFailed)
}

func TestPool_DispatchFailureCounted(t *testing.T) {
	host := &fakeHost{createErr: errors.New("no capacity")}
	pool := newTestPool(host, Config{WorkerCount: 1, QueueSize: 4})
	pool.Start(context.Background())
	defer pool.Stop()

	pool.Submit(testDetection("sess-2"))

	waitFor(t, 2*time.Second, func() bool { return pool.Snapshot().FittersFailed == 1 })
	stats := pool.Snapshot()
	assert.Equal(t, 1, stats.KillsCompleted)
	assert.Zero(t, stats.FittersLaunched)
}

func TestPool_SubmitDropsWhenQueueFull(t *testing.T) {
	host := &fakeHost{}
	pool := newTestPool(host, Config{WorkerCount: 1, QueueSize: 1})
	// Never started: nothing drains the queue.
	pool.Submit(testDetection("queued"))
	pool.Submit(testDetection("dropped-1"))
	pool.Submit(testDetection("dropped-2"))

	stats := pool.Snapshot()
	assert.Equal(t, 2, stats.Dropped)
	assert.Equal(t, 1, stats.QueueDepth)
}

func TestPool_StopWaitsForWorkers(t *testing.T) {
	host := &fakeHost{}
	pool := newTestPool(host, Config{WorkerCount: 2, QueueSize: 4})
	pool.Start(context.Background())

	for i := 0; i < 3; i++ {
		pool.Submit(testDetection(fmt.Sprintf("sess-%d", i)))
	}
	waitFor(t, 2*time.Second, func() bool {
		s := pool.Snapshot()
		return s.KillsCompleted+s.KillsFailed == 3
	})
	pool.Stop()
	assert.Zero(t, pool.Snapshot().InFlight)

	// Stop is idempotent.
	pool.Stop()
}
