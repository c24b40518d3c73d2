// Package governorworker drives the governance pipeline: loop detections
// submitted by the daemon are processed by a small worker pool that kills
// the runaway session, diagnoses the failure, and dispatches a fitter.
package governorworker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/punchd-io/punchd/pkg/governor"
	"github.com/punchd-io/punchd/pkg/models"
)

// Config controls the worker pool.
type Config struct {
	WorkerCount int
	QueueSize   int
}

// DefaultConfig returns the stock pool configuration.
func DefaultConfig() Config {
	return Config{
		WorkerCount: 2,
		QueueSize:   32,
	}
}

// Stats is a snapshot of pool activity.
type Stats struct {
	QueueDepth      int `json:"queue_depth"`
	InFlight        int `json:"in_flight"`
	KillsCompleted  int `json:"kills_completed"`
	KillsFailed     int `json:"kills_failed"`
	FittersLaunched int `json:"fitters_launched"`
	FittersFailed   int `json:"fitters_failed"`
	Dropped         int `json:"dropped"`
}

// Pool runs the kill → diagnose → fit pipeline. Each detection carries an
// independent session id, so workers share no per-session state.
type Pool struct {
	killer    *governor.Killer
	diagnoser *governor.Diagnoser
	fitter    *governor.Fitter
	config    Config
	logger    *slog.Logger

	detections chan models.LoopDetection
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	mu       sync.Mutex
	inFlight int
	stats    Stats
	started  bool
}

// NewPool creates a worker pool over the governance components.
func NewPool(killer *governor.Killer, diagnoser *governor.Diagnoser, fitter *governor.Fitter, config Config) *Pool {
	if config.WorkerCount <= 0 {
		config.WorkerCount = DefaultConfig().WorkerCount
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultConfig().QueueSize
	}
	return &Pool{
		killer:     killer,
		diagnoser:  diagnoser,
		fitter:     fitter,
		config:     config,
		logger:     slog.Default(),
		detections: make(chan models.LoopDetection, config.QueueSize),
		stopCh:     make(chan struct{}),
	}
}

// Start spawns the worker goroutines. Safe to call once; duplicate calls
// are no-ops.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		p.logger.Warn("Governor pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true
	p.mu.Unlock()

	p.logger.Info("Starting governor pool", "worker_count", p.config.WorkerCount)
	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go func(workerID int) {
			defer p.wg.Done()
			p.run(ctx, workerID)
		}(i)
	}
}

// Stop signals the workers and waits for in-flight pipelines to finish.
// A pipeline that has begun is never abandoned mid-kill.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	p.logger.Info("Governor pool stopped")
}

// Submit enqueues a detection without blocking. When the queue is full the
// detection is dropped and counted; the detector will not re-fire for the
// session, so a drop is logged loudly.
func (p *Pool) Submit(detection models.LoopDetection) {
	select {
	case p.detections <- detection:
	default:
		p.mu.Lock()
		p.stats.Dropped++
		p.mu.Unlock()
		p.logger.Error("Governor queue full, dropping detection",
			"session_id", detection.SessionID,
			"classification", string(detection.Classification))
	}
}

// Snapshot returns current pool activity counters.
func (p *Pool) Snapshot() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.stats
	s.QueueDepth = len(p.detections)
	s.InFlight = p.inFlight
	return s
}

func (p *Pool) run(ctx context.Context, workerID int) {
	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case detection := <-p.detections:
			p.process(ctx, workerID, detection)
		}
	}
}

// process runs one detection through kill, diagnose, and fit. Once started,
// the pipeline runs in a non-cancellable scope: a shutdown must not leave a
// runaway session alive after the kill decision was made.
func (p *Pool) process(ctx context.Context, workerID int, detection models.LoopDetection) {
	p.mu.Lock()
	p.inFlight++
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.inFlight--
		p.mu.Unlock()
	}()

	pipelineCtx := context.WithoutCancel(ctx)
	logger := p.logger.With("worker_id", workerID, "session_id", detection.SessionID)

	kill, err := p.killer.Kill(pipelineCtx, detection)
	if err != nil {
		p.mu.Lock()
		p.stats.KillsFailed++
		p.mu.Unlock()
		logger.Error("Kill failed", "error", err)
		return
	}
	p.mu.Lock()
	p.stats.KillsCompleted++
	p.mu.Unlock()
	logger.Info("Session killed",
		"classification", string(detection.Classification),
		"already_dead", kill.AlreadyDead)

	report := p.diagnoser.Diagnose(pipelineCtx, kill)
	logger.Info("Session diagnosed",
		"category", string(report.Diagnosis.Category),
		"confidence", report.Diagnosis.Confidence)

	result := p.fitter.Dispatch(pipelineCtx, report, &kill)
	p.mu.Lock()
	if result.Success {
		p.stats.FittersLaunched++
	} else {
		p.stats.FittersFailed++
	}
	p.mu.Unlock()
	if result.Success {
		logger.Info("Fitter dispatched", "fitter_session_id", result.FitterSessionID)
	} else {
		logger.Error("Fitter dispatch failed", "error", result.Error)
	}
}
