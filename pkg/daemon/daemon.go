// Package daemon runs the observation loop: it consumes the agent host's
// event stream, mints punches through the classifier, persists them, and
// feeds per-session loop detectors.
package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/punchd-io/punchd/pkg/classify"
	"github.com/punchd-io/punchd/pkg/governor"
	"github.com/punchd-io/punchd/pkg/host"
	"github.com/punchd-io/punchd/pkg/models"
)

// State tracks the daemon lifecycle.
type State int32

// Daemon lifecycle states, in the order they are normally entered.
const (
	StateInitializing State = iota
	StateConnected
	StateCatchingUp
	StateStreaming
	StateReconnecting
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateConnected:
		return "connected"
	case StateCatchingUp:
		return "catching_up"
	case StateStreaming:
		return "streaming"
	case StateReconnecting:
		return "reconnecting"
	case StateShuttingDown:
		return "shutting_down"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// HostAPI is the slice of the agent-host client the daemon consumes.
type HostAPI interface {
	StreamEvents(ctx context.Context, handle func(models.HostEvent) error) error
	ListSessions(ctx context.Context) ([]host.SessionInfo, error)
	ListMessages(ctx context.Context, sessionID string) ([]map[string]any, error)
	ListChildren(ctx context.Context, sessionID string) ([]string, error)
}

// Store is the persistence surface the daemon writes through.
type Store interface {
	WritePunch(ctx context.Context, p *models.Punch) (bool, error)
	UpsertSession(ctx context.Context, req models.UpsertSessionRequest) error
	WriteMessage(ctx context.Context, req models.WriteMessageRequest) (bool, error)
	WriteToolCall(ctx context.Context, req models.WriteToolCallRequest) (bool, error)
	WriteChildRelation(ctx context.Context, parentID, childID string) (bool, error)
	SyncChildRelations(ctx context.Context) (int, error)
}

// DetectionHandler receives loop detections for asynchronous governance.
// Implementations must not block: the daemon calls Submit from the single
// event-processing goroutine.
type DetectionHandler interface {
	Submit(detection models.LoopDetection)
}

// Config controls daemon behavior.
type Config struct {
	CatchUpWindow      time.Duration // how far back catch-up replays
	InitialReconnect   time.Duration
	MaxReconnect       time.Duration
	DetectorConfig     governor.DetectorConfig
	DetectionsDisabled bool
}

// DefaultConfig returns the stock daemon configuration.
func DefaultConfig() Config {
	return Config{
		CatchUpWindow:    24 * time.Hour,
		InitialReconnect: time.Second,
		MaxReconnect:     30 * time.Second,
		DetectorConfig:   governor.DefaultDetectorConfig(),
	}
}

// Daemon is the observation loop. Event processing is single-threaded:
// persistence back-pressures ingestion by blocking the stream consumer.
type Daemon struct {
	host       HostAPI
	store      Store
	detections DetectionHandler
	config     Config
	logger     *slog.Logger

	detectors map[string]*governor.LoopDetector
	triggered map[string]bool

	state    atomic.Int32
	cancel   context.CancelFunc
	stopOnce sync.Once
	done     chan struct{}
}

// New creates a Daemon. detections may be nil when governance is disabled.
func New(hostAPI HostAPI, store Store, detections DetectionHandler, config Config) *Daemon {
	return &Daemon{
		host:       hostAPI,
		store:      store,
		detections: detections,
		config:     config,
		logger:     slog.Default(),
		detectors:  make(map[string]*governor.LoopDetector),
		triggered:  make(map[string]bool),
		done:       make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (d *Daemon) State() State {
	return State(d.state.Load())
}

func (d *Daemon) setState(s State) {
	d.state.Store(int32(s))
	d.logger.Debug("Daemon state changed", "state", s.String())
}

// Run drives the daemon to completion: catch-up, then the stream loop with
// capped exponential reconnect. It returns nil on cancellation; only a
// catch-up failure before the first stream attempt is fatal.
func (d *Daemon) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	defer cancel()
	defer close(d.done)
	defer d.setState(StateTerminated)

	d.setState(StateConnected)

	d.setState(StateCatchingUp)
	if err := d.catchUp(runCtx); err != nil {
		if runCtx.Err() != nil {
			return nil
		}
		return fmt.Errorf("catch-up failed: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = d.config.InitialReconnect
	bo.Multiplier = 2
	bo.MaxInterval = d.config.MaxReconnect
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()

	for {
		d.setState(StateStreaming)
		err := d.host.StreamEvents(runCtx, func(ev models.HostEvent) error {
			if err := d.handleEvent(runCtx, ev); err != nil {
				return err
			}
			bo.Reset()
			return nil
		})
		if runCtx.Err() != nil {
			d.setState(StateShuttingDown)
			return nil
		}
		if err != nil {
			d.logger.Warn("Event stream interrupted", "error", err)
		} else {
			d.logger.Info("Event stream ended, reconnecting")
		}

		d.setState(StateReconnecting)
		wait := bo.NextBackOff()
		select {
		case <-runCtx.Done():
			d.setState(StateShuttingDown)
			return nil
		case <-time.After(wait):
		}
	}
}

// Stop signals shutdown and waits for the run loop to exit.
func (d *Daemon) Stop() {
	d.stopOnce.Do(func() {
		if d.cancel != nil {
			d.cancel()
		}
	})
	<-d.done
}

// handleEvent processes one host event end to end: session bookkeeping,
// detail rows, punch minting, child recording, and loop detection.
func (d *Daemon) handleEvent(ctx context.Context, ev models.HostEvent) error {
	d.upsertSessionRow(ctx, ev)
	d.recordDetailRow(ctx, ev)

	punch := classify.Classify(ev)
	if punch == nil {
		return nil
	}
	if _, err := d.store.WritePunch(ctx, punch); err != nil {
		return fmt.Errorf("writing punch %s/%s: %w", punch.PunchType, punch.PunchKey, err)
	}

	if punch.PunchType == models.PunchTypeStepComplete && punch.PunchKey == "session_completed" {
		d.recordChildren(ctx, punch.TaskID)
	}

	d.feedDetector(punch)
	return nil
}

// upsertSessionRow mirrors session.* events into the sessions table. Unlike
// the classifier, this runs for every session.updated regardless of status.
func (d *Daemon) upsertSessionRow(ctx context.Context, ev models.HostEvent) {
	var status string
	switch ev.Type {
	case models.EventSessionCreated:
		status = "running"
	case models.EventSessionUpdated:
		status = ""
	case models.EventSessionIdle:
		status = "idle"
	case models.EventSessionError:
		status = "failed"
	default:
		return
	}

	info, _ := ev.Properties["info"].(map[string]any)
	if info == nil {
		return
	}
	id, _ := info["id"].(string)
	if id == "" {
		return
	}
	if s, ok := info["status"].(string); ok && s != "" {
		status = s
	}

	req := models.UpsertSessionRequest{SessionID: id, Status: status}
	if status == "completed" || status == "failed" {
		now := time.Now()
		req.CompletedAt = &now
	}
	if cost, ok := info["cost"].(float64); ok {
		req.TotalCost = &cost
	}
	if err := d.store.UpsertSession(ctx, req); err != nil {
		d.logger.Warn("Session upsert failed", "session_id", id, "error", err)
	}
}

// recordDetailRow mirrors completed tool parts and text parts into the
// tool_calls and messages tables. Failures here are logged, not raised:
// punches are the source of truth, detail rows are supplementary.
func (d *Daemon) recordDetailRow(ctx context.Context, ev models.HostEvent) {
	if ev.Type != models.EventMessagePartUpdated {
		return
	}
	part, _ := ev.Properties["part"].(map[string]any)
	if part == nil {
		return
	}
	sessionID, _ := part["sessionID"].(string)
	if sessionID == "" {
		return
	}
	partType, _ := part["type"].(string)

	switch partType {
	case "tool":
		state, _ := part["state"].(map[string]any)
		status, _ := state["status"].(string)
		if status != "completed" && status != "error" {
			return
		}
		tool, _ := part["tool"].(string)
		if tool == "" {
			tool = "unknown_tool"
		}
		req := models.WriteToolCallRequest{
			SessionID:   sessionID,
			ToolName:    tool,
			Status:      status,
			ArgsSummary: summarizeArgs(state["input"]),
			TS:          partTimestamp(part),
		}
		if errMsg, ok := state["error"].(string); ok {
			req.Error = errMsg
		}
		if _, err := d.store.WriteToolCall(ctx, req); err != nil {
			d.logger.Warn("Tool call write failed", "session_id", sessionID, "tool", tool, "error", err)
		}
	case "text":
		text, _ := part["text"].(string)
		if text == "" {
			return
		}
		req := models.WriteMessageRequest{
			SessionID:      sessionID,
			Role:           "assistant",
			ContentType:    "text",
			ContentPreview: text,
			TS:             partTimestamp(part),
		}
		if _, err := d.store.WriteMessage(ctx, req); err != nil {
			d.logger.Warn("Message write failed", "session_id", sessionID, "error", err)
		}
	}
}

// recordChildren queries the host for a completed session's children and
// records both the edges and child-spawn punches (the replayable record the
// sync pass rebuilds edges from).
func (d *Daemon) recordChildren(ctx context.Context, sessionID string) {
	children, err := d.host.ListChildren(ctx, sessionID)
	if err != nil {
		d.logger.Warn("Child listing failed", "session_id", sessionID, "error", err)
		return
	}
	for _, childID := range children {
		if _, err := d.store.WriteChildRelation(ctx, sessionID, childID); err != nil {
			d.logger.Warn("Child relation write failed",
				"parent_id", sessionID, "child_id", childID, "error", err)
			continue
		}
		if err := d.writeChildSpawnPunch(ctx, sessionID, childID); err != nil {
			d.logger.Warn("Child spawn punch failed",
				"parent_id", sessionID, "child_id", childID, "error", err)
		}
	}
}

func (d *Daemon) writeChildSpawnPunch(ctx context.Context, parentID, childID string) error {
	p := &models.Punch{
		TaskID:     parentID,
		PunchType:  models.PunchTypeWorkflow,
		PunchKey:   "child_spawned:" + childID,
		ObservedAt: time.Now(),
		SourceHash: classify.HashValue(map[string]any{
			"type":      "child_spawned",
			"parent_id": parentID,
			"child_id":  childID,
		}),
	}
	_, err := d.store.WritePunch(ctx, p)
	return err
}

// feedDetector routes the punch to its session's loop detector and submits
// at most one detection per session.
func (d *Daemon) feedDetector(punch *models.Punch) {
	if d.detections == nil || d.config.DetectionsDisabled {
		return
	}
	sessionID := punch.TaskID
	if sessionID == "" || sessionID == "unknown" {
		return
	}
	if sessionFinished(punch) {
		// The session is over; keeping its detector state around would
		// grow the maps for the daemon's lifetime.
		delete(d.detectors, sessionID)
		delete(d.triggered, sessionID)
		return
	}
	if d.triggered[sessionID] {
		return
	}

	det, ok := d.detectors[sessionID]
	if !ok {
		det = governor.NewLoopDetector(sessionID, d.config.DetectorConfig)
		d.detectors[sessionID] = det
	}
	det.Ingest(*punch)

	if detection := det.Detect(); detection != nil {
		d.triggered[sessionID] = true
		delete(d.detectors, sessionID)
		d.logger.Warn("Runaway loop detected",
			"session_id", sessionID,
			"classification", string(detection.Classification),
			"reason", detection.Reason)
		d.detections.Submit(*detection)
	}
}

// sessionFinished reports whether the punch marks the end of its session.
func sessionFinished(p *models.Punch) bool {
	switch {
	case p.PunchType == models.PunchTypeStepComplete && p.PunchKey == "session_completed":
		return true
	case p.PunchType == models.PunchTypeSessionLifecycle && p.PunchKey == "session_deleted":
		return true
	}
	return false
}

// partTimestamp extracts the part's end (or start) time so detail rows keyed
// by timestamp stay stable across live ingestion and catch-up replay.
func partTimestamp(part map[string]any) time.Time {
	if state, ok := part["state"].(map[string]any); ok {
		if ts := timeField(state["time"]); !ts.IsZero() {
			return ts
		}
	}
	if ts := timeField(part["time"]); !ts.IsZero() {
		return ts
	}
	return time.Now().UTC().Truncate(time.Millisecond)
}

func timeField(v any) time.Time {
	m, ok := v.(map[string]any)
	if !ok {
		return time.Time{}
	}
	for _, key := range []string{"end", "start"} {
		if millis, ok := m[key].(float64); ok && millis > 0 {
			return time.UnixMilli(int64(millis)).UTC()
		}
	}
	return time.Time{}
}

const maxArgsSummaryLen = 200

func summarizeArgs(input any) string {
	if input == nil {
		return ""
	}
	raw, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	s := string(raw)
	if len(s) > maxArgsSummaryLen {
		s = s[:maxArgsSummaryLen] + "..."
	}
	return s
}
