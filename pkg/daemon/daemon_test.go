package daemon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/host"
	"github.com/punchd-io/punchd/pkg/models"
)

type fakeHost struct {
	sessions []host.SessionInfo
	messages map[string][]map[string]any
	children map[string][]string
	events   []models.HostEvent
	streamed bool
}

func (f *fakeHost) StreamEvents(ctx context.Context, handle func(models.HostEvent) error) error {
	f.streamed = true
	for _, ev := range f.events {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := handle(ev); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeHost) ListSessions(_ context.Context) ([]host.SessionInfo, error) {
	return f.sessions, nil
}

func (f *fakeHost) ListMessages(_ context.Context, sessionID string) ([]map[string]any, error) {
	return f.messages[sessionID], nil
}

func (f *fakeHost) ListChildren(_ context.Context, sessionID string) ([]string, error) {
	return f.children[sessionID], nil
}

type memStore struct {
	mu        sync.Mutex
	punches   map[string]*models.Punch // keyed by source hash
	sessions  map[string]models.UpsertSessionRequest
	messages  []models.WriteMessageRequest
	toolCalls []models.WriteToolCallRequest
	childRels map[[2]string]bool
	punchErr  error
}

func newMemStore() *memStore {
	return &memStore{
		punches:   make(map[string]*models.Punch),
		sessions:  make(map[string]models.UpsertSessionRequest),
		childRels: make(map[[2]string]bool),
	}
}

func (m *memStore) WritePunch(_ context.Context, p *models.Punch) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.punchErr != nil {
		return false, m.punchErr
	}
	if _, ok := m.punches[p.SourceHash]; ok {
		return false, nil
	}
	m.punches[p.SourceHash] = p
	return true, nil
}

func (m *memStore) UpsertSession(_ context.Context, req models.UpsertSessionRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[req.SessionID] = req
	return nil
}

func (m *memStore) WriteMessage(_ context.Context, req models.WriteMessageRequest) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, req)
	return true, nil
}

func (m *memStore) WriteToolCall(_ context.Context, req models.WriteToolCallRequest) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toolCalls = append(m.toolCalls, req)
	return true, nil
}

func (m *memStore) WriteChildRelation(_ context.Context, parentID, childID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]string{parentID, childID}
	if m.childRels[key] {
		return false, nil
	}
	m.childRels[key] = true
	return true, nil
}

func (m *memStore) SyncChildRelations(_ context.Context) (int, error) {
	return 0, nil
}

func (m *memStore) punchesByKey(key string) []*models.Punch {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Punch
	for _, p := range m.punches {
		if p.PunchKey == key {
			out = append(out, p)
		}
	}
	return out
}

type recordingDetections struct {
	mu         sync.Mutex
	detections []models.LoopDetection
}

func (r *recordingDetections) Submit(d models.LoopDetection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detections = append(r.detections, d)
}

func toolEvent(sessionID, tool, status string) models.HostEvent {
	return models.HostEvent{
		Type: models.EventMessagePartUpdated,
		Properties: map[string]any{
			"part": map[string]any{
				"type":      "tool",
				"sessionID": sessionID,
				"tool":      tool,
				"state": map[string]any{
					"status": status,
					"time":   map[string]any{"end": float64(1700000000000)},
				},
			},
		},
	}
}

func TestDaemon_HandleEvent(t *testing.T) {
	t.Run("tool event mints a punch and a tool call row", func(t *testing.T) {
		store := newMemStore()
		d := New(&fakeHost{}, store, nil, DefaultConfig())

		err := d.handleEvent(context.Background(), toolEvent("s1", "readFile", "completed"))
		require.NoError(t, err)
		assert.Len(t, store.punchesByKey("readFile"), 1)
		require.Len(t, store.toolCalls, 1)
		assert.Equal(t, "readFile", store.toolCalls[0].ToolName)
		assert.Equal(t, "s1", store.toolCalls[0].SessionID)
	})

	t.Run("unclassifiable event writes nothing", func(t *testing.T) {
		store := newMemStore()
		d := New(&fakeHost{}, store, nil, DefaultConfig())

		err := d.handleEvent(context.Background(), models.HostEvent{Type: "server.connected"})
		require.NoError(t, err)
		assert.Empty(t, store.punches)
	})

	t.Run("punch write failure propagates", func(t *testing.T) {
		store := newMemStore()
		store.punchErr = errors.New("db down")
		d := New(&fakeHost{}, store, nil, DefaultConfig())

		err := d.handleEvent(context.Background(), toolEvent("s1", "bash", "completed"))
		assert.Error(t, err)
	})

	t.Run("session_completed records children", func(t *testing.T) {
		store := newMemStore()
		h := &fakeHost{children: map[string][]string{"s1": {"c1", "c2"}}}
		d := New(h, store, nil, DefaultConfig())

		ev := models.HostEvent{
			Type: models.EventSessionUpdated,
			Properties: map[string]any{
				"info": map[string]any{"id": "s1", "status": "completed"},
			},
		}
		require.NoError(t, d.handleEvent(context.Background(), ev))

		assert.True(t, store.childRels[[2]string{"s1", "c1"}])
		assert.True(t, store.childRels[[2]string{"s1", "c2"}])
		assert.Len(t, store.punchesByKey("child_spawned:c1"), 1)
		assert.Len(t, store.punchesByKey("child_spawned:c2"), 1)
		// Session row reflects the terminal status.
		assert.Equal(t, "completed", store.sessions["s1"].Status)
	})

	t.Run("non-completed session.updated upserts without a punch", func(t *testing.T) {
		store := newMemStore()
		d := New(&fakeHost{}, store, nil, DefaultConfig())

		ev := models.HostEvent{
			Type: models.EventSessionUpdated,
			Properties: map[string]any{
				"info": map[string]any{"id": "s1", "status": "running"},
			},
		}
		require.NoError(t, d.handleEvent(context.Background(), ev))
		assert.Empty(t, store.punches)
		assert.Equal(t, "running", store.sessions["s1"].Status)
	})
}

func TestDaemon_Detection(t *testing.T) {
	store := newMemStore()
	detections := &recordingDetections{}
	cfg := DefaultConfig()
	cfg.DetectorConfig.MaxSteps = 3
	d := New(&fakeHost{}, store, detections, cfg)

	stepEvent := func(i int) models.HostEvent {
		return models.HostEvent{
			Type: models.EventMessagePartUpdated,
			Properties: map[string]any{
				"part": map[string]any{
					"type":      "step-finish",
					"sessionID": "s1",
					"seq":       float64(i),
				},
			},
		}
	}

	for i := 0; i < 6; i++ {
		require.NoError(t, d.handleEvent(context.Background(), stepEvent(i)))
	}

	// Exactly one detection despite the threshold staying exceeded.
	require.Len(t, detections.detections, 1)
	assert.Equal(t, "s1", detections.detections[0].SessionID)
	assert.Equal(t, models.LoopStepOverflow, detections.detections[0].Classification)
}

func TestDaemon_DetectorEviction(t *testing.T) {
	completedEvent := func(id string) models.HostEvent {
		return models.HostEvent{
			Type: models.EventSessionUpdated,
			Properties: map[string]any{
				"info": map[string]any{"id": id, "status": "completed"},
			},
		}
	}
	deletedEvent := func(id string) models.HostEvent {
		return models.HostEvent{
			Type: models.EventSessionDeleted,
			Properties: map[string]any{
				"info": map[string]any{"id": id},
			},
		}
	}

	t.Run("completed and deleted sessions drop detector state", func(t *testing.T) {
		d := New(&fakeHost{}, newMemStore(), &recordingDetections{}, DefaultConfig())

		require.NoError(t, d.handleEvent(context.Background(), toolEvent("s1", "bash", "completed")))
		require.NoError(t, d.handleEvent(context.Background(), toolEvent("s2", "bash", "completed")))
		require.Len(t, d.detectors, 2)

		require.NoError(t, d.handleEvent(context.Background(), completedEvent("s1")))
		assert.NotContains(t, d.detectors, "s1")
		assert.Contains(t, d.detectors, "s2")

		require.NoError(t, d.handleEvent(context.Background(), deletedEvent("s2")))
		assert.Empty(t, d.detectors)
	})

	t.Run("triggered marker cleared once the session ends", func(t *testing.T) {
		detections := &recordingDetections{}
		cfg := DefaultConfig()
		cfg.DetectorConfig.MaxCostUSD = 0.01
		d := New(&fakeHost{}, newMemStore(), detections, cfg)

		ev := toolEvent("s1", "bash", "completed")
		part := ev.Properties["part"].(map[string]any)
		part["cost"] = 0.5
		require.NoError(t, d.handleEvent(context.Background(), ev))
		require.Len(t, detections.detections, 1)
		require.True(t, d.triggered["s1"])

		require.NoError(t, d.handleEvent(context.Background(), completedEvent("s1")))
		assert.Empty(t, d.triggered)
		assert.Empty(t, d.detectors)
	})
}

func TestDaemon_CatchUp(t *testing.T) {
	now := time.Now()
	h := &fakeHost{
		sessions: []host.SessionInfo{
			{ID: "recent", Status: "idle", UpdatedAt: now.Add(-time.Hour)},
			{ID: "stale", Status: "completed", UpdatedAt: now.Add(-48 * time.Hour)},
		},
		messages: map[string][]map[string]any{
			"recent": {
				{
					"parts": []any{
						map[string]any{
							"type":  "tool",
							"tool":  "bash",
							"state": map[string]any{"status": "completed"},
						},
					},
				},
			},
		},
		children: map[string][]string{"recent": {"child-1"}},
	}
	store := newMemStore()
	d := New(h, store, nil, DefaultConfig())

	require.NoError(t, d.catchUp(context.Background()))

	// Only the recent session is replayed.
	assert.Len(t, store.punchesByKey("session_created"), 1)
	assert.Len(t, store.punchesByKey("bash"), 1)
	assert.Empty(t, store.punchesByKey("session_completed"))
	assert.True(t, store.childRels[[2]string{"recent", "child-1"}])
	_, staleSeen := store.sessions["stale"]
	assert.False(t, staleSeen)
}

func TestDaemon_CatchUpIdempotent(t *testing.T) {
	h := &fakeHost{
		sessions: []host.SessionInfo{
			{ID: "s1", Status: "idle", UpdatedAt: time.Now()},
		},
		messages: map[string][]map[string]any{
			"s1": {
				map[string]any{
					"type":  "tool",
					"tool":  "bash",
					"state": map[string]any{"status": "completed"},
				},
			},
		},
	}
	store := newMemStore()
	d := New(h, store, nil, DefaultConfig())

	require.NoError(t, d.catchUp(context.Background()))
	first := len(store.punches)
	require.NoError(t, d.catchUp(context.Background()))
	assert.Equal(t, first, len(store.punches))
}

func TestDaemon_RunAndStop(t *testing.T) {
	h := &fakeHost{
		events: []models.HostEvent{toolEvent("s1", "read", "completed")},
	}
	store := newMemStore()
	d := New(h, store, nil, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := d.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateTerminated, d.State())
	assert.True(t, h.streamed)
	assert.Len(t, store.punchesByKey("read"), 1)
}
