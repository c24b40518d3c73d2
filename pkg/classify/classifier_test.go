package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/models"
)

func toolEvent(sessionID, tool, status string) models.HostEvent {
	return models.HostEvent{
		Type: models.EventMessagePartUpdated,
		Properties: map[string]any{
			"part": map[string]any{
				"type":      "tool",
				"sessionID": sessionID,
				"tool":      tool,
				"state":     map[string]any{"status": status},
			},
		},
	}
}

func TestClassify_ToolCall(t *testing.T) {
	t.Run("completed tool part mints a tool_call punch", func(t *testing.T) {
		punch := Classify(toolEvent("s1", "readFile", "completed"))
		require.NotNil(t, punch)
		assert.Equal(t, models.PunchTypeToolCall, punch.PunchType)
		assert.Equal(t, "readFile", punch.PunchKey)
		assert.Equal(t, "s1", punch.TaskID)
		assert.NotEmpty(t, punch.SourceHash)
	})

	t.Run("running tool part mints nothing", func(t *testing.T) {
		assert.Nil(t, Classify(toolEvent("s1", "readFile", "running")))
	})

	t.Run("pending tool part mints nothing", func(t *testing.T) {
		assert.Nil(t, Classify(toolEvent("s1", "readFile", "pending")))
	})

	t.Run("error tool part mints a tool_call punch", func(t *testing.T) {
		punch := Classify(toolEvent("s1", "bash", "error"))
		require.NotNil(t, punch)
		assert.Equal(t, models.PunchTypeToolCall, punch.PunchType)
		assert.Equal(t, "bash", punch.PunchKey)
	})

	t.Run("missing tool name falls back to unknown_tool", func(t *testing.T) {
		ev := toolEvent("s1", "", "completed")
		punch := Classify(ev)
		require.NotNil(t, punch)
		assert.Equal(t, "unknown_tool", punch.PunchKey)
	})

	t.Run("metrics are extracted from the part", func(t *testing.T) {
		ev := toolEvent("s1", "bash", "completed")
		part := ev.Properties["part"].(map[string]any)
		part["cost"] = 0.42
		part["tokens"] = map[string]any{
			"input":     float64(100),
			"output":    float64(50),
			"reasoning": float64(7),
		}
		punch := Classify(ev)
		require.NotNil(t, punch)
		require.NotNil(t, punch.Cost)
		assert.InDelta(t, 0.42, *punch.Cost, 1e-9)
		require.NotNil(t, punch.TokensInput)
		assert.Equal(t, int64(100), *punch.TokensInput)
		require.NotNil(t, punch.TokensOutput)
		assert.Equal(t, int64(50), *punch.TokensOutput)
		require.NotNil(t, punch.TokensReasoning)
		assert.Equal(t, int64(7), *punch.TokensReasoning)
	})

	t.Run("tool input/output produce a content hash", func(t *testing.T) {
		ev := toolEvent("s1", "readFile", "completed")
		state := ev.Properties["part"].(map[string]any)["state"].(map[string]any)
		state["input"] = map[string]any{"path": "main.go"}
		state["output"] = "package main"
		punch := Classify(ev)
		require.NotNil(t, punch)
		assert.NotEmpty(t, punch.ContentHash)

		// Identical content hashes identically regardless of envelope.
		ev2 := toolEvent("s2", "readFile", "completed")
		state2 := ev2.Properties["part"].(map[string]any)["state"].(map[string]any)
		state2["input"] = map[string]any{"path": "main.go"}
		state2["output"] = "package main"
		punch2 := Classify(ev2)
		require.NotNil(t, punch2)
		assert.Equal(t, punch.ContentHash, punch2.ContentHash)
	})
}

func TestClassify_Steps(t *testing.T) {
	partEvent := func(partType string) models.HostEvent {
		return models.HostEvent{
			Type: models.EventMessagePartUpdated,
			Properties: map[string]any{
				"part": map[string]any{"type": partType, "sessionID": "s1"},
			},
		}
	}

	t.Run("step-start mints step_start_observed", func(t *testing.T) {
		punch := Classify(partEvent("step-start"))
		require.NotNil(t, punch)
		assert.Equal(t, models.PunchTypeStepComplete, punch.PunchType)
		assert.Equal(t, "step_start_observed", punch.PunchKey)
	})

	t.Run("step-finish mints step_finished", func(t *testing.T) {
		punch := Classify(partEvent("step-finish"))
		require.NotNil(t, punch)
		assert.Equal(t, models.PunchTypeStepComplete, punch.PunchType)
		assert.Equal(t, "step_finished", punch.PunchKey)
	})

	t.Run("text mints text_response", func(t *testing.T) {
		punch := Classify(partEvent("text"))
		require.NotNil(t, punch)
		assert.Equal(t, models.PunchTypeMessage, punch.PunchType)
		assert.Equal(t, "text_response", punch.PunchKey)
	})

	t.Run("unknown part type mints nothing", func(t *testing.T) {
		assert.Nil(t, Classify(partEvent("snapshot")))
	})
}

func TestClassify_SessionEvents(t *testing.T) {
	sessionEvent := func(eventType, status string) models.HostEvent {
		return models.HostEvent{
			Type: eventType,
			Properties: map[string]any{
				"info": map[string]any{"id": "s1", "status": status},
			},
		}
	}

	t.Run("completed session.updated mints session_completed", func(t *testing.T) {
		punch := Classify(sessionEvent(models.EventSessionUpdated, "completed"))
		require.NotNil(t, punch)
		assert.Equal(t, models.PunchTypeStepComplete, punch.PunchType)
		assert.Equal(t, "session_completed", punch.PunchKey)
		assert.Equal(t, "s1", punch.TaskID)
	})

	t.Run("non-completed session.updated mints nothing", func(t *testing.T) {
		assert.Nil(t, Classify(sessionEvent(models.EventSessionUpdated, "running")))
		assert.Nil(t, Classify(sessionEvent(models.EventSessionUpdated, "idle")))
	})

	t.Run("lifecycle events mint session_<suffix>", func(t *testing.T) {
		cases := map[string]string{
			models.EventSessionCreated: "session_created",
			models.EventSessionDeleted: "session_deleted",
			models.EventSessionIdle:    "session_idle",
			models.EventSessionError:   "session_error",
		}
		for eventType, wantKey := range cases {
			punch := Classify(sessionEvent(eventType, ""))
			require.NotNil(t, punch, eventType)
			assert.Equal(t, models.PunchTypeSessionLifecycle, punch.PunchType)
			assert.Equal(t, wantKey, punch.PunchKey)
		}
	})

	t.Run("unrecognized session event mints nothing", func(t *testing.T) {
		assert.Nil(t, Classify(sessionEvent("session.compacted", "")))
	})
}

func TestClassify_Totality(t *testing.T) {
	// Malformed shapes must yield nil, never panic.
	events := []models.HostEvent{
		{Type: "server.connected"},
		{Type: models.EventMessagePartUpdated},
		{Type: models.EventMessagePartUpdated, Properties: map[string]any{"part": "not-a-map"}},
		{Type: models.EventMessagePartUpdated, Properties: map[string]any{"part": map[string]any{}}},
		{Type: models.EventSessionUpdated, Properties: map[string]any{}},
		{Type: models.EventSessionUpdated, Properties: map[string]any{"info": []any{"wrong"}}},
		{Type: ""},
	}
	for _, ev := range events {
		assert.NotPanics(t, func() { Classify(ev) }, "event type %q", ev.Type)
	}
}

func TestClassify_TaskIDFallback(t *testing.T) {
	ev := models.HostEvent{
		Type: models.EventMessagePartUpdated,
		Properties: map[string]any{
			"part": map[string]any{
				"type":  "tool",
				"tool":  "bash",
				"state": map[string]any{"status": "completed"},
			},
		},
	}
	punch := Classify(ev)
	require.NotNil(t, punch)
	assert.Equal(t, "unknown", punch.TaskID)
}

func TestClassify_Determinism(t *testing.T) {
	// Logically equivalent events (same type, equal properties after
	// recursive key sort) must hash identically.
	a := models.HostEvent{
		Type: models.EventMessagePartUpdated,
		Properties: map[string]any{
			"part": map[string]any{
				"sessionID": "s1",
				"tool":      "bash",
				"type":      "tool",
				"state":     map[string]any{"status": "completed", "input": map[string]any{"cmd": "ls"}},
			},
		},
	}
	b := models.HostEvent{
		Type: models.EventMessagePartUpdated,
		Properties: map[string]any{
			"part": map[string]any{
				"state":     map[string]any{"input": map[string]any{"cmd": "ls"}, "status": "completed"},
				"type":      "tool",
				"tool":      "bash",
				"sessionID": "s1",
			},
		},
	}
	pa := Classify(a)
	pb := Classify(b)
	require.NotNil(t, pa)
	require.NotNil(t, pb)
	assert.Equal(t, pa.SourceHash, pb.SourceHash)
}
