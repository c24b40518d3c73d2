// Package classify turns raw agent-host events into punches. Classification
// is pure and total: unknown shapes yield no punch, never an error.
package classify

import (
	"strings"
	"time"

	"github.com/punchd-io/punchd/pkg/models"
)

// Classify maps a raw host event to a punch, or nil when the event is not
// punch-worthy (pending tool parts, unknown part types, unrecognized events).
func Classify(event models.HostEvent) *models.Punch {
	switch {
	case event.Type == models.EventMessagePartUpdated:
		return classifyPartUpdated(event)
	case event.Type == models.EventSessionUpdated:
		return classifySessionUpdated(event)
	case strings.HasPrefix(event.Type, "session."):
		return classifySessionLifecycle(event)
	default:
		return nil
	}
}

func classifyPartUpdated(event models.HostEvent) *models.Punch {
	part := getMap(event.Properties, "part")
	taskID := getString(part, "sessionID")
	if taskID == "" {
		taskID = "unknown"
	}

	switch getString(part, "type") {
	case "tool":
		state := getMap(part, "state")
		status := getString(state, "status")
		if status != "completed" && status != "error" {
			return nil // pending/running parts are not punched
		}
		tool := getString(part, "tool")
		if tool == "" {
			tool = "unknown_tool"
		}
		p := newPunch(taskID, models.PunchTypeToolCall, tool, event)
		applyMetrics(p, part)
		p.ContentHash = contentHash(state)
		return p
	case "step-start":
		return newPunch(taskID, models.PunchTypeStepComplete, "step_start_observed", event)
	case "step-finish":
		p := newPunch(taskID, models.PunchTypeStepComplete, "step_finished", event)
		applyMetrics(p, part)
		return p
	case "text":
		p := newPunch(taskID, models.PunchTypeMessage, "text_response", event)
		if text := getString(part, "text"); text != "" {
			p.ContentHash = HashValue(text)
		}
		return p
	default:
		return nil
	}
}

func classifySessionUpdated(event models.HostEvent) *models.Punch {
	info := getMap(event.Properties, "info")
	if getString(info, "status") != "completed" {
		return nil
	}
	taskID := getString(info, "id")
	if taskID == "" {
		taskID = "unknown"
	}
	return newPunch(taskID, models.PunchTypeStepComplete, "session_completed", event)
}

func classifySessionLifecycle(event models.HostEvent) *models.Punch {
	suffix := strings.TrimPrefix(event.Type, "session.")
	switch suffix {
	case "created", "deleted", "idle", "error":
	default:
		return nil
	}
	info := getMap(event.Properties, "info")
	taskID := getString(info, "id")
	if taskID == "" {
		taskID = "unknown"
	}
	return newPunch(taskID, models.PunchTypeSessionLifecycle, "session_"+suffix, event)
}

func newPunch(taskID string, punchType models.PunchType, key string, event models.HostEvent) *models.Punch {
	return &models.Punch{
		TaskID:     taskID,
		PunchType:  punchType,
		PunchKey:   key,
		ObservedAt: time.Now(),
		SourceHash: CanonicalHash(event.Type, event.Properties),
	}
}

// applyMetrics extracts cost and token counts from a message part when present.
func applyMetrics(p *models.Punch, part map[string]any) {
	if cost, ok := getFloat(part, "cost"); ok {
		p.Cost = &cost
	}
	tokens := getMap(part, "tokens")
	if v, ok := getInt(tokens, "input"); ok {
		p.TokensInput = &v
	}
	if v, ok := getInt(tokens, "output"); ok {
		p.TokensOutput = &v
	}
	if v, ok := getInt(tokens, "reasoning"); ok {
		p.TokensReasoning = &v
	}
}

// contentHash hashes the content being processed by a tool part (its input
// and output), as opposed to the event envelope. Used by the cache-plateau
// heuristic to spot sessions reprocessing identical content.
func contentHash(state map[string]any) string {
	if state == nil {
		return ""
	}
	content := map[string]any{}
	if in, ok := state["input"]; ok {
		content["input"] = in
	}
	if out, ok := state["output"]; ok {
		content["output"] = out
	}
	if len(content) == 0 {
		return ""
	}
	return HashValue(content)
}

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]any)
	return sub
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func getFloat(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func getInt(m map[string]any, key string) (int64, bool) {
	f, ok := getFloat(m, key)
	if !ok {
		return 0, false
	}
	return int64(f), true
}
