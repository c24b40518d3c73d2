// Package models defines the domain types shared across punchd packages.
package models

import "time"

// PunchType classifies the kind of observation a punch records.
type PunchType string

// Punch type constants.
const (
	PunchTypeToolCall         PunchType = "tool_call"
	PunchTypeStepComplete     PunchType = "step_complete"
	PunchTypeMessage          PunchType = "message"
	PunchTypeSessionLifecycle PunchType = "session_lifecycle"
	PunchTypeGovernorKill     PunchType = "governor_kill"
	PunchTypeWorkflow         PunchType = "workflow"
	PunchTypeGovernor         PunchType = "governor"
)

// IsValid reports whether t is a known punch type.
func (t PunchType) IsValid() bool {
	switch t {
	case PunchTypeToolCall, PunchTypeStepComplete, PunchTypeMessage,
		PunchTypeSessionLifecycle, PunchTypeGovernorKill, PunchTypeWorkflow,
		PunchTypeGovernor:
		return true
	}
	return false
}

// Punch is the atomic, idempotent observation record minted from a raw
// agent-host event. SourceHash is the idempotency key: two logically
// equivalent events always mint punches with the same hash.
type Punch struct {
	TaskID      string    `json:"task_id"`
	PunchType   PunchType `json:"punch_type"`
	PunchKey    string    `json:"punch_key"`
	ObservedAt  time.Time `json:"observed_at"`
	SourceHash  string    `json:"source_hash"`
	ContentHash string    `json:"content_hash,omitempty"`

	Cost            *float64 `json:"cost,omitempty"`
	TokensInput     *int64   `json:"tokens_input,omitempty"`
	TokensOutput    *int64   `json:"tokens_output,omitempty"`
	TokensReasoning *int64   `json:"tokens_reasoning,omitempty"`
}

// UpsertSessionRequest contains the fields written to a session row.
// Mutable fields overwrite on conflict; zero-valued optionals are skipped.
type UpsertSessionRequest struct {
	SessionID       string     `json:"session_id"`
	TaskID          string     `json:"task_id,omitempty"`
	Mode            string     `json:"mode,omitempty"`
	Model           string     `json:"model,omitempty"`
	Status          string     `json:"status,omitempty"`
	TotalCost       *float64   `json:"total_cost,omitempty"`
	TokensIn        *int64     `json:"tokens_in,omitempty"`
	TokensOut       *int64     `json:"tokens_out,omitempty"`
	TokensReasoning *int64     `json:"tokens_reasoning,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Outcome         string     `json:"outcome,omitempty"`
}

// WriteMessageRequest contains the fields for a session message row.
type WriteMessageRequest struct {
	SessionID      string    `json:"session_id"`
	Role           string    `json:"role"`
	ContentType    string    `json:"content_type"`
	ContentPreview string    `json:"content_preview"`
	TS             time.Time `json:"ts"`
	Cost           *float64  `json:"cost,omitempty"`
	TokensIn       *int64    `json:"tokens_in,omitempty"`
	TokensOut      *int64    `json:"tokens_out,omitempty"`
}

// WriteToolCallRequest contains the fields for a tool-call row.
type WriteToolCallRequest struct {
	SessionID   string    `json:"session_id"`
	ToolName    string    `json:"tool_name"`
	ArgsSummary string    `json:"args_summary,omitempty"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	DurationMS  *int64    `json:"duration_ms,omitempty"`
	Cost        *float64  `json:"cost,omitempty"`
	TS          time.Time `json:"ts"`
}

// SessionSnapshot aggregates a session's persisted punch activity.
type SessionSnapshot struct {
	SessionID       string         `json:"session_id"`
	Status          string         `json:"status"`
	PunchCounts     map[string]int `json:"punch_counts"`
	TotalCost       float64        `json:"total_cost"`
	TokensIn        int64          `json:"tokens_in"`
	TokensOut       int64          `json:"tokens_out"`
	TokensReasoning int64          `json:"tokens_reasoning"`
	LastObservedAt  *time.Time     `json:"last_observed_at,omitempty"`
}
