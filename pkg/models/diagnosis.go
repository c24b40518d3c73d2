package models

import "time"

// DiagnosisCategory names the failure mode of a killed session.
type DiagnosisCategory string

// Diagnosis category constants, in classifier evaluation order
// (ties on confidence are broken by this order).
const (
	DiagnosisStuckOnApproval   DiagnosisCategory = "stuck_on_approval"
	DiagnosisInfiniteRetry     DiagnosisCategory = "infinite_retry"
	DiagnosisContextExhaustion DiagnosisCategory = "context_exhaustion"
	DiagnosisScopeCreep        DiagnosisCategory = "scope_creep"
	DiagnosisModelConfusion    DiagnosisCategory = "model_confusion"
)

// ToolPattern summarizes one tool's activity in a session's message history.
type ToolPattern struct {
	Tool       string `json:"tool"`
	Count      int    `json:"count"`
	ErrorCount int    `json:"error_count"`
	LastStatus string `json:"last_status"`
}

// Diagnosis is one classifier's verdict.
type Diagnosis struct {
	Category        DiagnosisCategory `json:"category"`
	Confidence      float64           `json:"confidence"`
	Summary         string            `json:"summary"`
	SuggestedAction string            `json:"suggested_action"`
}

// DiagnosisReport is the full result of diagnosing a killed session.
type DiagnosisReport struct {
	SessionID    string        `json:"session_id"`
	DiagnosedAt  time.Time     `json:"diagnosed_at"`
	Diagnosis    Diagnosis     `json:"diagnosis"`
	ToolPatterns []ToolPattern `json:"tool_patterns"`
}
