package models

// SessionRequest describes a bounded fitter session to dispatch.
type SessionRequest struct {
	Prompt         string `json:"prompt"`
	MaxTokenBudget int    `json:"max_token_budget"`
	TimeoutMS      int    `json:"timeout_ms"`
	AgentMode      string `json:"agent_mode"`
	Model          string `json:"model,omitempty"`
	AutoApprove    bool   `json:"auto_approve"`
	Host           string `json:"host"`
	Port           int    `json:"port"`
}

// SessionResponse is the dispatcher's result for a fitter session.
type SessionResponse struct {
	SessionID    string   `json:"session_id"`
	Success      bool     `json:"success"`
	Cost         float64  `json:"cost"`
	FilesChanged []string `json:"files_changed,omitempty"`
	DurationMS   int64    `json:"duration_ms"`
	Error        string   `json:"error,omitempty"`
}

// FitterResult records the outcome of a recovery dispatch, including
// dispatcher failures (Success=false, Error set).
type FitterResult struct {
	OriginalSessionID string            `json:"original_session_id"`
	FitterSessionID   string            `json:"fitter_session_id,omitempty"`
	Category          DiagnosisCategory `json:"category"`
	Success           bool              `json:"success"`
	Cost              float64           `json:"cost"`
	FilesChanged      []string          `json:"files_changed,omitempty"`
	DurationMS        int64             `json:"duration_ms"`
	Error             string            `json:"error,omitempty"`
}
