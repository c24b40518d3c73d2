package models

import "time"

// LoopClassification names the heuristic that tripped the loop detector.
type LoopClassification string

// Loop classification constants, in detection priority order.
const (
	LoopCostOverflow LoopClassification = "cost_overflow"
	LoopStepOverflow LoopClassification = "step_overflow"
	LoopToolCycle    LoopClassification = "tool_cycle"
	LoopCachePlateau LoopClassification = "cache_plateau"
)

// SessionMetrics is the detector's state snapshot at detection time.
type SessionMetrics struct {
	StepCount     int     `json:"step_count"`
	ToolCallCount int     `json:"tool_call_count"`
	TotalCost     float64 `json:"total_cost"`
	UniqueHashes  int     `json:"unique_hashes"`
	HistoryLength int     `json:"history_length"`
}

// LoopDetection is emitted when a session is judged to be in a pathological loop.
type LoopDetection struct {
	SessionID      string             `json:"session_id"`
	Classification LoopClassification `json:"classification"`
	Reason         string             `json:"reason"`
	Metrics        SessionMetrics     `json:"metrics"`
	DetectedAt     time.Time          `json:"detected_at"`
}

// KillConfirmation records the outcome of aborting a runaway session.
type KillConfirmation struct {
	SessionID    string         `json:"session_id"`
	KilledAt     time.Time      `json:"killed_at"`
	Trigger      LoopDetection  `json:"trigger"`
	FinalMetrics SessionMetrics `json:"final_metrics"`
	AlreadyDead  bool           `json:"already_dead"`
}
