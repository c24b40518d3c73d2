package models

// ValidationStatus is the terminal state of a punch-card check.
type ValidationStatus string

// Validation status constants.
const (
	ValidationPass ValidationStatus = "pass"
	ValidationFail ValidationStatus = "fail"
)

// CardRequirement is one required/forbidden punch pattern of a card.
type CardRequirement struct {
	CardID          string    `json:"card_id"`
	PunchType       PunchType `json:"punch_type"`
	PunchKeyPattern string    `json:"punch_key_pattern"`
	Required        bool      `json:"required"`
	Forbidden       bool      `json:"forbidden"`
	Description     string    `json:"description,omitempty"`
}

// ToolAdherenceResult reports whether file-modifying tool usage stayed in range.
type ToolAdherenceResult struct {
	Count       int  `json:"count"`
	Min         int  `json:"min"`
	Max         int  `json:"max"`
	WithinRange bool `json:"within_range"`
}

// ValidationResult is the transient outcome of validating a task against a
// card. Never stored.
type ValidationResult struct {
	Status        ValidationStatus     `json:"status"`
	Missing       []string             `json:"missing"`
	Violations    []string             `json:"violations"`
	ToolAdherence *ToolAdherenceResult `json:"tool_adherence,omitempty"`
}

// Passed reports whether the validation succeeded.
func (r ValidationResult) Passed() bool { return r.Status == ValidationPass }

// ChildValidation pairs a child session with its validation result.
type ChildValidation struct {
	ChildID string           `json:"child_id"`
	Result  ValidationResult `json:"result"`
}

// SubtaskVerification aggregates per-child card validations.
type SubtaskVerification struct {
	ParentTaskID     string            `json:"parent_task_id"`
	Children         []ChildValidation `json:"children"`
	AllChildrenValid bool              `json:"all_children_valid"`
}
