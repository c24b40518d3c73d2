// Code generated by ent, DO NOT EDIT.

package punch

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the punch type in the database.
	Label = "punch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "punch_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldPunchType holds the string denoting the punch_type field in the database.
	FieldPunchType = "punch_type"
	// FieldPunchKey holds the string denoting the punch_key field in the database.
	FieldPunchKey = "punch_key"
	// FieldObservedAt holds the string denoting the observed_at field in the database.
	FieldObservedAt = "observed_at"
	// FieldSourceHash holds the string denoting the source_hash field in the database.
	FieldSourceHash = "source_hash"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldTokensInput holds the string denoting the tokens_input field in the database.
	FieldTokensInput = "tokens_input"
	// FieldTokensOutput holds the string denoting the tokens_output field in the database.
	FieldTokensOutput = "tokens_output"
	// FieldTokensReasoning holds the string denoting the tokens_reasoning field in the database.
	FieldTokensReasoning = "tokens_reasoning"
	// Table holds the table name of the punch in the database.
	Table = "punches"
)

// Columns holds all SQL columns for punch fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldPunchType,
	FieldPunchKey,
	FieldObservedAt,
	FieldSourceHash,
	FieldContentHash,
	FieldCost,
	FieldTokensInput,
	FieldTokensOutput,
	FieldTokensReasoning,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultObservedAt holds the default value on creation for the "observed_at" field.
	DefaultObservedAt func() time.Time
	// SourceHashValidator is a validator for the "source_hash" field. It is called by the builders before save.
	SourceHashValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func(string) error
)

// PunchType defines the type for the "punch_type" enum field.
type PunchType string

// PunchType values.
const (
	PunchTypeToolCall         PunchType = "tool_call"
	PunchTypeStepComplete     PunchType = "step_complete"
	PunchTypeMessage          PunchType = "message"
	PunchTypeSessionLifecycle PunchType = "session_lifecycle"
	PunchTypeGovernorKill     PunchType = "governor_kill"
	PunchTypeWorkflow         PunchType = "workflow"
	PunchTypeGovernor         PunchType = "governor"
)

func (pt PunchType) String() string {
	return string(pt)
}

// PunchTypeValidator is a validator for the "punch_type" field enum values. It is called by the builders before save.
func PunchTypeValidator(pt PunchType) error {
	switch pt {
	case PunchTypeToolCall, PunchTypeStepComplete, PunchTypeMessage, PunchTypeSessionLifecycle, PunchTypeGovernorKill, PunchTypeWorkflow, PunchTypeGovernor:
		return nil
	default:
		return fmt.Errorf("punch: invalid enum value for punch_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the Punch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByPunchType orders the results by the punch_type field.
func ByPunchType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPunchType, opts...).ToFunc()
}

// ByPunchKey orders the results by the punch_key field.
func ByPunchKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPunchKey, opts...).ToFunc()
}

// ByObservedAt orders the results by the observed_at field.
func ByObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedAt, opts...).ToFunc()
}

// BySourceHash orders the results by the source_hash field.
func BySourceHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceHash, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByTokensInput orders the results by the tokens_input field.
func ByTokensInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensInput, opts...).ToFunc()
}

// ByTokensOutput orders the results by the tokens_output field.
func ByTokensOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOutput, opts...).ToFunc()
}

// ByTokensReasoning orders the results by the tokens_reasoning field.
func ByTokensReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensReasoning, opts...).ToFunc()
}
