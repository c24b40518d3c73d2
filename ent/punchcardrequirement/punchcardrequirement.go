// Code generated by ent, DO NOT EDIT.

package punchcardrequirement

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the punchcardrequirement type in the database.
	Label = "punch_card_requirement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "requirement_id"
	// FieldCardID holds the string denoting the card_id field in the database.
	FieldCardID = "card_id"
	// FieldPunchType holds the string denoting the punch_type field in the database.
	FieldPunchType = "punch_type"
	// FieldPunchKeyPattern holds the string denoting the punch_key_pattern field in the database.
	FieldPunchKeyPattern = "punch_key_pattern"
	// FieldRequired holds the string denoting the required field in the database.
	FieldRequired = "required"
	// FieldForbidden holds the string denoting the forbidden field in the database.
	FieldForbidden = "forbidden"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// Table holds the table name of the punchcardrequirement in the database.
	Table = "punch_cards"
)

// Columns holds all SQL columns for punchcardrequirement fields.
var Columns = []string{
	FieldID,
	FieldCardID,
	FieldPunchType,
	FieldPunchKeyPattern,
	FieldRequired,
	FieldForbidden,
	FieldDescription,
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
	// DefaultRequired holds the default value on creation for the "required" field.
	DefaultRequired bool
	// DefaultForbidden holds the default value on creation for the "forbidden" field.
	DefaultForbidden bool
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
		return fmt.Errorf("punchcardrequirement: invalid enum value for punch_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the PunchCardRequirement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCardID orders the results by the card_id field.
func ByCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardID, opts...).ToFunc()
}

// ByPunchType orders the results by the punch_type field.
func ByPunchType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPunchType, opts...).ToFunc()
}

// ByPunchKeyPattern orders the results by the punch_key_pattern field.
func ByPunchKeyPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPunchKeyPattern, opts...).ToFunc()
}

// ByRequired orders the results by the required field.
func ByRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequired, opts...).ToFunc()
}

// ByForbidden orders the results by the forbidden field.
func ByForbidden(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForbidden, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}
