// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/punchd-io/punchd/ent/punchcardrequirement"
)

// PunchCardRequirement is the model entity for the PunchCardRequirement schema.
type PunchCardRequirement struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CardID holds the value of the "card_id" field.
	CardID string `json:"card_id,omitempty"`
	// PunchType holds the value of the "punch_type" field.
	PunchType punchcardrequirement.PunchType `json:"punch_type,omitempty"`
	// SQL LIKE pattern with % wildcard
	PunchKeyPattern string `json:"punch_key_pattern,omitempty"`
	// Required holds the value of the "required" field.
	Required bool `json:"required,omitempty"`
	// Forbidden holds the value of the "forbidden" field.
	Forbidden bool `json:"forbidden,omitempty"`
	// Description holds the value of the "description" field.
	Description  string `json:"description,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PunchCardRequirement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case punchcardrequirement.FieldRequired, punchcardrequirement.FieldForbidden:
			values[i] = new(sql.NullBool)
		case punchcardrequirement.FieldID, punchcardrequirement.FieldCardID, punchcardrequirement.FieldPunchType, punchcardrequirement.FieldPunchKeyPattern, punchcardrequirement.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PunchCardRequirement fields.
func (_m *PunchCardRequirement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case punchcardrequirement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case punchcardrequirement.FieldCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = value.String
			}
		case punchcardrequirement.FieldPunchType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field punch_type", values[i])
			} else if value.Valid {
				_m.PunchType = punchcardrequirement.PunchType(value.String)
			}
		case punchcardrequirement.FieldPunchKeyPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field punch_key_pattern", values[i])
			} else if value.Valid {
				_m.PunchKeyPattern = value.String
			}
		case punchcardrequirement.FieldRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field required", values[i])
			} else if value.Valid {
				_m.Required = value.Bool
			}
		case punchcardrequirement.FieldForbidden:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field forbidden", values[i])
			} else if value.Valid {
				_m.Forbidden = value.Bool
			}
		case punchcardrequirement.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PunchCardRequirement.
// This includes values selected through modifiers, order, etc.
func (_m *PunchCardRequirement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PunchCardRequirement.
// Note that you need to call PunchCardRequirement.Unwrap() before calling this method if this PunchCardRequirement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PunchCardRequirement) Update() *PunchCardRequirementUpdateOne {
	return NewPunchCardRequirementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PunchCardRequirement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PunchCardRequirement) Unwrap() *PunchCardRequirement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PunchCardRequirement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PunchCardRequirement) String() string {
	var builder strings.Builder
	builder.WriteString("PunchCardRequirement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("card_id=")
	builder.WriteString(_m.CardID)
	builder.WriteString(", ")
	builder.WriteString("punch_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PunchType))
	builder.WriteString(", ")
	builder.WriteString("punch_key_pattern=")
	builder.WriteString(_m.PunchKeyPattern)
	builder.WriteString(", ")
	builder.WriteString("required=")
	builder.WriteString(fmt.Sprintf("%v", _m.Required))
	builder.WriteString(", ")
	builder.WriteString("forbidden=")
	builder.WriteString(fmt.Sprintf("%v", _m.Forbidden))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// PunchCardRequirements is a parsable slice of PunchCardRequirement.
type PunchCardRequirements []*PunchCardRequirement
