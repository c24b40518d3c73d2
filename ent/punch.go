// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/punchd-io/punchd/ent/punch"
)

// Punch is the model entity for the Punch schema.
type Punch struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Opaque session identifier the punch was observed for
	TaskID string `json:"task_id,omitempty"`
	// PunchType holds the value of the "punch_type" field.
	PunchType punch.PunchType `json:"punch_type,omitempty"`
	// Discriminator within the type (tool name, step_finished, ...)
	PunchKey string `json:"punch_key,omitempty"`
	// ObservedAt holds the value of the "observed_at" field.
	ObservedAt time.Time `json:"observed_at,omitempty"`
	// Deterministic hash of the originating event; idempotency key
	SourceHash string `json:"source_hash,omitempty"`
	// Hash of the content being processed (cache-plateau heuristic)
	ContentHash *string `json:"content_hash,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost *float64 `json:"cost,omitempty"`
	// TokensInput holds the value of the "tokens_input" field.
	TokensInput *int64 `json:"tokens_input,omitempty"`
	// TokensOutput holds the value of the "tokens_output" field.
	TokensOutput *int64 `json:"tokens_output,omitempty"`
	// TokensReasoning holds the value of the "tokens_reasoning" field.
	TokensReasoning *int64 `json:"tokens_reasoning,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Punch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case punch.FieldCost:
			values[i] = new(sql.NullFloat64)
		case punch.FieldTokensInput, punch.FieldTokensOutput, punch.FieldTokensReasoning:
			values[i] = new(sql.NullInt64)
		case punch.FieldID, punch.FieldTaskID, punch.FieldPunchType, punch.FieldPunchKey, punch.FieldSourceHash, punch.FieldContentHash:
			values[i] = new(sql.NullString)
		case punch.FieldObservedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Punch fields.
func (_m *Punch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case punch.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case punch.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case punch.FieldPunchType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field punch_type", values[i])
			} else if value.Valid {
				_m.PunchType = punch.PunchType(value.String)
			}
		case punch.FieldPunchKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field punch_key", values[i])
			} else if value.Valid {
				_m.PunchKey = value.String
			}
		case punch.FieldObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field observed_at", values[i])
			} else if value.Valid {
				_m.ObservedAt = value.Time
			}
		case punch.FieldSourceHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_hash", values[i])
			} else if value.Valid {
				_m.SourceHash = value.String
			}
		case punch.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = new(string)
				*_m.ContentHash = value.String
			}
		case punch.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = new(float64)
				*_m.Cost = value.Float64
			}
		case punch.FieldTokensInput:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_input", values[i])
			} else if value.Valid {
				_m.TokensInput = new(int64)
				*_m.TokensInput = value.Int64
			}
		case punch.FieldTokensOutput:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_output", values[i])
			} else if value.Valid {
				_m.TokensOutput = new(int64)
				*_m.TokensOutput = value.Int64
			}
		case punch.FieldTokensReasoning:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_reasoning", values[i])
			} else if value.Valid {
				_m.TokensReasoning = new(int64)
				*_m.TokensReasoning = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Punch.
// This includes values selected through modifiers, order, etc.
func (_m *Punch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Punch.
// Note that you need to call Punch.Unwrap() before calling this method if this Punch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Punch) Update() *PunchUpdateOne {
	return NewPunchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Punch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Punch) Unwrap() *Punch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Punch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Punch) String() string {
	var builder strings.Builder
	builder.WriteString("Punch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("punch_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PunchType))
	builder.WriteString(", ")
	builder.WriteString("punch_key=")
	builder.WriteString(_m.PunchKey)
	builder.WriteString(", ")
	builder.WriteString("observed_at=")
	builder.WriteString(_m.ObservedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_hash=")
	builder.WriteString(_m.SourceHash)
	builder.WriteString(", ")
	if v := _m.ContentHash; v != nil {
		builder.WriteString("content_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Cost; v != nil {
		builder.WriteString("cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TokensInput; v != nil {
		builder.WriteString("tokens_input=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TokensOutput; v != nil {
		builder.WriteString("tokens_output=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TokensReasoning; v != nil {
		builder.WriteString("tokens_reasoning=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Punches is a parsable slice of Punch.
type Punches []*Punch
