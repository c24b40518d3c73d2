package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolCall holds the schema definition for the ToolCall entity.
// Deduplicated by (session_id, ts, tool_name).
type ToolCall struct {
	ent.Schema
}

// Fields of the ToolCall.
func (ToolCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_call_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.Text("args_summary").
			Optional().
			Immutable(),
		field.String("status").
			Immutable().
			Comment("completed or error, as reported by the host"),
		field.Text("error").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("duration_ms").
			Optional().
			Nillable().
			Immutable(),
		field.Float("cost").
			Optional().
			Nillable().
			Immutable(),
		field.Time("ts").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ToolCall.
func (ToolCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "ts", "tool_name").
			Unique(),
		index.Fields("session_id", "tool_name"),
	}
}
