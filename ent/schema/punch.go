package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Punch holds the schema definition for the Punch entity — the atomic,
// idempotent observation record minted from agent-host events.
type Punch struct {
	ent.Schema
}

// Fields of the Punch.
func (Punch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("punch_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable().
			Comment("Opaque session identifier the punch was observed for"),
		field.Enum("punch_type").
			Values(
				"tool_call",
				"step_complete",
				"message",
				"session_lifecycle",
				"governor_kill",
				"workflow",
				"governor",
			).
			Immutable(),
		field.String("punch_key").
			Immutable().
			Comment("Discriminator within the type (tool name, step_finished, ...)"),
		field.Time("observed_at").
			Default(time.Now).
			Immutable(),
		field.String("source_hash").
			Unique().
			Immutable().
			MaxLen(64).
			Comment("Deterministic hash of the originating event; idempotency key"),
		field.String("content_hash").
			Optional().
			Nillable().
			Immutable().
			MaxLen(64).
			Comment("Hash of the content being processed (cache-plateau heuristic)"),
		field.Float("cost").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("tokens_input").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("tokens_output").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("tokens_reasoning").
			Optional().
			Nillable().
			Immutable(),
	}
}

// Indexes of the Punch.
func (Punch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "punch_type"),
		index.Fields("task_id", "observed_at"),
		index.Fields("punch_type", "punch_key"),
	}
}
