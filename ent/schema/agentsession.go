package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// One row per agent-host session; mutable fields track lifecycle progress.
type AgentSession struct {
	ent.Schema
}

// Annotations of the AgentSession.
func (AgentSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sessions"},
	}
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Optional().
			Comment("Task the session was dispatched for, when known"),
		field.String("mode").
			Optional().
			Comment("Agent mode (e.g. 'code', 'fitter')"),
		field.String("model").
			Optional(),
		field.Enum("status").
			Values("running", "idle", "completed", "failed").
			Default("running"),
		field.Float("total_cost").
			Default(0),
		field.Int64("tokens_in").
			Default(0),
		field.Int64("tokens_out").
			Default(0),
		field.Int64("tokens_reasoning").
			Default(0),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("outcome").
			Optional().
			Nillable().
			Comment("Terminal note: completion summary or governor kill trigger"),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("task_id"),
		index.Fields("status", "started_at"),
	}
}
