package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionMessage holds the schema definition for the SessionMessage entity.
// Deduplicated by (session_id, ts, role).
type SessionMessage struct {
	ent.Schema
}

// Annotations of the SessionMessage.
func (SessionMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "messages"},
	}
}

// Fields of the SessionMessage.
func (SessionMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("role").
			Immutable(),
		field.String("content_type").
			Immutable().
			Comment("Part type: text, tool, step-start, step-finish, ..."),
		field.Text("content_preview").
			Immutable(),
		field.Time("ts").
			Default(time.Now).
			Immutable(),
		field.Float("cost").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("tokens_in").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("tokens_out").
			Optional().
			Nillable().
			Immutable(),
	}
}

// Indexes of the SessionMessage.
func (SessionMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "ts", "role").
			Unique(),
		index.Fields("session_id", "ts"),
	}
}
