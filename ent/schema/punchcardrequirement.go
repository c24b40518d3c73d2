package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PunchCardRequirement holds the schema definition for the PunchCardRequirement
// entity. A card is the set of rows sharing a card_id; each row declares one
// required or forbidden punch pattern.
type PunchCardRequirement struct {
	ent.Schema
}

// Annotations of the PunchCardRequirement.
func (PunchCardRequirement) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "punch_cards"},
	}
}

// Fields of the PunchCardRequirement.
func (PunchCardRequirement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("requirement_id").
			Unique().
			Immutable(),
		field.String("card_id"),
		field.Enum("punch_type").
			Values(
				"tool_call",
				"step_complete",
				"message",
				"session_lifecycle",
				"governor_kill",
				"workflow",
				"governor",
			),
		field.String("punch_key_pattern").
			Comment("SQL LIKE pattern with % wildcard"),
		field.Bool("required").
			Default(true),
		field.Bool("forbidden").
			Default(false),
		field.String("description").
			Optional(),
	}
}

// Indexes of the PunchCardRequirement.
func (PunchCardRequirement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
	}
}
