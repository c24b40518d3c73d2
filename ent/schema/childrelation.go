package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChildRelation holds the schema definition for the ChildRelation entity —
// a directed parent→child edge between agent sessions.
type ChildRelation struct {
	ent.Schema
}

// Annotations of the ChildRelation.
func (ChildRelation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "child_rels"},
	}
}

// Fields of the ChildRelation.
func (ChildRelation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("relation_id").
			Unique().
			Immutable(),
		field.String("parent_id").
			Immutable(),
		field.String("child_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChildRelation.
func (ChildRelation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id", "child_id").
			Unique(),
		index.Fields("child_id"),
	}
}
