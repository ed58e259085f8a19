package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Entity holds the schema definition for a node in the shared knowledge graph.
// Entities are global: every account reads and strengthens the same rows.
type Entity struct {
	ent.Schema
}

// Fields of the Entity.
func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Display name as first written"),
		field.String("normalized_name").
			Unique().
			Comment("Lower-cased, trimmed lookup key; identity for find-or-create"),
		field.String("entity_type").
			Optional().
			Nillable().
			Comment("topic, misconception, strategy, context, constraint, outcome, concept, ... Sticky: set once, never overwritten"),
		field.Text("description").
			Optional().
			Nillable().
			Comment("First writer wins"),
		field.Int("touch_count").
			Default(0),
		field.Int("trajectory_count").
			Default(0),
		field.Int("contributor_count").
			Default(0).
			Comment("Incremented only when a new (entity, account) contribution row is created"),
		field.Int64("first_seen").
			Immutable().
			Comment("Epoch milliseconds"),
		field.Int64("last_seen").
			Comment("Epoch milliseconds"),
	}
}

// Indexes of the Entity.
func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type"),
	}
}
