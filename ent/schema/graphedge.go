package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GraphEdge holds the schema definition for a directed weighted relation
// between two entities. Keyed by (source_id, target_id); self-loops are never
// written.
type GraphEdge struct {
	ent.Schema
}

// Fields of the GraphEdge.
func (GraphEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("source_id").
			Immutable(),
		field.String("target_id").
			Immutable(),
		field.Int("weight").
			Default(0).
			Comment("Cumulative traversal count"),
		field.Int("trajectory_count").
			Default(0),
		field.Int("contributor_count").
			Default(0),
		field.String("relationship_type").
			Optional().
			Nillable().
			Comment(`"leads_to" for strategy->outcome edges, null otherwise`),
		field.Int("positive_outcomes").
			Default(0).
			Comment("Reserved for valence classification; the engine never increments it"),
		field.Int("negative_outcomes").
			Default(0).
			Comment("Reserved, see positive_outcomes"),
		field.Int("mixed_outcomes").
			Default(0).
			Comment("Reserved, see positive_outcomes"),
		field.Int64("first_seen"),
		field.Int64("last_seen"),
	}
}

// Indexes of the GraphEdge.
func (GraphEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id", "target_id").
			Unique(),
		index.Fields("target_id"),
	}
}
