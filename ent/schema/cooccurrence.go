package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Cooccurrence holds the schema definition for an undirected pair count of
// entities that appeared together in a walk. Canonical orientation: entity_a_id
// sorts lexicographically before entity_b_id, so (a,b) and (b,a) share a row.
type Cooccurrence struct {
	ent.Schema
}

// Fields of the Cooccurrence.
func (Cooccurrence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("entity_a_id").
			Immutable(),
		field.String("entity_b_id").
			Immutable(),
		field.Int("count").
			Default(0),
		field.Int("window_count").
			Default(0),
		field.Int("trajectory_count").
			Default(0),
		field.Int("contributor_count").
			Default(0),
		field.Int64("last_updated"),
	}
}

// Indexes of the Cooccurrence.
func (Cooccurrence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_a_id", "entity_b_id").
			Unique(),
		index.Fields("entity_b_id"),
	}
}
