package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contribution holds the schema definition for per-account provenance on a
// global entity. Exactly one row per (entity_id, account_id) pair; creating
// the row is the sole trigger for bumping the entity's contributor_count.
type Contribution struct {
	ent.Schema
}

// Fields of the Contribution.
func (Contribution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.String("first_trajectory_id").
			Immutable().
			Comment("Trajectory that first touched the entity for this account"),
		field.Int("touch_count").
			Default(0),
		field.Int("trajectory_count").
			Default(0),
		field.Int64("first_seen").
			Immutable(),
		field.Int64("last_seen"),
	}
}

// Indexes of the Contribution.
func (Contribution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_id", "account_id").
			Unique(),
		index.Fields("account_id"),
	}
}
