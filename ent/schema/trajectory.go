package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trajectory holds the schema definition for one walk: the ordered event log
// produced by a single chat turn. Open until completed_at is set; immutable
// afterwards.
type Trajectory struct {
	ent.Schema
}

// Fields of the Trajectory.
func (Trajectory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.String("conversation_id").
			Optional().
			Nillable().
			Immutable(),
		field.Text("input_text").
			Immutable(),
		field.Int64("input_hash").
			Immutable().
			Comment("32-bit non-cryptographic fingerprint for similar-starting-point lookup; advisory only"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Int64("started_at").
			Immutable(),
		field.Int64("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Trajectory.
func (Trajectory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("input_hash"),
	}
}
