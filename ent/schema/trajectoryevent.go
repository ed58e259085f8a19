package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrajectoryEvent holds the schema definition for a single append-only record
// in a trajectory's event log.
type TrajectoryEvent struct {
	ent.Schema
}

// Fields of the TrajectoryEvent.
func (TrajectoryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("trajectory_id").
			Immutable(),
		field.Int("sequence_num").
			Immutable().
			Comment("Zero-based, gapless, strictly increasing within the trajectory"),
		field.Int64("timestamp").
			Immutable(),
		field.Enum("event_type").
			Values("trajectory_start", "touch", "reason", "decide", "discover", "simulate").
			Immutable(),
		field.String("entity_id").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("data", map[string]any{}).
			Optional().
			Comment("Open UI-advisory payload; decision context is serialised under _context"),
	}
}

// Indexes of the TrajectoryEvent.
func (TrajectoryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trajectory_id", "sequence_num").
			Unique(),
		index.Fields("trajectory_id"),
		index.Fields("entity_id"),
	}
}
