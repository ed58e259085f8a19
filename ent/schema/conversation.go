package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for a per-account chat container.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.String("title").
			Optional().
			Nillable().
			Comment("Auto-derived from the first user message"),
		field.Int64("created_at").
			Immutable(),
		field.Int64("updated_at"),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
	}
}
