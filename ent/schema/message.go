package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for a chat message within a conversation.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("trajectory_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Walk produced by this turn; set on user and assistant messages of a chat turn"),
		field.Int64("created_at").
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
		index.Fields("trajectory_id"),
	}
}
