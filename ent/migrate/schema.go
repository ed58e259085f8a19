// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContributionsColumns holds the columns for the "contributions" table.
	ContributionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "account_id", Type: field.TypeString},
		{Name: "first_trajectory_id", Type: field.TypeString},
		{Name: "touch_count", Type: field.TypeInt, Default: 0},
		{Name: "trajectory_count", Type: field.TypeInt, Default: 0},
		{Name: "first_seen", Type: field.TypeInt64},
		{Name: "last_seen", Type: field.TypeInt64},
	}
	// ContributionsTable holds the schema information for the "contributions" table.
	ContributionsTable = &schema.Table{
		Name:       "contributions",
		Columns:    ContributionsColumns,
		PrimaryKey: []*schema.Column{ContributionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contribution_entity_id_account_id",
				Unique:  true,
				Columns: []*schema.Column{ContributionsColumns[1], ContributionsColumns[2]},
			},
			{
				Name:    "contribution_account_id",
				Unique:  false,
				Columns: []*schema.Column{ContributionsColumns[2]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_account_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
		},
	}
	// CooccurrencesColumns holds the columns for the "cooccurrences" table.
	CooccurrencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "entity_a_id", Type: field.TypeString},
		{Name: "entity_b_id", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "window_count", Type: field.TypeInt, Default: 0},
		{Name: "trajectory_count", Type: field.TypeInt, Default: 0},
		{Name: "contributor_count", Type: field.TypeInt, Default: 0},
		{Name: "last_updated", Type: field.TypeInt64},
	}
	// CooccurrencesTable holds the schema information for the "cooccurrences" table.
	CooccurrencesTable = &schema.Table{
		Name:       "cooccurrences",
		Columns:    CooccurrencesColumns,
		PrimaryKey: []*schema.Column{CooccurrencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cooccurrence_entity_a_id_entity_b_id",
				Unique:  true,
				Columns: []*schema.Column{CooccurrencesColumns[1], CooccurrencesColumns[2]},
			},
			{
				Name:    "cooccurrence_entity_b_id",
				Unique:  false,
				Columns: []*schema.Column{CooccurrencesColumns[2]},
			},
		},
	}
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString, Unique: true},
		{Name: "entity_type", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "touch_count", Type: field.TypeInt, Default: 0},
		{Name: "trajectory_count", Type: field.TypeInt, Default: 0},
		{Name: "contributor_count", Type: field.TypeInt, Default: 0},
		{Name: "first_seen", Type: field.TypeInt64},
		{Name: "last_seen", Type: field.TypeInt64},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entity_entity_type",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[3]},
			},
		},
	}
	// GraphEdgesColumns holds the columns for the "graph_edges" table.
	GraphEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "source_id", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "weight", Type: field.TypeInt, Default: 0},
		{Name: "trajectory_count", Type: field.TypeInt, Default: 0},
		{Name: "contributor_count", Type: field.TypeInt, Default: 0},
		{Name: "relationship_type", Type: field.TypeString, Nullable: true},
		{Name: "positive_outcomes", Type: field.TypeInt, Default: 0},
		{Name: "negative_outcomes", Type: field.TypeInt, Default: 0},
		{Name: "mixed_outcomes", Type: field.TypeInt, Default: 0},
		{Name: "first_seen", Type: field.TypeInt64},
		{Name: "last_seen", Type: field.TypeInt64},
	}
	// GraphEdgesTable holds the schema information for the "graph_edges" table.
	GraphEdgesTable = &schema.Table{
		Name:       "graph_edges",
		Columns:    GraphEdgesColumns,
		PrimaryKey: []*schema.Column{GraphEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphedge_source_id_target_id",
				Unique:  true,
				Columns: []*schema.Column{GraphEdgesColumns[1], GraphEdgesColumns[2]},
			},
			{
				Name:    "graphedge_target_id",
				Unique:  false,
				Columns: []*schema.Column{GraphEdgesColumns[2]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "trajectory_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1]},
			},
			{
				Name:    "message_trajectory_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// TrajectoriesColumns holds the columns for the "trajectories" table.
	TrajectoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "input_text", Type: field.TypeString, Size: 2147483647},
		{Name: "input_hash", Type: field.TypeInt64},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeInt64},
		{Name: "completed_at", Type: field.TypeInt64, Nullable: true},
	}
	// TrajectoriesTable holds the schema information for the "trajectories" table.
	TrajectoriesTable = &schema.Table{
		Name:       "trajectories",
		Columns:    TrajectoriesColumns,
		PrimaryKey: []*schema.Column{TrajectoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trajectory_account_id",
				Unique:  false,
				Columns: []*schema.Column{TrajectoriesColumns[1]},
			},
			{
				Name:    "trajectory_input_hash",
				Unique:  false,
				Columns: []*schema.Column{TrajectoriesColumns[4]},
			},
		},
	}
	// TrajectoryEventsColumns holds the columns for the "trajectory_events" table.
	TrajectoryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "trajectory_id", Type: field.TypeString},
		{Name: "sequence_num", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"trajectory_start", "touch", "reason", "decide", "discover", "simulate"}},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
	}
	// TrajectoryEventsTable holds the schema information for the "trajectory_events" table.
	TrajectoryEventsTable = &schema.Table{
		Name:       "trajectory_events",
		Columns:    TrajectoryEventsColumns,
		PrimaryKey: []*schema.Column{TrajectoryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trajectoryevent_trajectory_id_sequence_num",
				Unique:  true,
				Columns: []*schema.Column{TrajectoryEventsColumns[1], TrajectoryEventsColumns[2]},
			},
			{
				Name:    "trajectoryevent_trajectory_id",
				Unique:  false,
				Columns: []*schema.Column{TrajectoryEventsColumns[1]},
			},
			{
				Name:    "trajectoryevent_entity_id",
				Unique:  false,
				Columns: []*schema.Column{TrajectoryEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContributionsTable,
		ConversationsTable,
		CooccurrencesTable,
		EntitiesTable,
		GraphEdgesTable,
		MessagesTable,
		TrajectoriesTable,
		TrajectoryEventsTable,
	}
)

func init() {
}
