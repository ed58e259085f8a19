// Code generated by ent, DO NOT EDIT.

package graphedge

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the graphedge type in the database.
	Label = "graph_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldTargetID holds the string denoting the target_id field in the database.
	FieldTargetID = "target_id"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldTrajectoryCount holds the string denoting the trajectory_count field in the database.
	FieldTrajectoryCount = "trajectory_count"
	// FieldContributorCount holds the string denoting the contributor_count field in the database.
	FieldContributorCount = "contributor_count"
	// FieldRelationshipType holds the string denoting the relationship_type field in the database.
	FieldRelationshipType = "relationship_type"
	// FieldPositiveOutcomes holds the string denoting the positive_outcomes field in the database.
	FieldPositiveOutcomes = "positive_outcomes"
	// FieldNegativeOutcomes holds the string denoting the negative_outcomes field in the database.
	FieldNegativeOutcomes = "negative_outcomes"
	// FieldMixedOutcomes holds the string denoting the mixed_outcomes field in the database.
	FieldMixedOutcomes = "mixed_outcomes"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the graphedge in the database.
	Table = "graph_edges"
)

// Columns holds all SQL columns for graphedge fields.
var Columns = []string{
	FieldID,
	FieldSourceID,
	FieldTargetID,
	FieldWeight,
	FieldTrajectoryCount,
	FieldContributorCount,
	FieldRelationshipType,
	FieldPositiveOutcomes,
	FieldNegativeOutcomes,
	FieldMixedOutcomes,
	FieldFirstSeen,
	FieldLastSeen,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultWeight holds the default value on creation for the "weight" field.
	DefaultWeight int
	// DefaultTrajectoryCount holds the default value on creation for the "trajectory_count" field.
	DefaultTrajectoryCount int
	// DefaultContributorCount holds the default value on creation for the "contributor_count" field.
	DefaultContributorCount int
	// DefaultPositiveOutcomes holds the default value on creation for the "positive_outcomes" field.
	DefaultPositiveOutcomes int
	// DefaultNegativeOutcomes holds the default value on creation for the "negative_outcomes" field.
	DefaultNegativeOutcomes int
	// DefaultMixedOutcomes holds the default value on creation for the "mixed_outcomes" field.
	DefaultMixedOutcomes int
)

// OrderOption defines the ordering options for the GraphEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByTargetID orders the results by the target_id field.
func ByTargetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetID, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByTrajectoryCount orders the results by the trajectory_count field.
func ByTrajectoryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrajectoryCount, opts...).ToFunc()
}

// ByContributorCount orders the results by the contributor_count field.
func ByContributorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributorCount, opts...).ToFunc()
}

// ByRelationshipType orders the results by the relationship_type field.
func ByRelationshipType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationshipType, opts...).ToFunc()
}

// ByPositiveOutcomes orders the results by the positive_outcomes field.
func ByPositiveOutcomes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositiveOutcomes, opts...).ToFunc()
}

// ByNegativeOutcomes orders the results by the negative_outcomes field.
func ByNegativeOutcomes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNegativeOutcomes, opts...).ToFunc()
}

// ByMixedOutcomes orders the results by the mixed_outcomes field.
func ByMixedOutcomes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMixedOutcomes, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
