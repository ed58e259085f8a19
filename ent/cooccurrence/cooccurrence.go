// Code generated by ent, DO NOT EDIT.

package cooccurrence

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cooccurrence type in the database.
	Label = "cooccurrence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntityAID holds the string denoting the entity_a_id field in the database.
	FieldEntityAID = "entity_a_id"
	// FieldEntityBID holds the string denoting the entity_b_id field in the database.
	FieldEntityBID = "entity_b_id"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// FieldWindowCount holds the string denoting the window_count field in the database.
	FieldWindowCount = "window_count"
	// FieldTrajectoryCount holds the string denoting the trajectory_count field in the database.
	FieldTrajectoryCount = "trajectory_count"
	// FieldContributorCount holds the string denoting the contributor_count field in the database.
	FieldContributorCount = "contributor_count"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the cooccurrence in the database.
	Table = "cooccurrences"
)

// Columns holds all SQL columns for cooccurrence fields.
var Columns = []string{
	FieldID,
	FieldEntityAID,
	FieldEntityBID,
	FieldCount,
	FieldWindowCount,
	FieldTrajectoryCount,
	FieldContributorCount,
	FieldLastUpdated,
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
	// DefaultCount holds the default value on creation for the "count" field.
	DefaultCount int
	// DefaultWindowCount holds the default value on creation for the "window_count" field.
	DefaultWindowCount int
	// DefaultTrajectoryCount holds the default value on creation for the "trajectory_count" field.
	DefaultTrajectoryCount int
	// DefaultContributorCount holds the default value on creation for the "contributor_count" field.
	DefaultContributorCount int
)

// OrderOption defines the ordering options for the Cooccurrence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityAID orders the results by the entity_a_id field.
func ByEntityAID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityAID, opts...).ToFunc()
}

// ByEntityBID orders the results by the entity_b_id field.
func ByEntityBID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityBID, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}

// ByWindowCount orders the results by the window_count field.
func ByWindowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowCount, opts...).ToFunc()
}

// ByTrajectoryCount orders the results by the trajectory_count field.
func ByTrajectoryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrajectoryCount, opts...).ToFunc()
}

// ByContributorCount orders the results by the contributor_count field.
func ByContributorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributorCount, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
