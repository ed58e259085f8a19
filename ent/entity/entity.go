// Code generated by ent, DO NOT EDIT.

package entity

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entity type in the database.
	Label = "entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTouchCount holds the string denoting the touch_count field in the database.
	FieldTouchCount = "touch_count"
	// FieldTrajectoryCount holds the string denoting the trajectory_count field in the database.
	FieldTrajectoryCount = "trajectory_count"
	// FieldContributorCount holds the string denoting the contributor_count field in the database.
	FieldContributorCount = "contributor_count"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the entity in the database.
	Table = "entities"
)

// Columns holds all SQL columns for entity fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldNormalizedName,
	FieldEntityType,
	FieldDescription,
	FieldTouchCount,
	FieldTrajectoryCount,
	FieldContributorCount,
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
	// DefaultTouchCount holds the default value on creation for the "touch_count" field.
	DefaultTouchCount int
	// DefaultTrajectoryCount holds the default value on creation for the "trajectory_count" field.
	DefaultTrajectoryCount int
	// DefaultContributorCount holds the default value on creation for the "contributor_count" field.
	DefaultContributorCount int
)

// OrderOption defines the ordering options for the Entity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTouchCount orders the results by the touch_count field.
func ByTouchCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTouchCount, opts...).ToFunc()
}

// ByTrajectoryCount orders the results by the trajectory_count field.
func ByTrajectoryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrajectoryCount, opts...).ToFunc()
}

// ByContributorCount orders the results by the contributor_count field.
func ByContributorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributorCount, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
