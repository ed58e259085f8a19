// Code generated by ent, DO NOT EDIT.

package contribution

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contribution type in the database.
	Label = "contribution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldFirstTrajectoryID holds the string denoting the first_trajectory_id field in the database.
	FieldFirstTrajectoryID = "first_trajectory_id"
	// FieldTouchCount holds the string denoting the touch_count field in the database.
	FieldTouchCount = "touch_count"
	// FieldTrajectoryCount holds the string denoting the trajectory_count field in the database.
	FieldTrajectoryCount = "trajectory_count"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the contribution in the database.
	Table = "contributions"
)

// Columns holds all SQL columns for contribution fields.
var Columns = []string{
	FieldID,
	FieldEntityID,
	FieldAccountID,
	FieldFirstTrajectoryID,
	FieldTouchCount,
	FieldTrajectoryCount,
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
)

// OrderOption defines the ordering options for the Contribution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByFirstTrajectoryID orders the results by the first_trajectory_id field.
func ByFirstTrajectoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstTrajectoryID, opts...).ToFunc()
}

// ByTouchCount orders the results by the touch_count field.
func ByTouchCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTouchCount, opts...).ToFunc()
}

// ByTrajectoryCount orders the results by the trajectory_count field.
func ByTrajectoryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrajectoryCount, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
