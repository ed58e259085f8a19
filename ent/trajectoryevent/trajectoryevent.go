// Code generated by ent, DO NOT EDIT.

package trajectoryevent

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trajectoryevent type in the database.
	Label = "trajectory_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTrajectoryID holds the string denoting the trajectory_id field in the database.
	FieldTrajectoryID = "trajectory_id"
	// FieldSequenceNum holds the string denoting the sequence_num field in the database.
	FieldSequenceNum = "sequence_num"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the trajectoryevent in the database.
	Table = "trajectory_events"
)

// Columns holds all SQL columns for trajectoryevent fields.
var Columns = []string{
	FieldID,
	FieldTrajectoryID,
	FieldSequenceNum,
	FieldTimestamp,
	FieldEventType,
	FieldEntityID,
	FieldData,
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

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeTrajectoryStart EventType = "trajectory_start"
	EventTypeTouch           EventType = "touch"
	EventTypeReason          EventType = "reason"
	EventTypeDecide          EventType = "decide"
	EventTypeDiscover        EventType = "discover"
	EventTypeSimulate        EventType = "simulate"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeTrajectoryStart, EventTypeTouch, EventTypeReason, EventTypeDecide, EventTypeDiscover, EventTypeSimulate:
		return nil
	default:
		return fmt.Errorf("trajectoryevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the TrajectoryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTrajectoryID orders the results by the trajectory_id field.
func ByTrajectoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrajectoryID, opts...).ToFunc()
}

// BySequenceNum orders the results by the sequence_num field.
func BySequenceNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNum, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}
