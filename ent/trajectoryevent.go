// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/trajectoryevent"
)

// TrajectoryEvent is the model entity for the TrajectoryEvent schema.
type TrajectoryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TrajectoryID holds the value of the "trajectory_id" field.
	TrajectoryID string `json:"trajectory_id,omitempty"`
	// Zero-based, gapless, strictly increasing within the trajectory
	SequenceNum int `json:"sequence_num,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp int64 `json:"timestamp,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType trajectoryevent.EventType `json:"event_type,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID *string `json:"entity_id,omitempty"`
	// Open UI-advisory payload; decision context is serialised under _context
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrajectoryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trajectoryevent.FieldData:
			values[i] = new([]byte)
		case trajectoryevent.FieldSequenceNum, trajectoryevent.FieldTimestamp:
			values[i] = new(sql.NullInt64)
		case trajectoryevent.FieldID, trajectoryevent.FieldTrajectoryID, trajectoryevent.FieldEventType, trajectoryevent.FieldEntityID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrajectoryEvent fields.
func (_m *TrajectoryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trajectoryevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trajectoryevent.FieldTrajectoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trajectory_id", values[i])
			} else if value.Valid {
				_m.TrajectoryID = value.String
			}
		case trajectoryevent.FieldSequenceNum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_num", values[i])
			} else if value.Valid {
				_m.SequenceNum = int(value.Int64)
			}
		case trajectoryevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Int64
			}
		case trajectoryevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = trajectoryevent.EventType(value.String)
			}
		case trajectoryevent.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = new(string)
				*_m.EntityID = value.String
			}
		case trajectoryevent.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrajectoryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TrajectoryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrajectoryEvent.
// Note that you need to call TrajectoryEvent.Unwrap() before calling this method if this TrajectoryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrajectoryEvent) Update() *TrajectoryEventUpdateOne {
	return NewTrajectoryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrajectoryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrajectoryEvent) Unwrap() *TrajectoryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrajectoryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrajectoryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TrajectoryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("trajectory_id=")
	builder.WriteString(_m.TrajectoryID)
	builder.WriteString(", ")
	builder.WriteString("sequence_num=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNum))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Timestamp))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	if v := _m.EntityID; v != nil {
		builder.WriteString("entity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// TrajectoryEvents is a parsable slice of TrajectoryEvent.
type TrajectoryEvents []*TrajectoryEvent
