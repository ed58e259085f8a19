// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/cooccurrence"
)

// Cooccurrence is the model entity for the Cooccurrence schema.
type Cooccurrence struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EntityAID holds the value of the "entity_a_id" field.
	EntityAID string `json:"entity_a_id,omitempty"`
	// EntityBID holds the value of the "entity_b_id" field.
	EntityBID string `json:"entity_b_id,omitempty"`
	// Count holds the value of the "count" field.
	Count int `json:"count,omitempty"`
	// WindowCount holds the value of the "window_count" field.
	WindowCount int `json:"window_count,omitempty"`
	// TrajectoryCount holds the value of the "trajectory_count" field.
	TrajectoryCount int `json:"trajectory_count,omitempty"`
	// ContributorCount holds the value of the "contributor_count" field.
	ContributorCount int `json:"contributor_count,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  int64 `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Cooccurrence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cooccurrence.FieldCount, cooccurrence.FieldWindowCount, cooccurrence.FieldTrajectoryCount, cooccurrence.FieldContributorCount, cooccurrence.FieldLastUpdated:
			values[i] = new(sql.NullInt64)
		case cooccurrence.FieldID, cooccurrence.FieldEntityAID, cooccurrence.FieldEntityBID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Cooccurrence fields.
func (_m *Cooccurrence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cooccurrence.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cooccurrence.FieldEntityAID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_a_id", values[i])
			} else if value.Valid {
				_m.EntityAID = value.String
			}
		case cooccurrence.FieldEntityBID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_b_id", values[i])
			} else if value.Valid {
				_m.EntityBID = value.String
			}
		case cooccurrence.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		case cooccurrence.FieldWindowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field window_count", values[i])
			} else if value.Valid {
				_m.WindowCount = int(value.Int64)
			}
		case cooccurrence.FieldTrajectoryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trajectory_count", values[i])
			} else if value.Valid {
				_m.TrajectoryCount = int(value.Int64)
			}
		case cooccurrence.FieldContributorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field contributor_count", values[i])
			} else if value.Valid {
				_m.ContributorCount = int(value.Int64)
			}
		case cooccurrence.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Cooccurrence.
// This includes values selected through modifiers, order, etc.
func (_m *Cooccurrence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Cooccurrence.
// Note that you need to call Cooccurrence.Unwrap() before calling this method if this Cooccurrence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Cooccurrence) Update() *CooccurrenceUpdateOne {
	return NewCooccurrenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Cooccurrence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Cooccurrence) Unwrap() *Cooccurrence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Cooccurrence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Cooccurrence) String() string {
	var builder strings.Builder
	builder.WriteString("Cooccurrence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_a_id=")
	builder.WriteString(_m.EntityAID)
	builder.WriteString(", ")
	builder.WriteString("entity_b_id=")
	builder.WriteString(_m.EntityBID)
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteString(", ")
	builder.WriteString("window_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WindowCount))
	builder.WriteString(", ")
	builder.WriteString("trajectory_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrajectoryCount))
	builder.WriteString(", ")
	builder.WriteString("contributor_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContributorCount))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastUpdated))
	builder.WriteByte(')')
	return builder.String()
}

// Cooccurrences is a parsable slice of Cooccurrence.
type Cooccurrences []*Cooccurrence
