// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/contribution"
)

// Contribution is the model entity for the Contribution schema.
type Contribution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Trajectory that first touched the entity for this account
	FirstTrajectoryID string `json:"first_trajectory_id,omitempty"`
	// TouchCount holds the value of the "touch_count" field.
	TouchCount int `json:"touch_count,omitempty"`
	// TrajectoryCount holds the value of the "trajectory_count" field.
	TrajectoryCount int `json:"trajectory_count,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen int64 `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     int64 `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contribution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contribution.FieldTouchCount, contribution.FieldTrajectoryCount, contribution.FieldFirstSeen, contribution.FieldLastSeen:
			values[i] = new(sql.NullInt64)
		case contribution.FieldID, contribution.FieldEntityID, contribution.FieldAccountID, contribution.FieldFirstTrajectoryID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contribution fields.
func (_m *Contribution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contribution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contribution.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case contribution.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case contribution.FieldFirstTrajectoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_trajectory_id", values[i])
			} else if value.Valid {
				_m.FirstTrajectoryID = value.String
			}
		case contribution.FieldTouchCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field touch_count", values[i])
			} else if value.Valid {
				_m.TouchCount = int(value.Int64)
			}
		case contribution.FieldTrajectoryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trajectory_count", values[i])
			} else if value.Valid {
				_m.TrajectoryCount = int(value.Int64)
			}
		case contribution.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Int64
			}
		case contribution.FieldLastSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contribution.
// This includes values selected through modifiers, order, etc.
func (_m *Contribution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Contribution.
// Note that you need to call Contribution.Unwrap() before calling this method if this Contribution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contribution) Update() *ContributionUpdateOne {
	return NewContributionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contribution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contribution) Unwrap() *Contribution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contribution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contribution) String() string {
	var builder strings.Builder
	builder.WriteString("Contribution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("first_trajectory_id=")
	builder.WriteString(_m.FirstTrajectoryID)
	builder.WriteString(", ")
	builder.WriteString("touch_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TouchCount))
	builder.WriteString(", ")
	builder.WriteString("trajectory_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrajectoryCount))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstSeen))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSeen))
	builder.WriteByte(')')
	return builder.String()
}

// Contributions is a parsable slice of Contribution.
type Contributions []*Contribution
