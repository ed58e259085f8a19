// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/entity"
)

// Entity is the model entity for the Entity schema.
type Entity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Display name as first written
	Name string `json:"name,omitempty"`
	// Lower-cased, trimmed lookup key; identity for find-or-create
	NormalizedName string `json:"normalized_name,omitempty"`
	// topic, misconception, strategy, context, constraint, outcome, concept, ... Sticky: set once, never overwritten
	EntityType *string `json:"entity_type,omitempty"`
	// First writer wins
	Description *string `json:"description,omitempty"`
	// TouchCount holds the value of the "touch_count" field.
	TouchCount int `json:"touch_count,omitempty"`
	// TrajectoryCount holds the value of the "trajectory_count" field.
	TrajectoryCount int `json:"trajectory_count,omitempty"`
	// Incremented only when a new (entity, account) contribution row is created
	ContributorCount int `json:"contributor_count,omitempty"`
	// Epoch milliseconds
	FirstSeen int64 `json:"first_seen,omitempty"`
	// Epoch milliseconds
	LastSeen     int64 `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Entity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entity.FieldTouchCount, entity.FieldTrajectoryCount, entity.FieldContributorCount, entity.FieldFirstSeen, entity.FieldLastSeen:
			values[i] = new(sql.NullInt64)
		case entity.FieldID, entity.FieldName, entity.FieldNormalizedName, entity.FieldEntityType, entity.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Entity fields.
func (_m *Entity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entity.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case entity.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case entity.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = new(string)
				*_m.EntityType = value.String
			}
		case entity.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case entity.FieldTouchCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field touch_count", values[i])
			} else if value.Valid {
				_m.TouchCount = int(value.Int64)
			}
		case entity.FieldTrajectoryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trajectory_count", values[i])
			} else if value.Valid {
				_m.TrajectoryCount = int(value.Int64)
			}
		case entity.FieldContributorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field contributor_count", values[i])
			} else if value.Valid {
				_m.ContributorCount = int(value.Int64)
			}
		case entity.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Int64
			}
		case entity.FieldLastSeen:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Entity.
// This includes values selected through modifiers, order, etc.
func (_m *Entity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Entity.
// Note that you need to call Entity.Unwrap() before calling this method if this Entity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Entity) Update() *EntityUpdateOne {
	return NewEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Entity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Entity) Unwrap() *Entity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Entity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Entity) String() string {
	var builder strings.Builder
	builder.WriteString("Entity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	if v := _m.EntityType; v != nil {
		builder.WriteString("entity_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("touch_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TouchCount))
	builder.WriteString(", ")
	builder.WriteString("trajectory_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrajectoryCount))
	builder.WriteString(", ")
	builder.WriteString("contributor_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContributorCount))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstSeen))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSeen))
	builder.WriteByte(')')
	return builder.String()
}

// Entities is a parsable slice of Entity.
type Entities []*Entity
