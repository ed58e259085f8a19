// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/trajectory"
)

// Trajectory is the model entity for the Trajectory schema.
type Trajectory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID *string `json:"conversation_id,omitempty"`
	// InputText holds the value of the "input_text" field.
	InputText string `json:"input_text,omitempty"`
	// 32-bit non-cryptographic fingerprint for similar-starting-point lookup; advisory only
	InputHash int64 `json:"input_hash,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt int64 `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *int64 `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trajectory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trajectory.FieldInputHash, trajectory.FieldStartedAt, trajectory.FieldCompletedAt:
			values[i] = new(sql.NullInt64)
		case trajectory.FieldID, trajectory.FieldAccountID, trajectory.FieldConversationID, trajectory.FieldInputText, trajectory.FieldSummary:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trajectory fields.
func (_m *Trajectory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trajectory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trajectory.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case trajectory.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = new(string)
				*_m.ConversationID = value.String
			}
		case trajectory.FieldInputText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_text", values[i])
			} else if value.Valid {
				_m.InputText = value.String
			}
		case trajectory.FieldInputHash:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_hash", values[i])
			} else if value.Valid {
				_m.InputHash = value.Int64
			}
		case trajectory.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case trajectory.FieldStartedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Int64
			}
		case trajectory.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(int64)
				*_m.CompletedAt = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Trajectory.
// This includes values selected through modifiers, order, etc.
func (_m *Trajectory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Trajectory.
// Note that you need to call Trajectory.Unwrap() before calling this method if this Trajectory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trajectory) Update() *TrajectoryUpdateOne {
	return NewTrajectoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trajectory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trajectory) Unwrap() *Trajectory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trajectory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trajectory) String() string {
	var builder strings.Builder
	builder.WriteString("Trajectory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	if v := _m.ConversationID; v != nil {
		builder.WriteString("conversation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("input_text=")
	builder.WriteString(_m.InputText)
	builder.WriteString(", ")
	builder.WriteString("input_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputHash))
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartedAt))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Trajectories is a parsable slice of Trajectory.
type Trajectories []*Trajectory
