// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/graphedge"
)

// GraphEdge is the model entity for the GraphEdge schema.
type GraphEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// TargetID holds the value of the "target_id" field.
	TargetID string `json:"target_id,omitempty"`
	// Cumulative traversal count
	Weight int `json:"weight,omitempty"`
	// TrajectoryCount holds the value of the "trajectory_count" field.
	TrajectoryCount int `json:"trajectory_count,omitempty"`
	// ContributorCount holds the value of the "contributor_count" field.
	ContributorCount int `json:"contributor_count,omitempty"`
	// "leads_to" for strategy->outcome edges, null otherwise
	RelationshipType *string `json:"relationship_type,omitempty"`
	// Reserved for valence classification; the engine never increments it
	PositiveOutcomes int `json:"positive_outcomes,omitempty"`
	// Reserved, see positive_outcomes
	NegativeOutcomes int `json:"negative_outcomes,omitempty"`
	// Reserved, see positive_outcomes
	MixedOutcomes int `json:"mixed_outcomes,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen int64 `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     int64 `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldWeight, graphedge.FieldTrajectoryCount, graphedge.FieldContributorCount, graphedge.FieldPositiveOutcomes, graphedge.FieldNegativeOutcomes, graphedge.FieldMixedOutcomes, graphedge.FieldFirstSeen, graphedge.FieldLastSeen:
			values[i] = new(sql.NullInt64)
		case graphedge.FieldID, graphedge.FieldSourceID, graphedge.FieldTargetID, graphedge.FieldRelationshipType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphEdge fields.
func (_m *GraphEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case graphedge.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case graphedge.FieldTargetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value.Valid {
				_m.TargetID = value.String
			}
		case graphedge.FieldWeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = int(value.Int64)
			}
		case graphedge.FieldTrajectoryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trajectory_count", values[i])
			} else if value.Valid {
				_m.TrajectoryCount = int(value.Int64)
			}
		case graphedge.FieldContributorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field contributor_count", values[i])
			} else if value.Valid {
				_m.ContributorCount = int(value.Int64)
			}
		case graphedge.FieldRelationshipType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship_type", values[i])
			} else if value.Valid {
				_m.RelationshipType = new(string)
				*_m.RelationshipType = value.String
			}
		case graphedge.FieldPositiveOutcomes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field positive_outcomes", values[i])
			} else if value.Valid {
				_m.PositiveOutcomes = int(value.Int64)
			}
		case graphedge.FieldNegativeOutcomes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field negative_outcomes", values[i])
			} else if value.Valid {
				_m.NegativeOutcomes = int(value.Int64)
			}
		case graphedge.FieldMixedOutcomes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mixed_outcomes", values[i])
			} else if value.Valid {
				_m.MixedOutcomes = int(value.Int64)
			}
		case graphedge.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Int64
			}
		case graphedge.FieldLastSeen:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GraphEdge.
// This includes values selected through modifiers, order, etc.
func (_m *GraphEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GraphEdge.
// Note that you need to call GraphEdge.Unwrap() before calling this method if this GraphEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphEdge) Update() *GraphEdgeUpdateOne {
	return NewGraphEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphEdge) Unwrap() *GraphEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphEdge) String() string {
	var builder strings.Builder
	builder.WriteString("GraphEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("target_id=")
	builder.WriteString(_m.TargetID)
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("trajectory_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrajectoryCount))
	builder.WriteString(", ")
	builder.WriteString("contributor_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContributorCount))
	builder.WriteString(", ")
	if v := _m.RelationshipType; v != nil {
		builder.WriteString("relationship_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("positive_outcomes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PositiveOutcomes))
	builder.WriteString(", ")
	builder.WriteString("negative_outcomes=")
	builder.WriteString(fmt.Sprintf("%v", _m.NegativeOutcomes))
	builder.WriteString(", ")
	builder.WriteString("mixed_outcomes=")
	builder.WriteString(fmt.Sprintf("%v", _m.MixedOutcomes))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstSeen))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSeen))
	builder.WriteByte(')')
	return builder.String()
}

// GraphEdges is a parsable slice of GraphEdge.
type GraphEdges []*GraphEdge
