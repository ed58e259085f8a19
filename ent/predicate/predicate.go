// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Contribution is the predicate function for contribution builders.
type Contribution func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Cooccurrence is the predicate function for cooccurrence builders.
type Cooccurrence func(*sql.Selector)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// GraphEdge is the predicate function for graphedge builders.
type GraphEdge func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Trajectory is the predicate function for trajectory builders.
type Trajectory func(*sql.Selector)

// TrajectoryEvent is the predicate function for trajectoryevent builders.
type TrajectoryEvent func(*sql.Selector)
