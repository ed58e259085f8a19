// Package events defines the chat-stream event model and the SSE writer that
// frames events with per-stream increasing ids.
//
// One chat turn emits, in order: exactly one trajectory_event{trajectory_start},
// zero or more trajectory_event{touch} for user tags, an optional
// trajectory_event{simulate}, one trajectory_event{reason}, one or more chunk,
// zero or more trajectory_event{touch|discover} for assistant tags, one
// trajectory_event{decide}, and exactly one terminal complete or error.
package events

import "github.com/praxishq/praxis/pkg/models"

// Stream event types (the SSE "event:" field).
const (
	StreamTypeChunk           = "chunk"
	StreamTypeTrajectoryEvent = "trajectory_event"
	StreamTypeComplete        = "complete"
	StreamTypeError           = "error"
)

// Trajectory event types carried in TrajectoryEventPayload.EventType.
const (
	TrajectoryEventStart    = "trajectory_start"
	TrajectoryEventTouch    = "touch"
	TrajectoryEventDiscover = "discover"
	TrajectoryEventReason   = "reason"
	TrajectoryEventDecide   = "decide"
	TrajectoryEventSimulate = "simulate"
)

// StreamEvent is one frame of a chat stream. The id is assigned by the Writer
// at delivery time.
type StreamEvent struct {
	Type string
	Data any
}

// TrajectoryEventPayload is the data of a trajectory_event frame. Which fields
// are set depends on the event type; everything is optional on the wire.
type TrajectoryEventPayload struct {
	EventType string `json:"eventType"`

	// Entity fields (touch, discover)
	EntityID   string `json:"entityId,omitempty"`
	Name       string `json:"name,omitempty"`
	EntityType string `json:"entityType,omitempty"`
	Source     string `json:"source,omitempty"`

	// Simulation fields (simulate)
	OutcomeCount        int   `json:"outcomeCount,omitempty"`
	DifferentiatorCount int   `json:"differentiatorCount,omitempty"`
	ResolvedCount       int   `json:"resolvedCount,omitempty"`
	UnresolvedCount     int   `json:"unresolvedCount,omitempty"`
	HasPatterns         *bool `json:"hasPatterns,omitempty"`

	// Decision fields (decide)
	Action             string `json:"action,omitempty"`
	EntitiesReferenced int    `json:"entitiesReferenced,omitempty"`
	NewEntities        int    `json:"newEntities,omitempty"`
	SimulationUsed     *bool  `json:"simulationUsed,omitempty"`
}

// ChunkPayload is the data of a chunk frame. FullContent carries the whole
// response so far, so a client can resync after dropped frames.
type ChunkPayload struct {
	Content     string `json:"content"`
	FullContent string `json:"fullContent"`
}

// CompletePayload is the data of the terminal complete frame.
type CompletePayload struct {
	ConversationID string                   `json:"conversationId"`
	MessageID      string                   `json:"messageId"`
	TrajectoryID   string                   `json:"trajectoryId"`
	Trajectory     models.TrajectorySummary `json:"trajectory"`
}

// ErrorPayload is the data of the terminal error frame.
type ErrorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Bool returns a pointer for the optional bool payload fields.
func Bool(v bool) *bool {
	return &v
}
