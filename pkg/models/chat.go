// Package models contains request/response models shared by the services,
// orchestrator, and API layers.
package models

// ChatRequest is the body of POST /chat and POST /chat/stream.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
	// LastEventID resumes a streamed turn: frames with id <= LastEventID are
	// suppressed. Stream endpoint only; the Last-Event-ID header wins if both
	// are present.
	LastEventID string `json:"lastEventId,omitempty"`
}

// TrajectorySummary is the per-turn mutation summary attached to chat
// responses and completion events.
type TrajectorySummary struct {
	ID                 string   `json:"id"`
	EntitiesDiscovered []string `json:"entitiesDiscovered"`
	EntitiesTouched    []string `json:"entitiesTouched"`
	EdgesTraversed     []string `json:"edgesTraversed"`
}

// ChatResponse is the body of the unary POST /chat reply.
type ChatResponse struct {
	ConversationID string            `json:"conversationId"`
	Message        string            `json:"message"`
	Trajectory     TrajectorySummary `json:"trajectory"`
}
