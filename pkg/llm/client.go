// Package llm abstracts the language-model backend behind a channel-based
// streaming client.
package llm

import "context"

// Client streams completions from a language model.
type Client interface {
	// Generate sends a conversation to the model and returns a stream of
	// chunks. The returned channel is closed when the stream completes.
	// Errors are delivered as ErrorChunk values in the channel.
	Generate(ctx context.Context, messages []Message) (<-chan Chunk, error)

	// Close releases any underlying connections.
	Close() error
}

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Role values for Message.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeError ChunkType = "error"
)

// TextChunk is a chunk of the model's text response.
type TextChunk struct{ Content string }

// ErrorChunk signals an error from the model provider.
type ErrorChunk struct {
	Message   string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType  { return ChunkTypeText }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }
