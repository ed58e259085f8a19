package llm

import (
	"context"
	"log/slog"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultModel = "gpt-4o-mini"

// chunkBufferSize bounds how far the provider can run ahead of the consumer.
const chunkBufferSize = 64

// OpenAIClient streams chat completions from any OpenAI-compatible endpoint.
type OpenAIClient struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a streaming client. baseURL is optional; an empty
// value targets the OpenAI API.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = defaultModel
	}
	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  model,
		logger: slog.Default().With("component", "llm.OpenAIClient"),
	}
}

// NewFromEnv builds a client from OPENAI_API_KEY, OPENAI_BASE_URL, and
// PRAXIS_MODEL. Returns nil when no API key is configured; callers treat a nil
// client as the offline mode.
func NewFromEnv() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Warn("OPENAI_API_KEY not set, running without a language model")
		return nil
	}
	return NewOpenAIClient(apiKey, os.Getenv("OPENAI_BASE_URL"), os.Getenv("PRAXIS_MODEL"))
}

// Generate implements Client. The goroutine feeding the channel stops on
// context cancellation; the channel is always closed.
func (c *OpenAIClient) Generate(ctx context.Context, messages []Message) (<-chan Chunk, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: convertMessages(messages),
	}

	out := make(chan Chunk, chunkBufferSize)
	go func() {
		defer close(out)

		stream := c.client.Chat.Completions.NewStreaming(ctx, params)
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case out <- &TextChunk{Content: delta}:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil {
			c.logger.Error("completion stream failed", "error", err)
			select {
			case out <- &ErrorChunk{Message: err.Error(), Retryable: true}:
			case <-ctx.Done():
			}
		}
	}()

	return out, nil
}

// Close implements Client. The underlying HTTP client needs no teardown.
func (c *OpenAIClient) Close() error {
	return nil
}

func convertMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			result = append(result, openai.SystemMessage(m.Content))
		case RoleAssistant:
			result = append(result, openai.AssistantMessage(m.Content))
		default:
			result = append(result, openai.UserMessage(m.Content))
		}
	}
	return result
}
