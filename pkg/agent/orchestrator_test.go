package agent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxishq/praxis/ent/trajectory"
	"github.com/praxishq/praxis/pkg/agent"
	"github.com/praxishq/praxis/pkg/events"
	"github.com/praxishq/praxis/pkg/graph"
	"github.com/praxishq/praxis/pkg/llm"
	"github.com/praxishq/praxis/pkg/models"
	"github.com/praxishq/praxis/pkg/services"
	testdb "github.com/praxishq/praxis/test/database"
)

// scriptedLLM replays a fixed chunk sequence.
type scriptedLLM struct {
	chunks []llm.Chunk
}

func (s *scriptedLLM) Generate(ctx context.Context, messages []llm.Message) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk, len(s.chunks))
	for _, c := range s.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

func textChunks(parts ...string) []llm.Chunk {
	chunks := make([]llm.Chunk, len(parts))
	for i, p := range parts {
		chunks[i] = &llm.TextChunk{Content: p}
	}
	return chunks
}

func newOrchestrator(t *testing.T, llmClient llm.Client) *agent.Orchestrator {
	t.Helper()
	client := testdb.NewTestClient(t)
	return agent.NewOrchestrator(
		graph.NewEngine(client),
		graph.NewReasoner(client),
		services.NewConversationService(client),
		llmClient,
	)
}

func TestRunTurn_EmissionOrder(t *testing.T) {
	mock := &scriptedLLM{chunks: textChunks(
		"Try [[strategy:visual models]] ",
		"for [[topic:fractions]].",
	)}
	o := newOrchestrator(t, mock)

	var got []events.StreamEvent
	result, err := o.RunTurn(context.Background(), "teacher-1", models.ChatRequest{
		Message: "Struggling with [[topic:fractions]] today",
	}, func(ev events.StreamEvent) error {
		got = append(got, ev)
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	var types []string
	for _, ev := range got {
		name := ev.Type
		if p, ok := ev.Data.(events.TrajectoryEventPayload); ok {
			name = name + ":" + p.EventType
		}
		types = append(types, name)
	}

	assert.Equal(t, []string{
		"trajectory_event:trajectory_start",
		"trajectory_event:touch", // user tag
		"trajectory_event:simulate",
		"trajectory_event:reason",
		"chunk",
		"chunk",
		"trajectory_event:discover", // visual models is new
		"trajectory_event:touch",    // fractions already touched this turn
		"trajectory_event:decide",
		"complete",
	}, types)

	complete := got[len(got)-1].Data.(events.CompletePayload)
	assert.Equal(t, result.ConversationID, complete.ConversationID)
	assert.Equal(t, result.Trajectory.ID, complete.TrajectoryID)
	assert.Len(t, complete.Trajectory.EntitiesTouched, 1)
	assert.Len(t, complete.Trajectory.EntitiesDiscovered, 1)
}

func TestRunTurn_ChunksCarryFullContent(t *testing.T) {
	mock := &scriptedLLM{chunks: textChunks("Hello ", "teacher")}
	o := newOrchestrator(t, mock)

	var chunks []events.ChunkPayload
	result, err := o.RunTurn(context.Background(), "teacher-1", models.ChatRequest{
		Message: "no tags here",
	}, func(ev events.StreamEvent) error {
		if ev.Type == events.StreamTypeChunk {
			chunks = append(chunks, ev.Data.(events.ChunkPayload))
		}
		return nil
	})
	require.NoError(t, err)

	require.Len(t, chunks, 2)
	assert.Equal(t, "Hello ", chunks[0].FullContent)
	assert.Equal(t, "Hello teacher", chunks[1].FullContent)
	assert.Equal(t, "Hello teacher", result.Response)
}

func TestRunTurn_OfflineUnary(t *testing.T) {
	o := newOrchestrator(t, nil)

	result, err := o.RunTurn(context.Background(), "teacher-1", models.ChatRequest{
		Message: "Teaching [[topic:fractions]]",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Contains(t, result.Response, "[[topic:fractions]]")
	require.NotNil(t, result.Trajectory)
	assert.Len(t, result.Trajectory.EntitiesTouched, 1)

	// A second identical turn deterministically repeats the offline answer.
	again, err := o.RunTurn(context.Background(), "teacher-1", models.ChatRequest{
		Message:        "Teaching [[topic:fractions]]",
		ConversationID: result.ConversationID,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, result.Response, again.Response)
	assert.Equal(t, result.ConversationID, again.ConversationID)
}

func TestRunTurn_OfflineStreamErrors(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := graph.NewEngine(client)
	o := agent.NewOrchestrator(engine, graph.NewReasoner(client),
		services.NewConversationService(client), nil)

	var got []events.StreamEvent
	result, err := o.RunTurn(context.Background(), "teacher-1", models.ChatRequest{
		Message: "Teaching [[topic:fractions]]",
	}, func(ev events.StreamEvent) error {
		got = append(got, ev)
		return nil
	})
	require.NoError(t, err)
	assert.Nil(t, result, "failure was delivered in-band")

	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, events.StreamTypeError, last.Type)

	// The trajectory stays open: queryable, understood as aborted.
	open, err := client.Trajectory.Query().
		Where(trajectory.CompletedAtIsNil()).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, open)
}

func TestRunTurn_Validation(t *testing.T) {
	o := newOrchestrator(t, nil)

	_, err := o.RunTurn(context.Background(), "teacher-1", models.ChatRequest{Message: "   "}, nil)
	assert.True(t, services.IsValidationError(err))
}

func TestRunTurn_ErrorChunkAbortsUnary(t *testing.T) {
	mock := &scriptedLLM{chunks: []llm.Chunk{
		&llm.TextChunk{Content: "partial"},
		&llm.ErrorChunk{Message: "upstream overloaded", Retryable: true},
	}}
	o := newOrchestrator(t, mock)

	_, err := o.RunTurn(context.Background(), "teacher-1", models.ChatRequest{Message: "hi"}, nil)
	require.ErrorIs(t, err, services.ErrUnavailable)
}
