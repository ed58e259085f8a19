package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxishq/praxis/pkg/agent"
	"github.com/praxishq/praxis/pkg/graph"
	"github.com/praxishq/praxis/pkg/services"
	testdb "github.com/praxishq/praxis/test/database"
)

func newTestServer(t *testing.T) (*Server, *services.ConversationService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	engine := graph.NewEngine(client)
	reasoner := graph.NewReasoner(client)
	conversations := services.NewConversationService(client)
	trajectories := services.NewTrajectoryService(client)
	orchestrator := agent.NewOrchestrator(engine, reasoner, conversations, nil)
	return NewServer(client, orchestrator, reasoner, graph.NewQuery(client), conversations, trajectories), conversations
}

func postStream(s *Server, account, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/stream", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if account != "" {
		req.Header.Set("X-Forwarded-User", account)
	}
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestChatStream_PreStreamErrorsMapToHTTP(t *testing.T) {
	s, conversations := newTestServer(t)

	t.Run("unknown conversation", func(t *testing.T) {
		rec := postStream(s, "teacher-1", `{"message":"hello","conversationId":"missing"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.NotContains(t, rec.Body.String(), "event:")
	})

	t.Run("foreign conversation", func(t *testing.T) {
		conv, err := conversations.GetOrCreate(context.Background(), "teacher-2", "", "someone else's thread")
		require.NoError(t, err)

		rec := postStream(s, "teacher-1", `{"message":"hello","conversationId":"`+conv.ID+`"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.NotContains(t, rec.Body.String(), "event:")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := postStream(s, "", `{"message":"hello"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestChatStream_StartedStreamEndsWithErrorFrame(t *testing.T) {
	// No model configured: the turn starts streaming trajectory events, then
	// generation fails, so the stream must end with one in-band error frame.
	s, _ := newTestServer(t)

	rec := postStream(s, "teacher-1", `{"message":"Teaching [[topic:fractions]]"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	assert.Contains(t, body, "event: trajectory_event")

	frames := strings.Split(strings.TrimSuffix(body, "\n\n"), "\n\n")
	require.NotEmpty(t, frames)
	assert.Contains(t, frames[len(frames)-1], "event: error")
	assert.Equal(t, 1, strings.Count(body, "event: error"))
	assert.NotContains(t, body, "event: complete")
}
