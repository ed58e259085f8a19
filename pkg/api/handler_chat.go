package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/praxishq/praxis/pkg/events"
	"github.com/praxishq/praxis/pkg/models"
)

const maxMessageLength = 100_000

// chatHandler handles POST /api/v1/chat: one full turn, unary response.
func (s *Server) chatHandler(c *echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if len(req.Message) > maxMessageLength {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "message exceeds maximum length")
	}

	result, err := s.orchestrator.RunTurn(c.Request().Context(), accountID(c), req, nil)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, models.ChatResponse{
		ConversationID: result.ConversationID,
		Message:        result.Response,
		Trajectory:     *result.Trajectory,
	})
}

// chatStreamHandler handles POST /api/v1/chat/stream: one turn delivered as an
// SSE stream with per-stream increasing ids. A Last-Event-ID header (or the
// lastEventId body field) suppresses frames the client already received.
func (s *Server) chatStreamHandler(c *echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if len(req.Message) > maxMessageLength {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "message exceeds maximum length")
	}

	lastEventID := c.Request().Header.Get("Last-Event-ID")
	if lastEventID == "" {
		lastEventID = req.LastEventID
	}

	// The response stays uncommitted until the first frame, so failures before
	// any emit still map to HTTP statuses instead of an empty 200 stream.
	writer := events.NewWriter(c.Response(), lastEventID)
	started := false
	emit := func(ev events.StreamEvent) error {
		if !started {
			started = true
			h := c.Response().Header()
			h.Set("Content-Type", "text/event-stream")
			h.Set("Cache-Control", "no-cache")
			h.Set("Connection", "keep-alive")
			c.Response().WriteHeader(http.StatusOK)
		}
		return writer.Send(ev)
	}

	_, err := s.orchestrator.RunTurn(c.Request().Context(), accountID(c), req, emit)
	if err != nil {
		if !started {
			return mapServiceError(err)
		}
		// The stream is the delivery channel now; terminate it in-band.
		_ = emit(events.StreamEvent{
			Type: events.StreamTypeError,
			Data: events.ErrorPayload{Message: "chat turn failed", Error: err.Error()},
		})
	}
	return nil
}
