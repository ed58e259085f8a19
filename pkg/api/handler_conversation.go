package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/praxishq/praxis/ent"
)

// ConversationDetailResponse is the response for GET /conversations/:id.
type ConversationDetailResponse struct {
	Conversation *ent.Conversation `json:"conversation"`
	Messages     []*ent.Message    `json:"messages"`
}

// listConversationsHandler handles GET /api/v1/conversations.
func (s *Server) listConversationsHandler(c *echo.Context) error {
	rows, err := s.conversations.List(c.Request().Context(), accountID(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// getConversationHandler handles GET /api/v1/conversations/:id.
func (s *Server) getConversationHandler(c *echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}

	conv, messages, err := s.conversations.Get(c.Request().Context(), accountID(c), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ConversationDetailResponse{
		Conversation: conv,
		Messages:     messages,
	})
}
