// Package services contains the per-account read/write services sitting
// between the HTTP handlers and the database client.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/praxishq/praxis/ent"
	"github.com/praxishq/praxis/ent/conversation"
	"github.com/praxishq/praxis/ent/message"
	"github.com/praxishq/praxis/pkg/database"
)

const defaultTimeout = 5 * time.Second

// titleRuneLimit caps the auto-derived conversation title.
const titleRuneLimit = 80

// ConversationService manages conversations and their messages.
type ConversationService struct {
	client *database.Client
	logger *slog.Logger
}

// NewConversationService creates a new conversation service.
func NewConversationService(client *database.Client) *ConversationService {
	return &ConversationService{
		client: client,
		logger: slog.Default().With("component", "services.ConversationService"),
	}
}

// GetOrCreate returns the conversation with the given id after checking
// ownership, or creates a fresh one titled from the first user message when no
// id is supplied.
func (s *ConversationService) GetOrCreate(ctx context.Context, accountID, conversationID, firstMessage string) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if conversationID != "" {
		conv, err := s.client.Conversation.Get(ctx, conversationID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to load conversation: %w", err)
		}
		if conv.AccountID != accountID {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrForbidden)
		}
		return conv, nil
	}

	now := time.Now().UnixMilli()
	create := s.client.Conversation.Create().
		SetID(uuid.NewString()).
		SetAccountID(accountID).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if title := deriveTitle(firstMessage); title != "" {
		create = create.SetTitle(title)
	}

	conv, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	s.logger.Info("conversation created", "conversation_id", conv.ID, "account_id", accountID)
	return conv, nil
}

// List returns the account's conversations, most recently active first.
func (s *ConversationService) List(ctx context.Context, accountID string) ([]*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := s.client.Conversation.Query().
		Where(conversation.AccountID(accountID)).
		Order(ent.Desc(conversation.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return rows, nil
}

// Get returns one conversation and its messages in chronological order.
func (s *ConversationService) Get(ctx context.Context, accountID, conversationID string) (*ent.Conversation, []*ent.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conv.AccountID != accountID {
		return nil, nil, fmt.Errorf("conversation %s: %w", conversationID, ErrForbidden)
	}

	messages, err := s.client.Message.Query().
		Where(message.ConversationID(conversationID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return conv, messages, nil
}

// History returns the conversation's messages in chronological order without
// an ownership check; callers must have resolved the conversation already.
func (s *ConversationService) History(ctx context.Context, conversationID string) ([]*ent.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := s.client.Message.Query().
		Where(message.ConversationID(conversationID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return rows, nil
}

// AddMessage appends a message and touches the conversation's updated_at.
func (s *ConversationService) AddMessage(ctx context.Context, conversationID string, role message.Role, content, trajectoryID string) (*ent.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UnixMilli()
	create := s.client.Message.Create().
		SetID(uuid.NewString()).
		SetConversationID(conversationID).
		SetRole(role).
		SetContent(content).
		SetCreatedAt(now)
	if trajectoryID != "" {
		create = create.SetTrajectoryID(trajectoryID)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	err = s.client.Conversation.UpdateOneID(conversationID).
		SetUpdatedAt(now).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to touch conversation: %w", err)
	}
	return msg, nil
}

// deriveTitle truncates the first user message to the title limit, cutting at
// rune boundaries.
func deriveTitle(text string) string {
	title := strings.TrimSpace(text)
	runes := []rune(title)
	if len(runes) > titleRuneLimit {
		title = string(runes[:titleRuneLimit])
	}
	return title
}
