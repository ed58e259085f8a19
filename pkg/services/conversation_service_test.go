package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxishq/praxis/ent/message"
	"github.com/praxishq/praxis/pkg/services"
	testdb "github.com/praxishq/praxis/test/database"
)

func TestConversationGetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with a derived title", func(t *testing.T) {
		s := services.NewConversationService(testdb.NewTestClient(t))

		conv, err := s.GetOrCreate(ctx, "teacher-1", "", "  How do I teach fractions?  ")
		require.NoError(t, err)
		require.NotNil(t, conv.Title)
		assert.Equal(t, "How do I teach fractions?", *conv.Title)
		assert.Equal(t, "teacher-1", conv.AccountID)
	})

	t.Run("truncates long titles at rune boundaries", func(t *testing.T) {
		s := services.NewConversationService(testdb.NewTestClient(t))

		long := strings.Repeat("ä", 200)
		conv, err := s.GetOrCreate(ctx, "teacher-1", "", long)
		require.NoError(t, err)
		require.NotNil(t, conv.Title)
		assert.Equal(t, 80, len([]rune(*conv.Title)))
	})

	t.Run("returns an owned conversation", func(t *testing.T) {
		s := services.NewConversationService(testdb.NewTestClient(t))

		created, err := s.GetOrCreate(ctx, "teacher-1", "", "hello")
		require.NoError(t, err)

		got, err := s.GetOrCreate(ctx, "teacher-1", created.ID, "ignored")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("rejects another account's conversation", func(t *testing.T) {
		s := services.NewConversationService(testdb.NewTestClient(t))

		created, err := s.GetOrCreate(ctx, "teacher-1", "", "hello")
		require.NoError(t, err)

		_, err = s.GetOrCreate(ctx, "teacher-2", created.ID, "ignored")
		require.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := services.NewConversationService(testdb.NewTestClient(t))

		_, err := s.GetOrCreate(ctx, "teacher-1", "missing", "hello")
		require.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestConversationMessages(t *testing.T) {
	ctx := context.Background()
	s := services.NewConversationService(testdb.NewTestClient(t))

	conv, err := s.GetOrCreate(ctx, "teacher-1", "", "first")
	require.NoError(t, err)

	_, err = s.AddMessage(ctx, conv.ID, message.RoleUser, "first", "")
	require.NoError(t, err)
	_, err = s.AddMessage(ctx, conv.ID, message.RoleAssistant, "reply", "")
	require.NoError(t, err)

	got, messages, err := s.Get(ctx, "teacher-1", conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, got.ID)
	require.Len(t, messages, 2)
	assert.Equal(t, message.RoleUser, messages[0].Role)
	assert.Equal(t, message.RoleAssistant, messages[1].Role)
	assert.GreaterOrEqual(t, got.UpdatedAt, conv.UpdatedAt)

	t.Run("get enforces ownership", func(t *testing.T) {
		_, _, err := s.Get(ctx, "teacher-2", conv.ID)
		require.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("history skips the ownership check", func(t *testing.T) {
		rows, err := s.History(ctx, conv.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}

func TestConversationList(t *testing.T) {
	ctx := context.Background()
	s := services.NewConversationService(testdb.NewTestClient(t))

	first, err := s.GetOrCreate(ctx, "teacher-1", "", "first")
	require.NoError(t, err)
	second, err := s.GetOrCreate(ctx, "teacher-1", "", "second")
	require.NoError(t, err)
	_, err = s.GetOrCreate(ctx, "teacher-2", "", "other account")
	require.NoError(t, err)

	// Touch the first conversation so it becomes the most recently active.
	// Millisecond timestamps need a beat to move.
	time.Sleep(5 * time.Millisecond)
	_, err = s.AddMessage(ctx, first.ID, message.RoleUser, "bump", "")
	require.NoError(t, err)

	rows, err := s.List(ctx, "teacher-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, second.ID, rows[1].ID)
}
