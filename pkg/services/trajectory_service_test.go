package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxishq/praxis/ent/trajectoryevent"
	"github.com/praxishq/praxis/pkg/graph"
	"github.com/praxishq/praxis/pkg/services"
	testdb "github.com/praxishq/praxis/test/database"
)

func TestTrajectoryViews(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	e := graph.NewEngine(client)
	s := services.NewTrajectoryService(client)

	first, err := e.StartTrajectory(ctx, "teacher-1", "first turn", "")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := e.LogEvent(ctx, first.ID, trajectoryevent.EventTypeReason, "", nil, nil)
		require.NoError(t, err)
	}
	time.Sleep(5 * time.Millisecond) // millisecond timestamps order the list
	second, err := e.StartTrajectory(ctx, "teacher-1", "second turn", "")
	require.NoError(t, err)
	_, err = e.StartTrajectory(ctx, "teacher-2", "other account", "")
	require.NoError(t, err)

	t.Run("list is newest first and account scoped", func(t *testing.T) {
		rows, err := s.List(ctx, "teacher-1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, second.ID, rows[0].ID)
		assert.Equal(t, first.ID, rows[1].ID)
	})

	t.Run("get returns events in sequence order", func(t *testing.T) {
		traj, events, err := s.Get(ctx, "teacher-1", first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, traj.ID)
		require.Len(t, events, 3)
		for i, ev := range events {
			assert.Equal(t, i, ev.SequenceNum)
		}
	})

	t.Run("get enforces ownership", func(t *testing.T) {
		_, _, err := s.Get(ctx, "teacher-2", first.ID)
		require.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := s.Get(ctx, "teacher-1", "missing")
		require.ErrorIs(t, err, services.ErrNotFound)
	})
}
