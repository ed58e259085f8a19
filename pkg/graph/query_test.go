package graph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxishq/praxis/pkg/graph"
	"github.com/praxishq/praxis/pkg/services"
	testdb "github.com/praxishq/praxis/test/database"
)

func TestGetGraph_AccountView(t *testing.T) {
	client := testdb.NewTestClient(t)
	e := graph.NewEngine(client)
	q := graph.NewQuery(client)
	ctx := context.Background()

	runTurn(t, e, "teacher-1", "Teaching [[topic:fractions]] with [[strategy:visual models]]")
	runTurn(t, e, "teacher-2", "Teaching [[topic:decimals]] with [[strategy:estimation]]")

	view, err := q.GetGraph(ctx, "teacher-1", graph.GraphOptions{})
	require.NoError(t, err)

	require.Len(t, view.Nodes, 2)
	names := make(map[string]bool)
	for _, n := range view.Nodes {
		names[n.Name] = true
	}
	assert.True(t, names["fractions"])
	assert.True(t, names["visual models"])
	assert.False(t, names["decimals"], "other accounts' entities stay out of the view")

	require.Len(t, view.Edges, 1)
	assert.Equal(t, 1, view.Edges[0].Weight)

	t.Run("min weight filters edges but not nodes", func(t *testing.T) {
		view, err := q.GetGraph(ctx, "teacher-1", graph.GraphOptions{MinWeight: 2})
		require.NoError(t, err)
		assert.Len(t, view.Nodes, 2)
		assert.Empty(t, view.Edges)
	})

	t.Run("unknown account gets an empty view", func(t *testing.T) {
		view, err := q.GetGraph(ctx, "nobody", graph.GraphOptions{})
		require.NoError(t, err)
		assert.Empty(t, view.Nodes)
		assert.Empty(t, view.Edges)
	})
}

func TestGetGraph_BFS(t *testing.T) {
	client := testdb.NewTestClient(t)
	q := graph.NewQuery(client)
	ctx := context.Background()

	a := seedEntity(t, client, "a", "topic", 1)
	b := seedEntity(t, client, "b", "topic", 1)
	c := seedEntity(t, client, "c", "topic", 1)
	d := seedEntity(t, client, "d", "topic", 1)
	seedEdge(t, client, a.ID, b.ID, 3, 0, 0)
	// Reverse-oriented edge still expands the frontier.
	seedEdge(t, client, c.ID, b.ID, 2, 0, 0)
	seedEdge(t, client, c.ID, d.ID, 1, 0, 0)

	t.Run("depth one", func(t *testing.T) {
		view, err := q.GetGraph(ctx, "teacher-1", graph.GraphOptions{CenterID: a.ID, Depth: 1})
		require.NoError(t, err)
		assert.Len(t, view.Nodes, 2)
		assert.Len(t, view.Edges, 1)
	})

	t.Run("depth two", func(t *testing.T) {
		view, err := q.GetGraph(ctx, "teacher-1", graph.GraphOptions{CenterID: a.ID, Depth: 2})
		require.NoError(t, err)
		assert.Len(t, view.Nodes, 3)
		assert.Len(t, view.Edges, 2)
	})

	t.Run("default depth covers the whole chain", func(t *testing.T) {
		view, err := q.GetGraph(ctx, "teacher-1", graph.GraphOptions{CenterID: b.ID})
		require.NoError(t, err)
		assert.Len(t, view.Nodes, 4)
		assert.Len(t, view.Edges, 3)
	})

	t.Run("unknown center", func(t *testing.T) {
		_, err := q.GetGraph(ctx, "teacher-1", graph.GraphOptions{CenterID: "missing"})
		require.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestGetEntity(t *testing.T) {
	client := testdb.NewTestClient(t)
	e := graph.NewEngine(client)
	q := graph.NewQuery(client)
	ctx := context.Background()

	runTurn(t, e, "teacher-1", "Teaching [[topic:fractions]] with [[strategy:visual models]]")
	fractions := getEntity(t, client, "fractions")

	t.Run("touching account sees the detail", func(t *testing.T) {
		detail, err := q.GetEntity(ctx, "teacher-1", fractions.ID)
		require.NoError(t, err)
		assert.Equal(t, "fractions", detail.Name)
		assert.Equal(t, "topic", detail.EntityType)
		assert.Equal(t, 1, detail.TouchCount)

		require.Len(t, detail.Connected, 1)
		assert.Equal(t, "visual models", detail.Connected[0].Entity.Name)
		assert.Equal(t, 1, detail.Connected[0].Weight)

		require.Len(t, detail.RecentTrajectories, 1)
	})

	t.Run("non-touching account gets not found", func(t *testing.T) {
		_, err := q.GetEntity(ctx, "teacher-2", fractions.ID)
		require.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("unknown entity", func(t *testing.T) {
		_, err := q.GetEntity(ctx, "teacher-1", "missing")
		require.ErrorIs(t, err, services.ErrNotFound)
	})
}
