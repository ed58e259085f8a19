package graph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxishq/praxis/ent"
	"github.com/praxishq/praxis/ent/contribution"
	"github.com/praxishq/praxis/ent/cooccurrence"
	"github.com/praxishq/praxis/ent/entity"
	"github.com/praxishq/praxis/ent/graphedge"
	"github.com/praxishq/praxis/ent/trajectoryevent"
	"github.com/praxishq/praxis/pkg/database"
	"github.com/praxishq/praxis/pkg/graph"
	"github.com/praxishq/praxis/pkg/models"
	"github.com/praxishq/praxis/pkg/services"
	"github.com/praxishq/praxis/pkg/tagparse"
	testdb "github.com/praxishq/praxis/test/database"
)

// runTurn drives one minimal chat turn through the engine: start, touch every
// mention in order, complete.
func runTurn(t *testing.T, e *graph.Engine, accountID, text string) *models.TrajectorySummary {
	t.Helper()
	ctx := context.Background()

	traj, err := e.StartTrajectory(ctx, accountID, text, "")
	require.NoError(t, err)

	_, err = e.LogEvent(ctx, traj.ID, trajectoryevent.EventTypeTrajectoryStart, "", nil, nil)
	require.NoError(t, err)

	for _, m := range tagparse.ExtractMentions(text) {
		_, _, _, err := e.Touch(ctx, accountID, traj.ID, m, trajectoryevent.EventTypeTouch, nil)
		require.NoError(t, err)
	}

	summary, err := e.CompleteTrajectory(ctx, traj.ID, accountID, "")
	require.NoError(t, err)
	return summary
}

func getEntity(t *testing.T, client *database.Client, normalized string) *entityRow {
	t.Helper()
	row, err := client.Entity.Query().
		Where(entity.NormalizedName(normalized)).
		Only(context.Background())
	require.NoError(t, err)
	return &entityRow{row.ID, row.TouchCount, row.TrajectoryCount, row.ContributorCount}
}

type entityRow struct {
	ID               string
	TouchCount       int
	TrajectoryCount  int
	ContributorCount int
}

func TestCompleteTrajectory_GraphGrowth(t *testing.T) {
	client := testdb.NewTestClient(t)
	e := graph.NewEngine(client)
	ctx := context.Background()

	const msg = "Teaching [[topic:fractions]] with [[strategy:visual models]]"

	// Turn 1: fresh database, one typed message.
	summary := runTurn(t, e, "teacher-1", msg)
	require.Len(t, summary.EntitiesTouched, 2)
	assert.Empty(t, summary.EntitiesDiscovered)
	require.Len(t, summary.EdgesTraversed, 1)

	fractions := getEntity(t, client, "fractions")
	visual := getEntity(t, client, "visual models")
	for _, row := range []*entityRow{fractions, visual} {
		assert.Equal(t, 1, row.TouchCount)
		assert.Equal(t, 1, row.TrajectoryCount)
		assert.Equal(t, 1, row.ContributorCount)
	}

	edge, err := client.GraphEdge.Query().
		Where(graphedge.SourceID(fractions.ID), graphedge.TargetID(visual.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, edge.Weight)
	assert.Equal(t, 1, edge.TrajectoryCount)

	coocs, err := client.Cooccurrence.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, coocs, 1)
	assert.Equal(t, 1, coocs[0].Count)
	assert.Less(t, coocs[0].EntityAID, coocs[0].EntityBID, "canonical orientation")

	// Turn 2: same user, same message.
	runTurn(t, e, "teacher-1", msg)

	fractions = getEntity(t, client, "fractions")
	visual = getEntity(t, client, "visual models")
	for _, row := range []*entityRow{fractions, visual} {
		assert.Equal(t, 2, row.TouchCount)
		assert.Equal(t, 2, row.TrajectoryCount)
		assert.Equal(t, 1, row.ContributorCount, "same account never counts twice")
	}

	edge, err = client.GraphEdge.Query().
		Where(graphedge.SourceID(fractions.ID), graphedge.TargetID(visual.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, edge.Weight)

	cooc, err := client.Cooccurrence.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cooc.Count)

	// Turn 3: second user, same message.
	runTurn(t, e, "teacher-2", msg)

	fractions = getEntity(t, client, "fractions")
	visual = getEntity(t, client, "visual models")
	for _, row := range []*entityRow{fractions, visual} {
		assert.Equal(t, 2, row.ContributorCount)
	}

	contribs, err := client.Contribution.Query().
		Where(contribution.EntityID(fractions.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, contribs, 2)

	edge, err = client.GraphEdge.Query().
		Where(graphedge.SourceID(fractions.ID), graphedge.TargetID(visual.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, edge.Weight)
}

func TestCompleteTrajectory_OutcomeLinkage(t *testing.T) {
	client := testdb.NewTestClient(t)
	e := graph.NewEngine(client)
	ctx := context.Background()

	t.Run("non-adjacent strategy and outcome", func(t *testing.T) {
		runTurn(t, e, "teacher-1",
			"Using [[strategy:number lines]] on [[topic:integers]] led to [[outcome:improved understanding]]")

		s := getEntity(t, client, "number lines")
		o := getEntity(t, client, "improved understanding")

		edge, err := client.GraphEdge.Query().
			Where(graphedge.SourceID(s.ID), graphedge.TargetID(o.ID)).
			Only(ctx)
		require.NoError(t, err)
		require.NotNil(t, edge.RelationshipType)
		assert.Equal(t, "leads_to", *edge.RelationshipType)
		assert.Equal(t, 1, edge.Weight, "outcome linkage does not double-count")
	})

	t.Run("adjacent strategy and outcome", func(t *testing.T) {
		runTurn(t, e, "teacher-1",
			"Tried [[strategy:peer review]] and saw [[outcome:mastery]]")

		s := getEntity(t, client, "peer review")
		o := getEntity(t, client, "mastery")

		edge, err := client.GraphEdge.Query().
			Where(graphedge.SourceID(s.ID), graphedge.TargetID(o.ID)).
			Only(ctx)
		require.NoError(t, err)
		require.NotNil(t, edge.RelationshipType)
		assert.Equal(t, "leads_to", *edge.RelationshipType)
		assert.Equal(t, 1, edge.Weight, "adjacency pass and outcome pass share the increment")
	})
}

func TestCompleteTrajectory_Idempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	e := graph.NewEngine(client)
	ctx := context.Background()

	traj, err := e.StartTrajectory(ctx, "teacher-1", "msg", "")
	require.NoError(t, err)
	for _, m := range tagparse.ExtractMentions("[[topic:ratios]] and [[strategy:tables]]") {
		_, _, _, err := e.Touch(ctx, "teacher-1", traj.ID, m, trajectoryevent.EventTypeTouch, nil)
		require.NoError(t, err)
	}

	first, err := e.CompleteTrajectory(ctx, traj.ID, "teacher-1", "s")
	require.NoError(t, err)
	second, err := e.CompleteTrajectory(ctx, traj.ID, "teacher-1", "s")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	row := getEntity(t, client, "ratios")
	assert.Equal(t, 1, row.TrajectoryCount, "replay must not move counters")

	edges, err := client.GraphEdge.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, 1, edges[0].Weight)

	cooc, err := client.Cooccurrence.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cooc.Count)
}

func TestLogEvent_SequenceAndCompletionGate(t *testing.T) {
	client := testdb.NewTestClient(t)
	e := graph.NewEngine(client)
	ctx := context.Background()

	traj, err := e.StartTrajectory(ctx, "teacher-1", "msg", "")
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := e.LogEvent(ctx, traj.ID, trajectoryevent.EventTypeReason, "", nil, nil)
		require.NoError(t, err)
	}

	rows, err := client.TrajectoryEvent.Query().
		Where(trajectoryevent.TrajectoryID(traj.ID)).
		Order(ent.Asc(trajectoryevent.FieldSequenceNum)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for i, row := range rows {
		assert.Equal(t, i, row.SequenceNum)
	}

	_, err = e.CompleteTrajectory(ctx, traj.ID, "teacher-1", "")
	require.NoError(t, err)

	_, err = e.LogEvent(ctx, traj.ID, trajectoryevent.EventTypeReason, "", nil, nil)
	require.ErrorIs(t, err, services.ErrTrajectoryCompleted)
}

func TestFindOrCreateEntity(t *testing.T) {
	client := testdb.NewTestClient(t)
	e := graph.NewEngine(client)
	ctx := context.Background()

	traj1, err := e.StartTrajectory(ctx, "teacher-1", "a", "")
	require.NoError(t, err)
	traj2, err := e.StartTrajectory(ctx, "teacher-1", "b", "")
	require.NoError(t, err)

	first, created, err := e.FindOrCreateEntity(ctx, "teacher-1", traj1.ID, "  Fraction Tiles ", "strategy", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "fraction tiles", first.NormalizedName)

	// Same name in a different trajectory resolves to the same row; the
	// account's contributor count stays at one.
	second, created, err := e.FindOrCreateEntity(ctx, "teacher-1", traj2.ID, "fraction tiles", "", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.TouchCount)
	assert.Equal(t, 1, second.ContributorCount)

	t.Run("entity type is sticky", func(t *testing.T) {
		row, _, err := e.FindOrCreateEntity(ctx, "teacher-1", traj2.ID, "fraction tiles", "topic", "")
		require.NoError(t, err)
		require.NotNil(t, row.EntityType)
		assert.Equal(t, "strategy", *row.EntityType)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, _, err := e.FindOrCreateEntity(ctx, "teacher-1", traj2.ID, "   ", "", "")
		assert.True(t, services.IsValidationError(err))
	})
}

func TestTouchAndDiscoverPartition(t *testing.T) {
	client := testdb.NewTestClient(t)
	e := graph.NewEngine(client)
	ctx := context.Background()

	traj, err := e.StartTrajectory(ctx, "teacher-1", "msg", "")
	require.NoError(t, err)

	_, _, _, err = e.Touch(ctx, "teacher-1", traj.ID,
		tagparse.Mention{Type: "topic", Name: "decimals"}, trajectoryevent.EventTypeTouch, nil)
	require.NoError(t, err)
	_, _, _, err = e.Touch(ctx, "teacher-1", traj.ID,
		tagparse.Mention{Type: "strategy", Name: "estimation"}, trajectoryevent.EventTypeDiscover, nil)
	require.NoError(t, err)

	summary, err := e.CompleteTrajectory(ctx, traj.ID, "teacher-1", "")
	require.NoError(t, err)
	assert.Len(t, summary.EntitiesTouched, 1)
	assert.Len(t, summary.EntitiesDiscovered, 1)

	// Discovered entities still enter the co-occurrence window.
	cooc, err := client.Cooccurrence.Query().Where(cooccurrence.Count(1)).Only(ctx)
	require.NoError(t, err)
	assert.Less(t, cooc.EntityAID, cooc.EntityBID)
}
