package graph_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxishq/praxis/ent"
	"github.com/praxishq/praxis/pkg/database"
	"github.com/praxishq/praxis/pkg/graph"
	"github.com/praxishq/praxis/pkg/models"
	testdb "github.com/praxishq/praxis/test/database"
)

func seedEntity(t *testing.T, client *database.Client, name, entityType string, touchCount int) *ent.Entity {
	t.Helper()
	create := client.Entity.Create().
		SetID(uuid.NewString()).
		SetName(name).
		SetNormalizedName(name).
		SetTouchCount(touchCount).
		SetTrajectoryCount(1).
		SetContributorCount(1).
		SetFirstSeen(1).
		SetLastSeen(1)
	if entityType != "" {
		create = create.SetEntityType(entityType)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func seedEdge(t *testing.T, client *database.Client, sourceID, targetID string, weight, positive, negative int) {
	t.Helper()
	err := client.GraphEdge.Create().
		SetID(uuid.NewString()).
		SetSourceID(sourceID).
		SetTargetID(targetID).
		SetWeight(weight).
		SetTrajectoryCount(weight).
		SetPositiveOutcomes(positive).
		SetNegativeOutcomes(negative).
		SetFirstSeen(1).
		SetLastSeen(1).
		Exec(context.Background())
	require.NoError(t, err)
}

func seedCooccurrence(t *testing.T, client *database.Client, idA, idB string, count int) {
	t.Helper()
	if idA > idB {
		idA, idB = idB, idA
	}
	err := client.Cooccurrence.Create().
		SetID(uuid.NewString()).
		SetEntityAID(idA).
		SetEntityBID(idB).
		SetCount(count).
		SetWindowCount(count).
		SetTrajectoryCount(count).
		SetLastUpdated(1).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestSimulate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		r := graph.NewReasoner(client)

		result, err := r.Simulate(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Resolved)
		assert.Empty(t, result.Unresolved)
		assert.False(t, result.Evidence.HasPatterns)
	})

	t.Run("only unresolved names", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		r := graph.NewReasoner(client)

		result, err := r.Simulate(ctx, []models.EntityInput{{Name: "nonexistent thing"}})
		require.NoError(t, err)
		assert.Empty(t, result.Resolved)
		assert.Equal(t, []string{"nonexistent thing"}, result.Unresolved)
		assert.False(t, result.Evidence.HasPatterns)
	})

	t.Run("outcome distribution sums to one and sorts descending", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		r := graph.NewReasoner(client)

		s := seedEntity(t, client, "worked examples", "strategy", 5)
		o1 := seedEntity(t, client, "improved understanding", "outcome", 3)
		o2 := seedEntity(t, client, "confusion", "outcome", 2)
		seedEdge(t, client, s.ID, o1.ID, 6, 0, 0)
		// Reverse orientation merges into the same projection.
		seedEdge(t, client, o2.ID, s.ID, 2, 0, 0)

		result, err := r.Simulate(ctx, []models.EntityInput{{Name: "worked examples", Type: "strategy"}})
		require.NoError(t, err)
		require.Len(t, result.Outcomes, 2)

		assert.Equal(t, "improved understanding", result.Outcomes[0].Name)
		assert.InDelta(t, 0.75, result.Outcomes[0].Probability, 1e-9)
		assert.InDelta(t, 0.25, result.Outcomes[1].Probability, 1e-9)

		total := 0.0
		for _, o := range result.Outcomes {
			total += o.Probability
		}
		assert.InDelta(t, 1.0, total, 1e-9)

		assert.Equal(t, 8, result.Evidence.TotalObservations)
		assert.True(t, result.Evidence.HasPatterns)
	})

	t.Run("non-outcome neighbours are not projected", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		r := graph.NewReasoner(client)

		s := seedEntity(t, client, "worked examples", "strategy", 5)
		topic := seedEntity(t, client, "fractions", "topic", 5)
		seedEdge(t, client, s.ID, topic.ID, 4, 0, 0)

		result, err := r.Simulate(ctx, []models.EntityInput{{Name: "worked examples"}})
		require.NoError(t, err)
		assert.Empty(t, result.Outcomes)
		assert.False(t, result.Evidence.HasPatterns)
	})

	t.Run("differentiators need a deviating outcome profile", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		r := graph.NewReasoner(client)

		s := seedEntity(t, client, "think-pair-share", "strategy", 5)
		o := seedEntity(t, client, "improved understanding", "outcome", 3)
		strong := seedEntity(t, client, "small groups", "context", 4)
		flat := seedEntity(t, client, "morning class", "context", 4)
		seedEdge(t, client, s.ID, o.ID, 5, 0, 0)
		seedCooccurrence(t, client, s.ID, strong.ID, 7)
		seedCooccurrence(t, client, s.ID, flat.ID, 6)
		// strong improves (9 of 10 positive); flat sits at the baseline.
		seedEdge(t, client, strong.ID, o.ID, 10, 9, 1)
		seedEdge(t, client, flat.ID, o.ID, 10, 5, 5)

		result, err := r.Simulate(ctx, []models.EntityInput{{Name: "think-pair-share"}})
		require.NoError(t, err)
		require.Len(t, result.Differentiators, 1)

		d := result.Differentiators[0]
		assert.Equal(t, "small groups", d.Name)
		assert.Equal(t, "context", d.Role)
		assert.Equal(t, "improves", d.Effect)
		assert.InDelta(t, 0.4, d.Magnitude, 1e-9)
		assert.Equal(t, 7, d.CooccurrenceStrength)
	})

	t.Run("valence on edges to non-outcome entities is ignored", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		r := graph.NewReasoner(client)

		s := seedEntity(t, client, "think-pair-share", "strategy", 5)
		o := seedEntity(t, client, "improved understanding", "outcome", 3)
		cand := seedEntity(t, client, "small groups", "context", 4)
		topic := seedEntity(t, client, "fractions", "topic", 4)
		seedEdge(t, client, s.ID, o.ID, 5, 0, 0)
		seedCooccurrence(t, client, s.ID, cand.ID, 7)
		// Heavy counters, but the target is a topic, not an outcome.
		seedEdge(t, client, cand.ID, topic.ID, 10, 9, 1)

		result, err := r.Simulate(ctx, []models.EntityInput{{Name: "think-pair-share"}})
		require.NoError(t, err)
		assert.Empty(t, result.Differentiators,
			"without outcome-edge evidence the candidate sits at the baseline")
	})
}

func TestCounterfactual(t *testing.T) {
	ctx := context.Background()

	t.Run("trivial swap replaces the entity", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		r := graph.NewReasoner(client)

		seedEntity(t, client, "a", "strategy", 2)
		seedEntity(t, client, "b", "strategy", 2)

		result, err := r.Counterfactual(ctx,
			[]models.EntityInput{{Name: "A"}},
			models.EntityChange{From: models.EntityInput{Name: "A"}, To: models.EntityInput{Name: "B"}})
		require.NoError(t, err)

		require.Len(t, result.Alternative.Resolved, 1)
		assert.Equal(t, "b", result.Alternative.Resolved[0].Name)
		assert.Equal(t, "uncertain", result.Comparison.NetEffect,
			"fewer than five observations on either side forces uncertain")
		assert.NotEmpty(t, result.Comparison.Recommendation)
	})

	t.Run("positive shift with enough evidence", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		r := graph.NewReasoner(client)

		a := seedEntity(t, client, "lecture", "strategy", 5)
		b := seedEntity(t, client, "inquiry", "strategy", 5)
		good := seedEntity(t, client, "improved understanding", "outcome", 3)
		bad := seedEntity(t, client, "confusion", "outcome", 3)
		seedEdge(t, client, a.ID, good.ID, 2, 0, 0)
		seedEdge(t, client, a.ID, bad.ID, 8, 0, 0)
		seedEdge(t, client, b.ID, good.ID, 8, 0, 0)
		seedEdge(t, client, b.ID, bad.ID, 2, 0, 0)

		result, err := r.Counterfactual(ctx,
			[]models.EntityInput{{Name: "lecture"}},
			models.EntityChange{From: models.EntityInput{Name: "lecture"}, To: models.EntityInput{Name: "inquiry"}})
		require.NoError(t, err)

		assert.Equal(t, "positive", result.Comparison.NetEffect)
		require.NotEmpty(t, result.Comparison.OutcomeShifts)
		// Shifts sort by absolute delta.
		for i := 1; i < len(result.Comparison.OutcomeShifts); i++ {
			assert.GreaterOrEqual(t,
				math.Abs(result.Comparison.OutcomeShifts[i-1].Delta),
				math.Abs(result.Comparison.OutcomeShifts[i].Delta))
		}
	})

	t.Run("unmatched from appends to", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		r := graph.NewReasoner(client)

		seedEntity(t, client, "a", "strategy", 2)
		seedEntity(t, client, "b", "strategy", 2)

		result, err := r.Counterfactual(ctx,
			[]models.EntityInput{{Name: "a"}},
			models.EntityChange{From: models.EntityInput{Name: "zzz"}, To: models.EntityInput{Name: "b"}})
		require.NoError(t, err)
		require.Len(t, result.Alternative.Resolved, 2)
	})
}

func TestFormatForAI(t *testing.T) {
	result := &models.SimulationResult{
		Resolved: []models.ResolvedEntity{
			{ID: "1", Name: "fractions", EntityType: "topic", TouchCount: 4},
			{ID: "2", Name: "visual models", TouchCount: 2},
		},
		Outcomes: []models.OutcomeProjection{
			{EntityID: "3", Name: "improved understanding", Probability: 0.75, Weight: 6},
			{EntityID: "4", Name: "confusion", Probability: 0.25, Weight: 2},
		},
		Differentiators: []models.Differentiator{
			{EntityID: "5", Name: "small groups", Role: "context", Effect: "improves", Magnitude: 0.4, CooccurrenceStrength: 7},
		},
		Evidence: models.Evidence{TotalObservations: 8, OutcomeCount: 2, HasPatterns: true},
	}

	first := graph.FormatForAI(result)
	second := graph.FormatForAI(result)
	assert.Equal(t, first, second, "same input must render byte-identical output")

	assert.Contains(t, first, "Situation involves:")
	assert.Contains(t, first, "Observed outcomes from similar situations:")
	assert.Contains(t, first, "Factors that may influence outcomes:")
	assert.Contains(t, first, "improved understanding: 75% (6 observations)")
	assert.NotContains(t, first, "very little recorded experience")

	t.Run("scarcity notice under five observations", func(t *testing.T) {
		thin := &models.SimulationResult{
			Resolved: []models.ResolvedEntity{{ID: "1", Name: "fractions", TouchCount: 1}},
			Evidence: models.Evidence{TotalObservations: 2},
		}
		assert.Contains(t, graph.FormatForAI(thin), "very little recorded experience")
	})
}
