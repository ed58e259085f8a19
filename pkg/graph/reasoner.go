package graph

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/praxishq/praxis/ent"
	"github.com/praxishq/praxis/ent/cooccurrence"
	"github.com/praxishq/praxis/ent/entity"
	"github.com/praxishq/praxis/ent/graphedge"
	"github.com/praxishq/praxis/pkg/database"
	"github.com/praxishq/praxis/pkg/models"
	"github.com/praxishq/praxis/pkg/tagparse"
)

// Differentiator tuning. Baseline is a fixed placeholder, not a computed
// marginal; callers rely on that exact value.
const (
	differentiatorBaseline  = 0.5
	differentiatorImproves  = 0.6
	differentiatorReduces   = 0.4
	differentiatorMinEffect = 0.1
	differentiatorScan      = 20
	differentiatorKeep      = 5

	// Below this many summed observations a counterfactual verdict is forced
	// to uncertain.
	minObservations = 5

	netEffectThreshold = 0.05
)

// positiveMarkers classify outcome names lexically for the counterfactual
// net-effect sum.
var positiveMarkers = []string{"improved", "success", "understanding", "mastery", "effective"}

// Reasoner answers structural questions over the current graph state. All
// methods are pure reads: no trajectory events are consulted and nothing is
// mutated.
type Reasoner struct {
	client *database.Client
}

// NewReasoner creates a reasoner on top of the database client.
func NewReasoner(client *database.Client) *Reasoner {
	return &Reasoner{client: client}
}

// Resolve maps input names to graph entities. Exact normalized-name match
// first (with the type constraint when given), then a substring fallback
// preferring the most-touched candidate. Unmatched names come back verbatim.
func (r *Reasoner) Resolve(ctx context.Context, inputs []models.EntityInput) ([]*ent.Entity, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var resolved []*ent.Entity
	var unresolved []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		normalized := tagparse.Normalize(input.Name)
		if normalized == "" {
			continue
		}

		query := r.client.Entity.Query().
			Where(entity.NormalizedName(normalized))
		if input.Type != "" {
			query = query.Where(entity.EntityType(strings.ToLower(input.Type)))
		}
		row, err := query.First(ctx)
		if ent.IsNotFound(err) {
			row, err = r.client.Entity.Query().
				Where(entity.NormalizedNameContains(normalized)).
				Order(ent.Desc(entity.FieldTouchCount)).
				First(ctx)
		}
		if err != nil {
			if ent.IsNotFound(err) {
				unresolved = append(unresolved, input.Name)
				continue
			}
			return nil, nil, fmt.Errorf("failed to resolve entity %q: %w", input.Name, err)
		}
		if !seen[row.ID] {
			seen[row.ID] = true
			resolved = append(resolved, row)
		}
	}

	return resolved, unresolved, nil
}

// Simulate projects the outcome distribution and differentiating factors for
// a set of entities from edge and co-occurrence structure alone.
func (r *Reasoner) Simulate(ctx context.Context, inputs []models.EntityInput) (*models.SimulationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resolved, unresolved, err := r.Resolve(ctx, inputs)
	if err != nil {
		return nil, err
	}

	result := &models.SimulationResult{
		Resolved:   make([]models.ResolvedEntity, 0, len(resolved)),
		Unresolved: unresolved,
	}
	if result.Unresolved == nil {
		result.Unresolved = []string{}
	}
	for _, row := range resolved {
		re := models.ResolvedEntity{
			ID:         row.ID,
			Name:       row.Name,
			TouchCount: row.TouchCount,
		}
		if row.EntityType != nil {
			re.EntityType = *row.EntityType
		}
		result.Resolved = append(result.Resolved, re)
	}
	if len(resolved) == 0 {
		return result, nil
	}

	ids := make([]string, len(resolved))
	for i, row := range resolved {
		ids[i] = row.ID
	}

	outcomes, err := r.projectOutcomes(ctx, ids)
	if err != nil {
		return nil, err
	}
	result.Outcomes = outcomes

	diffs, err := r.findDifferentiators(ctx, ids)
	if err != nil {
		return nil, err
	}
	result.Differentiators = diffs

	for _, o := range outcomes {
		result.Evidence.TotalObservations += o.Weight
	}
	result.Evidence.OutcomeCount = len(outcomes)
	result.Evidence.HasPatterns = len(outcomes) > 0 || len(diffs) > 0

	return result, nil
}

// outcomeAccum merges outcome edges of both orientations per outcome entity.
type outcomeAccum struct {
	weight           int
	positive         int
	negative         int
	mixed            int
	contributorCount int
}

// projectOutcomes collects edges between the resolved set and outcome
// entities in both orientations (historic rows were written either way),
// merges them per outcome, and normalises weights into probabilities.
func (r *Reasoner) projectOutcomes(ctx context.Context, ids []string) ([]models.OutcomeProjection, error) {
	forward, err := r.client.GraphEdge.Query().
		Where(graphedge.SourceIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load forward edges: %w", err)
	}
	reverse, err := r.client.GraphEdge.Query().
		Where(graphedge.TargetIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reverse edges: %w", err)
	}

	candidateIDs := make(map[string]bool)
	for _, e := range forward {
		candidateIDs[e.TargetID] = true
	}
	for _, e := range reverse {
		candidateIDs[e.SourceID] = true
	}
	outcomeEntities, err := r.outcomeEntities(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]*outcomeAccum)
	accumulate := func(outcomeID string, e *ent.GraphEdge) {
		if _, ok := outcomeEntities[outcomeID]; !ok {
			return
		}
		acc := merged[outcomeID]
		if acc == nil {
			acc = &outcomeAccum{}
			merged[outcomeID] = acc
		}
		acc.weight += e.Weight
		acc.positive += e.PositiveOutcomes
		acc.negative += e.NegativeOutcomes
		acc.mixed += e.MixedOutcomes
		if e.ContributorCount > acc.contributorCount {
			acc.contributorCount = e.ContributorCount
		}
	}
	for _, e := range forward {
		accumulate(e.TargetID, e)
	}
	for _, e := range reverse {
		accumulate(e.SourceID, e)
	}

	totalWeight := 0
	for _, acc := range merged {
		totalWeight += acc.weight
	}

	projections := make([]models.OutcomeProjection, 0, len(merged))
	for id, acc := range merged {
		p := models.OutcomeProjection{
			EntityID:         id,
			Name:             outcomeEntities[id].Name,
			Weight:           acc.weight,
			PositiveCount:    acc.positive,
			NegativeCount:    acc.negative,
			MixedCount:       acc.mixed,
			ContributorCount: acc.contributorCount,
		}
		if totalWeight > 0 {
			p.Probability = float64(acc.weight) / float64(totalWeight)
		}
		projections = append(projections, p)
	}
	sort.SliceStable(projections, func(i, j int) bool {
		if projections[i].Probability != projections[j].Probability {
			return projections[i].Probability > projections[j].Probability
		}
		return projections[i].Name < projections[j].Name
	})

	return projections, nil
}

// outcomeEntities filters a candidate id set down to entities typed outcome.
func (r *Reasoner) outcomeEntities(ctx context.Context, candidateIDs map[string]bool) (map[string]*ent.Entity, error) {
	if len(candidateIDs) == 0 {
		return map[string]*ent.Entity{}, nil
	}
	ids := make([]string, 0, len(candidateIDs))
	for id := range candidateIDs {
		ids = append(ids, id)
	}
	rows, err := r.client.Entity.Query().
		Where(entity.IDIn(ids...), entity.EntityType(tagparse.TypeOutcome)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load outcome entities: %w", err)
	}
	byID := make(map[string]*ent.Entity, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	return byID, nil
}

// findDifferentiators scans co-occurrence neighbours of the resolved set with
// role context, constraint, or strategy and keeps the ones whose forward
// outcome-edge profile deviates from the fixed baseline.
func (r *Reasoner) findDifferentiators(ctx context.Context, ids []string) ([]models.Differentiator, error) {
	inSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		inSet[id] = true
	}

	rows, err := r.client.Cooccurrence.Query().
		Where(cooccurrence.Or(
			cooccurrence.EntityAIDIn(ids...),
			cooccurrence.EntityBIDIn(ids...),
		)).
		Order(ent.Desc(cooccurrence.FieldCount)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cooccurrences: %w", err)
	}

	// Strongest co-occurrence wins when a candidate appears in several rows.
	type candidate struct {
		id       string
		strength int
	}
	var candidates []candidate
	picked := make(map[string]bool)
	for _, row := range rows {
		other := row.EntityBID
		if inSet[other] {
			other = row.EntityAID
		}
		if inSet[other] || picked[other] {
			continue
		}
		picked[other] = true
		candidates = append(candidates, candidate{id: other, strength: row.Count})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	candidateIDs := make([]string, len(candidates))
	for i, c := range candidates {
		candidateIDs[i] = c.id
	}
	entities, err := r.client.Entity.Query().
		Where(
			entity.IDIn(candidateIDs...),
			entity.EntityTypeIn(tagparse.TypeContext, tagparse.TypeConstraint, tagparse.TypeStrategy),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load differentiator candidates: %w", err)
	}
	byID := make(map[string]*ent.Entity, len(entities))
	for _, row := range entities {
		byID[row.ID] = row
	}

	// Only candidates with a differentiating role survive; the scan cap
	// applies after that filter, strongest co-occurrence first.
	scanned := 0
	var diffs []models.Differentiator
	for _, c := range candidates {
		row, ok := byID[c.id]
		if !ok {
			continue
		}
		if scanned++; scanned > differentiatorScan {
			break
		}

		edges, err := r.client.GraphEdge.Query().
			Where(graphedge.SourceID(c.id)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load edges for candidate %s: %w", c.id, err)
		}
		// Only edges into outcome entities carry valence; counters on edges to
		// other roles must not move the rate.
		targets := make(map[string]bool, len(edges))
		for _, e := range edges {
			targets[e.TargetID] = true
		}
		outcomeTargets, err := r.outcomeEntities(ctx, targets)
		if err != nil {
			return nil, err
		}
		positive, negative := 0, 0
		for _, e := range edges {
			if _, ok := outcomeTargets[e.TargetID]; !ok {
				continue
			}
			positive += e.PositiveOutcomes
			negative += e.NegativeOutcomes
		}

		positiveRate := differentiatorBaseline
		if positive+negative > 0 {
			positiveRate = float64(positive) / float64(positive+negative)
		}
		magnitude := positiveRate - differentiatorBaseline
		if magnitude < 0 {
			magnitude = -magnitude
		}
		if magnitude <= differentiatorMinEffect {
			continue
		}

		effect := "mixed"
		switch {
		case positiveRate > differentiatorImproves:
			effect = "improves"
		case positiveRate < differentiatorReduces:
			effect = "reduces"
		}

		diffs = append(diffs, models.Differentiator{
			EntityID:             row.ID,
			Name:                 row.Name,
			Role:                 *row.EntityType,
			Effect:               effect,
			Magnitude:            magnitude,
			CooccurrenceStrength: c.strength,
		})
	}

	sort.SliceStable(diffs, func(i, j int) bool {
		if diffs[i].Magnitude != diffs[j].Magnitude {
			return diffs[i].Magnitude > diffs[j].Magnitude
		}
		return diffs[i].Name < diffs[j].Name
	})
	if len(diffs) > differentiatorKeep {
		diffs = diffs[:differentiatorKeep]
	}
	return diffs, nil
}

// Counterfactual simulates the base entity set, applies the swap, simulates
// the alternative, and classifies the net effect of the change.
func (r *Reasoner) Counterfactual(ctx context.Context, base []models.EntityInput, change models.EntityChange) (*models.CounterfactualResult, error) {
	original, err := r.Simulate(ctx, base)
	if err != nil {
		return nil, err
	}

	alt := applyChange(base, change)

	alternative, err := r.Simulate(ctx, alt)
	if err != nil {
		return nil, err
	}

	comparison := compare(original, alternative)

	return &models.CounterfactualResult{
		Original:    original,
		Alternative: alternative,
		Change:      change,
		Comparison:  comparison,
	}, nil
}

// applyChange replaces every base element matching change.From with change.To.
// When nothing matched, From is removed (a no-op by construction) and To is
// appended so the alternative still differs from the base.
func applyChange(base []models.EntityInput, change models.EntityChange) []models.EntityInput {
	matches := func(in models.EntityInput) bool {
		if !strings.EqualFold(in.Name, change.From.Name) {
			return false
		}
		return change.From.Type == "" || strings.EqualFold(in.Type, change.From.Type)
	}

	alt := make([]models.EntityInput, 0, len(base)+1)
	matched := false
	for _, in := range base {
		if matches(in) {
			alt = append(alt, change.To)
			matched = true
			continue
		}
		alt = append(alt, in)
	}
	if !matched {
		alt = append(alt, change.To)
	}
	return alt
}

func compare(base, alt *models.SimulationResult) models.Comparison {
	baseProb := make(map[string]float64)
	for _, o := range base.Outcomes {
		baseProb[o.Name] = o.Probability
	}
	altProb := make(map[string]float64)
	for _, o := range alt.Outcomes {
		altProb[o.Name] = o.Probability
	}

	names := make(map[string]bool)
	for name := range baseProb {
		names[name] = true
	}
	for name := range altProb {
		names[name] = true
	}

	var shifts []models.OutcomeShift
	for name := range names {
		shifts = append(shifts, models.OutcomeShift{
			Name:            name,
			BaseProbability: baseProb[name],
			AltProbability:  altProb[name],
			Delta:           altProb[name] - baseProb[name],
		})
	}
	sort.SliceStable(shifts, func(i, j int) bool {
		di, dj := shifts[i].Delta, shifts[j].Delta
		if di < 0 {
			di = -di
		}
		if dj < 0 {
			dj = -dj
		}
		if di != dj {
			return di > dj
		}
		return shifts[i].Name < shifts[j].Name
	})

	netEffect := classifyNetEffect(base, alt, shifts)

	return models.Comparison{
		OutcomeShifts:  shifts,
		NetEffect:      netEffect,
		Recommendation: recommendationFor(netEffect),
	}
}

// classifyNetEffect sums the probability deltas of lexically positive outcomes.
// Thin evidence on either side forces the verdict to uncertain.
func classifyNetEffect(base, alt *models.SimulationResult, shifts []models.OutcomeShift) string {
	minObs := base.Evidence.TotalObservations
	if alt.Evidence.TotalObservations < minObs {
		minObs = alt.Evidence.TotalObservations
	}
	if minObs < minObservations {
		return "uncertain"
	}

	sum := 0.0
	for _, s := range shifts {
		lower := strings.ToLower(s.Name)
		for _, marker := range positiveMarkers {
			if strings.Contains(lower, marker) {
				sum += s.Delta
				break
			}
		}
	}

	switch {
	case sum > netEffectThreshold:
		return "positive"
	case sum < -netEffectThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

func recommendationFor(netEffect string) string {
	switch netEffect {
	case "positive":
		return "The change shifts projected outcomes toward better results; worth trying."
	case "negative":
		return "The change shifts projected outcomes toward worse results; keep the current approach."
	case "uncertain":
		return "Not enough recorded trajectories to judge this change either way."
	default:
		return "The change makes little difference to projected outcomes."
	}
}
