// Package graph implements the trajectory and knowledge-graph engine: event
// logging during a chat turn, the transactional graph mutation on trajectory
// completion, and read-side inference over the accumulated structure.
package graph

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/praxishq/praxis/ent"
	"github.com/praxishq/praxis/ent/contribution"
	"github.com/praxishq/praxis/ent/cooccurrence"
	"github.com/praxishq/praxis/ent/entity"
	"github.com/praxishq/praxis/ent/graphedge"
	"github.com/praxishq/praxis/ent/trajectoryevent"
	"github.com/praxishq/praxis/pkg/database"
	"github.com/praxishq/praxis/pkg/models"
	"github.com/praxishq/praxis/pkg/services"
	"github.com/praxishq/praxis/pkg/tagparse"
)

const defaultTimeout = 10 * time.Second

// Engine owns trajectory lifecycle and all graph mutations. Entities, edges,
// and co-occurrences are global rows shared across accounts; trajectories and
// contributions are per-account. One Engine instance is shared by all in-flight
// turns; per-trajectory sequence counters live in the engine and are discarded
// on completion.
type Engine struct {
	client *database.Client
	logger *slog.Logger

	mu   sync.Mutex
	seqs map[string]int
}

// NewEngine creates a trajectory engine on top of the database client.
func NewEngine(client *database.Client) *Engine {
	return &Engine{
		client: client,
		logger: slog.Default().With("component", "graph.Engine"),
		seqs:   make(map[string]int),
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// InputHash fingerprints input text with 32-bit FNV-1a. Collisions are
// acceptable: the hash is only used for similar-starting-point lookup, never
// for identity.
func InputHash(text string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return int64(h.Sum32())
}

// StartTrajectory opens a new walk for the account and initialises its
// sequence counter to zero.
func (e *Engine) StartTrajectory(ctx context.Context, accountID, inputText, conversationID string) (*ent.Trajectory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	create := e.client.Trajectory.Create().
		SetID(uuid.NewString()).
		SetAccountID(accountID).
		SetInputText(inputText).
		SetInputHash(InputHash(inputText)).
		SetStartedAt(nowMillis())
	if conversationID != "" {
		create = create.SetConversationID(conversationID)
	}

	traj, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create trajectory: %w", err)
	}

	e.mu.Lock()
	e.seqs[traj.ID] = 0
	e.mu.Unlock()

	return traj, nil
}

// nextSeq hands out the next sequence number for the trajectory. When the
// counter is missing (process restart between events), it is recovered from
// the persisted log; appending to a completed trajectory is an invariant
// violation.
func (e *Engine) nextSeq(ctx context.Context, trajectoryID string) (int, error) {
	e.mu.Lock()
	if seq, ok := e.seqs[trajectoryID]; ok {
		e.seqs[trajectoryID] = seq + 1
		e.mu.Unlock()
		return seq, nil
	}
	e.mu.Unlock()

	traj, err := e.client.Trajectory.Get(ctx, trajectoryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("trajectory %s: %w", trajectoryID, services.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to load trajectory: %w", err)
	}
	if traj.CompletedAt != nil {
		return 0, fmt.Errorf("trajectory %s: %w", trajectoryID, services.ErrTrajectoryCompleted)
	}

	n, err := e.client.TrajectoryEvent.Query().
		Where(trajectoryevent.TrajectoryID(trajectoryID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count trajectory events: %w", err)
	}

	e.mu.Lock()
	e.seqs[trajectoryID] = n + 1
	e.mu.Unlock()
	return n, nil
}

// appendEvent writes the next event row without any entity counter side
// effects.
func (e *Engine) appendEvent(ctx context.Context, trajectoryID string, eventType trajectoryevent.EventType, entityID string, data map[string]any, dctx *tagparse.DecisionContext) (*ent.TrajectoryEvent, error) {
	seq, err := e.nextSeq(ctx, trajectoryID)
	if err != nil {
		return nil, err
	}

	if dctx != nil {
		if data == nil {
			data = make(map[string]any)
		}
		data["_context"] = dctx
	}

	create := e.client.TrajectoryEvent.Create().
		SetID(uuid.NewString()).
		SetTrajectoryID(trajectoryID).
		SetSequenceNum(seq).
		SetTimestamp(nowMillis()).
		SetEventType(eventType)
	if entityID != "" {
		create = create.SetEntityID(entityID)
	}
	if len(data) > 0 {
		create = create.SetData(data)
	}

	event, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}
	return event, nil
}

// LogEvent appends an event with the next sequence number. For touch events
// carrying an entity id, the entity's touch_count and last_seen are updated
// atomically alongside. Decision context is serialised under data._context.
func (e *Engine) LogEvent(ctx context.Context, trajectoryID string, eventType trajectoryevent.EventType, entityID string, data map[string]any, dctx *tagparse.DecisionContext) (*ent.TrajectoryEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	event, err := e.appendEvent(ctx, trajectoryID, eventType, entityID, data, dctx)
	if err != nil {
		return nil, err
	}

	if eventType == trajectoryevent.EventTypeTouch && entityID != "" {
		err := e.client.Entity.UpdateOneID(entityID).
			AddTouchCount(1).
			SetLastSeen(nowMillis()).
			Exec(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to bump touch count: %w", err)
		}
	}

	return event, nil
}

// FindOrCreateEntity resolves a name to its global entity row, creating it on
// first sight, and maintains the per-account contribution row. The whole step
// runs in one transaction; a lost race on the unique normalized_name index is
// retried as a lookup. Returns the entity and whether it was created.
func (e *Engine) FindOrCreateEntity(ctx context.Context, accountID, trajectoryID, name, entityType, description string) (*ent.Entity, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	normalized := tagparse.Normalize(name)
	if normalized == "" {
		return nil, false, services.NewValidationError("name", "must not be empty")
	}

	// One retry covers the concurrent-create race: the second pass finds the
	// row the winner inserted.
	for attempt := 0; ; attempt++ {
		ent2, created, err := e.findOrCreateEntityTx(ctx, accountID, trajectoryID, name, normalized, entityType, description)
		if err == nil {
			return ent2, created, nil
		}
		if ent.IsConstraintError(err) && attempt == 0 {
			e.logger.Debug("entity create race lost, retrying as lookup", "normalized_name", normalized)
			continue
		}
		return nil, false, err
	}
}

func (e *Engine) findOrCreateEntityTx(ctx context.Context, accountID, trajectoryID, name, normalized, entityType, description string) (*ent.Entity, bool, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := nowMillis()
	created := false

	row, err := tx.Entity.Query().
		Where(entity.NormalizedName(normalized)).
		Only(ctx)
	switch {
	case err == nil:
		update := tx.Entity.UpdateOneID(row.ID).
			AddTouchCount(1).
			SetLastSeen(now)
		// entity_type and description are first-writer-wins
		if row.EntityType == nil && entityType != "" {
			update = update.SetEntityType(entityType)
		}
		if row.Description == nil && description != "" {
			update = update.SetDescription(description)
		}
		row, err = update.Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to update entity: %w", err)
		}
	case ent.IsNotFound(err):
		create := tx.Entity.Create().
			SetID(uuid.NewString()).
			SetName(name).
			SetNormalizedName(normalized).
			SetTouchCount(1).
			SetFirstSeen(now).
			SetLastSeen(now)
		if entityType != "" {
			create = create.SetEntityType(entityType)
		}
		if description != "" {
			create = create.SetDescription(description)
		}
		row, err = create.Save(ctx)
		if err != nil {
			// Constraint error means a concurrent trajectory inserted the same
			// normalized_name first; the caller retries as a lookup.
			return nil, false, err
		}
		created = true
	default:
		return nil, false, fmt.Errorf("failed to look up entity: %w", err)
	}

	contrib, err := tx.Contribution.Query().
		Where(contribution.EntityID(row.ID), contribution.AccountID(accountID)).
		Only(ctx)
	switch {
	case err == nil:
		err = tx.Contribution.UpdateOneID(contrib.ID).
			AddTouchCount(1).
			SetLastSeen(now).
			Exec(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to update contribution: %w", err)
		}
	case ent.IsNotFound(err):
		err = tx.Contribution.Create().
			SetID(uuid.NewString()).
			SetEntityID(row.ID).
			SetAccountID(accountID).
			SetFirstTrajectoryID(trajectoryID).
			SetTouchCount(1).
			SetFirstSeen(now).
			SetLastSeen(now).
			Exec(ctx)
		if err != nil {
			return nil, false, err
		}
		// Creating the contribution row is the sole trigger for bumping the
		// parent's contributor count.
		row, err = tx.Entity.UpdateOneID(row.ID).
			AddContributorCount(1).
			Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to bump contributor count: %w", err)
		}
	default:
		return nil, false, fmt.Errorf("failed to look up contribution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return row, created, nil
}

// Touch resolves a mention to its entity and appends the matching event in one
// step. The find-or-create path already accounts the touch on the entity and
// contribution rows, so the event append carries no extra counter bump.
// Returns the entity, whether it was newly created, and the event.
func (e *Engine) Touch(ctx context.Context, accountID, trajectoryID string, m tagparse.Mention, eventType trajectoryevent.EventType, data map[string]any) (*ent.Entity, bool, *ent.TrajectoryEvent, error) {
	row, created, err := e.FindOrCreateEntity(ctx, accountID, trajectoryID, m.Name, m.Type, "")
	if err != nil {
		return nil, false, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	event, err := e.appendEvent(ctx, trajectoryID, eventType, row.ID, data, nil)
	if err != nil {
		return nil, false, nil, err
	}
	return row, created, event, nil
}

// CompleteTrajectory seals the walk and folds its event log into the graph:
// trajectory counters, co-occurrence rows, adjacency edges, and
// strategy-to-outcome edges, all in one transaction. A second call for an
// already-completed trajectory performs no mutation and returns the summary
// recomputed from the immutable event log.
func (e *Engine) CompleteTrajectory(ctx context.Context, trajectoryID, accountID, summary string) (*models.TrajectorySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	traj, err := tx.Trajectory.Get(ctx, trajectoryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("trajectory %s: %w", trajectoryID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load trajectory: %w", err)
	}
	if traj.AccountID != accountID {
		return nil, fmt.Errorf("trajectory %s: %w", trajectoryID, services.ErrForbidden)
	}

	events, err := tx.TrajectoryEvent.Query().
		Where(trajectoryevent.TrajectoryID(trajectoryID)).
		Order(ent.Asc(trajectoryevent.FieldSequenceNum)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trajectory events: %w", err)
	}

	touched, discovered := partitionEntities(events)
	all := append(append([]string{}, touched...), discovered...)

	// Idempotent replay: no counter moves twice.
	if traj.CompletedAt != nil {
		result := &models.TrajectorySummary{
			ID:                 trajectoryID,
			EntitiesTouched:    touched,
			EntitiesDiscovered: discovered,
			EdgesTraversed:     adjacencyKeys(touched),
		}
		return result, tx.Commit()
	}

	now := nowMillis()

	update := tx.Trajectory.UpdateOneID(trajectoryID).
		SetCompletedAt(now)
	if summary != "" {
		update = update.SetSummary(summary)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to complete trajectory: %w", err)
	}

	for _, id := range all {
		if err := tx.Entity.UpdateOneID(id).AddTrajectoryCount(1).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to bump entity trajectory count: %w", err)
		}
		_, err := tx.Contribution.Update().
			Where(contribution.EntityID(id), contribution.AccountID(accountID)).
			AddTrajectoryCount(1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to bump contribution trajectory count: %w", err)
		}
	}

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if err := upsertCooccurrence(ctx, tx, all[i], all[j], now); err != nil {
				return nil, err
			}
		}
	}

	traversed := make(map[string]bool)
	var edgesTraversed []string
	for k := 0; k+1 < len(touched); k++ {
		src, dst := touched[k], touched[k+1]
		if src == dst {
			continue
		}
		if err := upsertEdge(ctx, tx, src, dst, "", now); err != nil {
			return nil, err
		}
		key := edgeKey(src, dst)
		traversed[key] = true
		edgesTraversed = append(edgesTraversed, key)
	}

	if err := e.linkOutcomes(ctx, tx, all, traversed, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit completion: %w", err)
	}

	e.mu.Lock()
	delete(e.seqs, trajectoryID)
	e.mu.Unlock()

	e.logger.Info("trajectory completed",
		"trajectory_id", trajectoryID,
		"touched", len(touched),
		"discovered", len(discovered),
		"edges", len(edgesTraversed))

	return &models.TrajectorySummary{
		ID:                 trajectoryID,
		EntitiesTouched:    touched,
		EntitiesDiscovered: discovered,
		EdgesTraversed:     edgesTraversed,
	}, nil
}

// partitionEntities splits the event log into touched (touch events, first
// occurrence order) and discovered (discover events not already touched).
func partitionEntities(events []*ent.TrajectoryEvent) (touched, discovered []string) {
	seenTouch := make(map[string]bool)
	for _, ev := range events {
		if ev.EventType != trajectoryevent.EventTypeTouch || ev.EntityID == nil {
			continue
		}
		if id := *ev.EntityID; !seenTouch[id] {
			seenTouch[id] = true
			touched = append(touched, id)
		}
	}
	seenDiscover := make(map[string]bool)
	for _, ev := range events {
		if ev.EventType != trajectoryevent.EventTypeDiscover || ev.EntityID == nil {
			continue
		}
		if id := *ev.EntityID; !seenTouch[id] && !seenDiscover[id] {
			seenDiscover[id] = true
			discovered = append(discovered, id)
		}
	}
	return touched, discovered
}

// adjacencyKeys recomputes the traversed-edge keys from the touched list
// without mutating anything. Used by the idempotent-replay path.
func adjacencyKeys(touched []string) []string {
	var keys []string
	for k := 0; k+1 < len(touched); k++ {
		if touched[k] != touched[k+1] {
			keys = append(keys, edgeKey(touched[k], touched[k+1]))
		}
	}
	return keys
}

func edgeKey(sourceID, targetID string) string {
	return sourceID + ":" + targetID
}

// upsertCooccurrence bumps the canonical (min, max) pair row, creating it at
// count 1 when absent. The unique (entity_a_id, entity_b_id) index makes
// concurrent upserts converge on one row.
func upsertCooccurrence(ctx context.Context, tx *ent.Tx, idA, idB string, now int64) error {
	if idA == idB {
		return nil
	}
	if idA > idB {
		idA, idB = idB, idA
	}

	err := tx.Cooccurrence.Create().
		SetID(uuid.NewString()).
		SetEntityAID(idA).
		SetEntityBID(idB).
		SetCount(1).
		SetWindowCount(1).
		SetTrajectoryCount(1).
		SetLastUpdated(now).
		OnConflictColumns(cooccurrence.FieldEntityAID, cooccurrence.FieldEntityBID).
		Update(func(u *ent.CooccurrenceUpsert) {
			u.AddCount(1)
			u.AddWindowCount(1)
			u.AddTrajectoryCount(1)
			u.SetLastUpdated(now)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert cooccurrence (%s, %s): %w", idA, idB, err)
	}
	return nil
}

// upsertEdge bumps the directed (source, target) edge, creating it at weight 1
// when absent. relationshipType is only ever set, never cleared.
func upsertEdge(ctx context.Context, tx *ent.Tx, sourceID, targetID, relationshipType string, now int64) error {
	create := tx.GraphEdge.Create().
		SetID(uuid.NewString()).
		SetSourceID(sourceID).
		SetTargetID(targetID).
		SetWeight(1).
		SetTrajectoryCount(1).
		SetFirstSeen(now).
		SetLastSeen(now)
	if relationshipType != "" {
		create = create.SetRelationshipType(relationshipType)
	}

	err := create.
		OnConflictColumns(graphedge.FieldSourceID, graphedge.FieldTargetID).
		Update(func(u *ent.GraphEdgeUpsert) {
			u.AddWeight(1)
			u.AddTrajectoryCount(1)
			u.SetLastSeen(now)
			if relationshipType != "" {
				u.SetRelationshipType(relationshipType)
			}
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert edge %s: %w", edgeKey(sourceID, targetID), err)
	}
	return nil
}

// linkOutcomes writes the strategy-to-outcome "leads_to" edges. Pairs already
// strengthened by this trajectory's adjacency pass only get the relationship
// type stamped, so one trajectory never counts the same pair twice.
func (e *Engine) linkOutcomes(ctx context.Context, tx *ent.Tx, all []string, traversed map[string]bool, now int64) error {
	if len(all) < 2 {
		return nil
	}

	rows, err := tx.Entity.Query().
		Where(entity.IDIn(all...)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load entities for outcome linkage: %w", err)
	}

	byID := make(map[string]*ent.Entity, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	var strategies, outcomes []string
	for _, id := range all {
		row, ok := byID[id]
		if !ok || row.EntityType == nil {
			continue
		}
		switch *row.EntityType {
		case tagparse.TypeStrategy:
			strategies = append(strategies, id)
		case tagparse.TypeOutcome:
			outcomes = append(outcomes, id)
		}
	}
	// Deterministic write order keeps concurrent completions from deadlocking
	// on row locks.
	sort.Strings(strategies)
	sort.Strings(outcomes)

	for _, s := range strategies {
		for _, o := range outcomes {
			if s == o {
				continue
			}
			if traversed[edgeKey(s, o)] {
				err := tx.GraphEdge.Update().
					Where(graphedge.SourceID(s), graphedge.TargetID(o)).
					SetRelationshipType("leads_to").
					Exec(ctx)
				if err != nil {
					return fmt.Errorf("failed to mark leads_to on edge %s: %w", edgeKey(s, o), err)
				}
				continue
			}
			if err := upsertEdge(ctx, tx, s, o, "leads_to", now); err != nil {
				return err
			}
		}
	}
	return nil
}
