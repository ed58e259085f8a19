package graph

import (
	"context"
	"fmt"

	"github.com/praxishq/praxis/ent"
	"github.com/praxishq/praxis/ent/entity"
	"github.com/praxishq/praxis/ent/graphedge"
	"github.com/praxishq/praxis/ent/trajectory"
	"github.com/praxishq/praxis/ent/trajectoryevent"
	"github.com/praxishq/praxis/pkg/database"
	"github.com/praxishq/praxis/pkg/models"
	"github.com/praxishq/praxis/pkg/services"
)

// GraphOptions bounds a subgraph read.
type GraphOptions struct {
	// CenterID switches from the account-scoped view to a BFS neighbourhood
	// around one entity.
	CenterID string
	// Depth is the BFS hop limit; defaults to 2.
	Depth int
	// MinWeight drops edges below the threshold.
	MinWeight int
}

// Query serves the read-only graph views. Entities are global rows, but the
// account-scoped view and the per-entity visibility check keep each account's
// perspective limited to structure its own trajectories touched.
type Query struct {
	client *database.Client
}

// NewQuery creates a graph query reader on top of the database client.
func NewQuery(client *database.Client) *Query {
	return &Query{client: client}
}

// GetGraph returns a subgraph. Without a center it is the account view: every
// entity the account's trajectories touched plus the edges fully inside that
// set. With a center it is a breadth-first neighbourhood up to opts.Depth hops,
// following edges in both directions.
func (q *Query) GetGraph(ctx context.Context, accountID string, opts GraphOptions) (*models.GraphView, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if opts.Depth <= 0 {
		opts.Depth = 2
	}

	if opts.CenterID != "" {
		return q.bfsView(ctx, opts)
	}
	return q.accountView(ctx, accountID, opts)
}

func (q *Query) accountView(ctx context.Context, accountID string, opts GraphOptions) (*models.GraphView, error) {
	trajIDs, err := q.client.Trajectory.Query().
		Where(trajectory.AccountID(accountID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account trajectories: %w", err)
	}

	view := &models.GraphView{Nodes: []models.GraphNode{}, Edges: []models.GraphEdgeView{}}
	if len(trajIDs) == 0 {
		return view, nil
	}

	events, err := q.client.TrajectoryEvent.Query().
		Where(
			trajectoryevent.TrajectoryIDIn(trajIDs...),
			trajectoryevent.EntityIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trajectory events: %w", err)
	}

	inSet := make(map[string]bool)
	var ids []string
	for _, ev := range events {
		if id := *ev.EntityID; !inSet[id] {
			inSet[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return view, nil
	}

	entities, err := q.client.Entity.Query().
		Where(entity.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entities: %w", err)
	}
	for _, row := range entities {
		view.Nodes = append(view.Nodes, toGraphNode(row))
	}

	edges, err := q.client.GraphEdge.Query().
		Where(
			graphedge.SourceIDIn(ids...),
			graphedge.TargetIDIn(ids...),
			graphedge.WeightGTE(opts.MinWeight),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load edges: %w", err)
	}
	for _, e := range edges {
		view.Edges = append(view.Edges, toGraphEdgeView(e))
	}

	return view, nil
}

func (q *Query) bfsView(ctx context.Context, opts GraphOptions) (*models.GraphView, error) {
	center, err := q.client.Entity.Get(ctx, opts.CenterID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("entity %s: %w", opts.CenterID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load center entity: %w", err)
	}

	visited := map[string]bool{center.ID: true}
	seenEdge := make(map[string]bool)
	view := &models.GraphView{
		Nodes: []models.GraphNode{toGraphNode(center)},
		Edges: []models.GraphEdgeView{},
	}

	frontier := []string{center.ID}
	for hop := 0; hop < opts.Depth && len(frontier) > 0; hop++ {
		edges, err := q.client.GraphEdge.Query().
			Where(
				graphedge.Or(
					graphedge.SourceIDIn(frontier...),
					graphedge.TargetIDIn(frontier...),
				),
				graphedge.WeightGTE(opts.MinWeight),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load frontier edges: %w", err)
		}

		var next []string
		for _, e := range edges {
			key := edgeKey(e.SourceID, e.TargetID)
			if !seenEdge[key] {
				seenEdge[key] = true
				view.Edges = append(view.Edges, toGraphEdgeView(e))
			}
			for _, id := range []string{e.SourceID, e.TargetID} {
				if !visited[id] {
					visited[id] = true
					next = append(next, id)
				}
			}
		}

		if len(next) > 0 {
			entities, err := q.client.Entity.Query().
				Where(entity.IDIn(next...)).
				All(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to load frontier entities: %w", err)
			}
			for _, row := range entities {
				view.Nodes = append(view.Nodes, toGraphNode(row))
			}
		}
		frontier = next
	}

	return view, nil
}

// GetEntity returns the detail view of one entity, but only when the account
// has at least one trajectory event touching it; otherwise not-found, so the
// global row stays invisible to accounts that never reached it.
func (q *Query) GetEntity(ctx context.Context, accountID, entityID string) (*models.EntityDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row, err := q.client.Entity.Get(ctx, entityID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("entity %s: %w", entityID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load entity: %w", err)
	}

	trajIDs, err := q.client.Trajectory.Query().
		Where(trajectory.AccountID(accountID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account trajectories: %w", err)
	}
	visible := false
	if len(trajIDs) > 0 {
		visible, err = q.client.TrajectoryEvent.Query().
			Where(
				trajectoryevent.TrajectoryIDIn(trajIDs...),
				trajectoryevent.EntityID(entityID),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check entity visibility: %w", err)
		}
	}
	if !visible {
		return nil, fmt.Errorf("entity %s: %w", entityID, services.ErrNotFound)
	}

	detail := &models.EntityDetail{
		ID:               row.ID,
		Name:             row.Name,
		TouchCount:       row.TouchCount,
		TrajectoryCount:  row.TrajectoryCount,
		ContributorCount: row.ContributorCount,
		FirstSeen:        row.FirstSeen,
		LastSeen:         row.LastSeen,
		Connected:        []models.ConnectedEntity{},
	}
	if row.EntityType != nil {
		detail.EntityType = *row.EntityType
	}
	if row.Description != nil {
		detail.Description = *row.Description
	}

	edges, err := q.client.GraphEdge.Query().
		Where(graphedge.Or(
			graphedge.SourceID(entityID),
			graphedge.TargetID(entityID),
		)).
		Order(ent.Desc(graphedge.FieldWeight)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load connected edges: %w", err)
	}

	var neighbourIDs []string
	neighbourWeight := make(map[string]int)
	for _, e := range edges {
		other := e.TargetID
		if other == entityID {
			other = e.SourceID
		}
		if _, ok := neighbourWeight[other]; !ok {
			neighbourIDs = append(neighbourIDs, other)
			neighbourWeight[other] = e.Weight
		}
	}
	if len(neighbourIDs) > 0 {
		neighbours, err := q.client.Entity.Query().
			Where(entity.IDIn(neighbourIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load neighbour entities: %w", err)
		}
		byID := make(map[string]*ent.Entity, len(neighbours))
		for _, n := range neighbours {
			byID[n.ID] = n
		}
		// Preserve the weight-descending edge order.
		for _, id := range neighbourIDs {
			if n, ok := byID[id]; ok {
				detail.Connected = append(detail.Connected, models.ConnectedEntity{
					Entity: toGraphNode(n),
					Weight: neighbourWeight[id],
				})
			}
		}
	}

	recent, err := q.client.TrajectoryEvent.Query().
		Where(
			trajectoryevent.TrajectoryIDIn(trajIDs...),
			trajectoryevent.EntityID(entityID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load touching events: %w", err)
	}
	touchedTraj := make(map[string]bool)
	var touchedIDs []string
	for _, ev := range recent {
		if !touchedTraj[ev.TrajectoryID] {
			touchedTraj[ev.TrajectoryID] = true
			touchedIDs = append(touchedIDs, ev.TrajectoryID)
		}
	}
	if len(touchedIDs) > 0 {
		trajs, err := q.client.Trajectory.Query().
			Where(trajectory.IDIn(touchedIDs...)).
			Order(ent.Desc(trajectory.FieldStartedAt)).
			Limit(5).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load recent trajectories: %w", err)
		}
		for _, tr := range trajs {
			ref := models.TrajectoryRef{ID: tr.ID, StartedAt: tr.StartedAt}
			if tr.Summary != nil {
				ref.Summary = *tr.Summary
			}
			detail.RecentTrajectories = append(detail.RecentTrajectories, ref)
		}
	}

	return detail, nil
}

func toGraphNode(row *ent.Entity) models.GraphNode {
	node := models.GraphNode{
		ID:              row.ID,
		Name:            row.Name,
		TouchCount:      row.TouchCount,
		TrajectoryCount: row.TrajectoryCount,
	}
	if row.EntityType != nil {
		node.EntityType = *row.EntityType
	}
	return node
}

func toGraphEdgeView(e *ent.GraphEdge) models.GraphEdgeView {
	view := models.GraphEdgeView{
		SourceID:        e.SourceID,
		TargetID:        e.TargetID,
		Weight:          e.Weight,
		TrajectoryCount: e.TrajectoryCount,
	}
	if e.RelationshipType != nil {
		view.RelationshipType = *e.RelationshipType
	}
	return view
}
