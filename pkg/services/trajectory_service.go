package services

import (
	"context"
	"fmt"

	"github.com/praxishq/praxis/ent"
	"github.com/praxishq/praxis/ent/trajectory"
	"github.com/praxishq/praxis/ent/trajectoryevent"
	"github.com/praxishq/praxis/pkg/database"
)

// TrajectoryService serves the read-only trajectory views.
type TrajectoryService struct {
	client *database.Client
}

// NewTrajectoryService creates a new trajectory service.
func NewTrajectoryService(client *database.Client) *TrajectoryService {
	return &TrajectoryService{client: client}
}

// List returns the account's trajectories, newest first.
func (s *TrajectoryService) List(ctx context.Context, accountID string) ([]*ent.Trajectory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := s.client.Trajectory.Query().
		Where(trajectory.AccountID(accountID)).
		Order(ent.Desc(trajectory.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trajectories: %w", err)
	}
	return rows, nil
}

// Get returns one trajectory with its event log in sequence order.
func (s *TrajectoryService) Get(ctx context.Context, accountID, trajectoryID string) (*ent.Trajectory, []*ent.TrajectoryEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	traj, err := s.client.Trajectory.Get(ctx, trajectoryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("trajectory %s: %w", trajectoryID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to load trajectory: %w", err)
	}
	if traj.AccountID != accountID {
		return nil, nil, fmt.Errorf("trajectory %s: %w", trajectoryID, ErrForbidden)
	}

	events, err := s.client.TrajectoryEvent.Query().
		Where(trajectoryevent.TrajectoryID(trajectoryID)).
		Order(ent.Asc(trajectoryevent.FieldSequenceNum)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load trajectory events: %w", err)
	}
	return traj, events, nil
}
