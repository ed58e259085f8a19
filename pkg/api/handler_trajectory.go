package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/praxishq/praxis/ent"
)

// TrajectoryDetailResponse is the response for GET /trajectories/:id.
type TrajectoryDetailResponse struct {
	Trajectory *ent.Trajectory        `json:"trajectory"`
	Events     []*ent.TrajectoryEvent `json:"events"`
}

// listTrajectoriesHandler handles GET /api/v1/trajectories.
func (s *Server) listTrajectoriesHandler(c *echo.Context) error {
	rows, err := s.trajectories.List(c.Request().Context(), accountID(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// getTrajectoryHandler handles GET /api/v1/trajectories/:id.
func (s *Server) getTrajectoryHandler(c *echo.Context) error {
	trajectoryID := c.Param("id")
	if trajectoryID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "trajectory id is required")
	}

	traj, eventRows, err := s.trajectories.Get(c.Request().Context(), accountID(c), trajectoryID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &TrajectoryDetailResponse{
		Trajectory: traj,
		Events:     eventRows,
	})
}
