package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/praxishq/praxis/pkg/graph"
)

// getGraphHandler handles GET /api/v1/graph.
// Query params: centerEntityId (optional), depth (default 2), minWeight (default 0).
func (s *Server) getGraphHandler(c *echo.Context) error {
	opts := graph.GraphOptions{
		CenterID: c.QueryParam("centerEntityId"),
	}
	if v := c.QueryParam("depth"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil || depth < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "depth must be a positive integer")
		}
		opts.Depth = depth
	}
	if v := c.QueryParam("minWeight"); v != "" {
		minWeight, err := strconv.Atoi(v)
		if err != nil || minWeight < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "minWeight must be a non-negative integer")
		}
		opts.MinWeight = minWeight
	}

	view, err := s.graphQuery.GetGraph(c.Request().Context(), accountID(c), opts)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// getEntityHandler handles GET /api/v1/entities/:id. Returns not-found unless
// the account's own trajectories touched the entity.
func (s *Server) getEntityHandler(c *echo.Context) error {
	entityID := c.Param("id")
	if entityID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "entity id is required")
	}

	detail, err := s.graphQuery.GetEntity(c.Request().Context(), accountID(c), entityID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}
