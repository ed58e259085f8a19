package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/praxishq/praxis/pkg/models"
)

// simulateHandler handles POST /api/v1/simulate.
func (s *Server) simulateHandler(c *echo.Context) error {
	var req models.SimulateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := s.reasoner.Simulate(c.Request().Context(), req.Entities)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// counterfactualHandler handles POST /api/v1/counterfactual.
func (s *Server) counterfactualHandler(c *echo.Context) error {
	var req models.CounterfactualRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Change.From.Name == "" || req.Change.To.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "change.from and change.to are required")
	}

	result, err := s.reasoner.Counterfactual(c.Request().Context(), req.BaseEntities, req.Change)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
