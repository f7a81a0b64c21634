package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/devflow-ai/devflow/pkg/models"
)

// createABTestHandler handles POST /api/ab-tests.
func (s *Server) createABTestHandler(c *echo.Context) error {
	var req models.CreateABTestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.ModelA == "" || req.ModelB == "" || req.ModelA == req.ModelB {
		return echo.NewHTTPError(http.StatusBadRequest, "model_a and model_b must be two distinct models")
	}
	if req.TrafficPercent != nil && (*req.TrafficPercent < 0 || *req.TrafficPercent > 100) {
		return echo.NewHTTPError(http.StatusBadRequest, "traffic_percent must be in [0,100]")
	}

	test, err := s.abEngine.CreateTest(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, test)
}

// activeABTestHandler handles GET /api/ab-tests/active/:taskType. No active
// test is not an error; the body is null so pollers need no 404 handling.
func (s *Server) activeABTestHandler(c *echo.Context) error {
	taskType := models.TaskType(c.Param("taskType"))

	test, err := s.abEngine.GetActiveTest(c.Request().Context(), taskType)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, test)
}

// abTestResultsHandler handles GET /api/ab-tests/:id/results.
func (s *Server) abTestResultsHandler(c *echo.Context) error {
	testID := c.Param("id")
	if testID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "test id is required")
	}

	results, err := s.abEngine.GetResults(c.Request().Context(), testID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, results)
}

// endABTestHandler handles POST /api/ab-tests/:id/end.
func (s *Server) endABTestHandler(c *echo.Context) error {
	testID := c.Param("id")
	if testID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "test id is required")
	}

	if err := s.abEngine.EndTest(c.Request().Context(), testID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
