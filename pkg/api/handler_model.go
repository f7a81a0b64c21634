package api

import (
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/devflow-ai/devflow/pkg/models"
)

// listModelsHandler handles GET /api/models.
func (s *Server) listModelsHandler(c *echo.Context) error {
	available, err := s.registry.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"models": available})
}

// refreshModelsHandler handles POST /api/models/refresh.
func (s *Server) refreshModelsHandler(c *echo.Context) error {
	if err := s.registry.Refresh(c.Request().Context()); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// selectModelRequest asks for a model recommendation without queueing work.
// requestId is optional; a generated one still yields a valid (if unsticky)
// A/B assignment.
type selectModelRequest struct {
	TaskDescription string            `json:"taskDescription"`
	TaskType        models.TaskType   `json:"taskType"`
	Complexity      models.Complexity `json:"complexity"`
	RequestID       string            `json:"requestId"`
}

// selectModelHandler handles POST /api/models/select.
func (s *Server) selectModelHandler(c *echo.Context) error {
	var req selectModelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.TaskDescription == "" && (req.TaskType == "" || req.Complexity == "") {
		return echo.NewHTTPError(http.StatusBadRequest, "taskDescription is required when the task is unclassified")
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	sel := s.modelSel.SelectBestModel(c.Request().Context(),
		req.TaskDescription, req.TaskType, req.Complexity, req.RequestID)
	return c.JSON(http.StatusOK, sel)
}

// modelMetricsHandler handles GET /api/models/metrics.
func (s *Server) modelMetricsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"metrics": s.tracker.GetAll()})
}

// bestModelHandler handles GET /api/models/best/:taskType/:complexity. An
// empty name means no model has cleared the sample floor for this bucket yet.
func (s *Server) bestModelHandler(c *echo.Context) error {
	taskType := models.TaskType(c.Param("taskType"))
	complexity := models.Complexity(c.Param("complexity"))

	var name string
	if best := s.tracker.GetBest(taskType, complexity); best != nil {
		name = best.Model
	}
	return c.JSON(http.StatusOK, map[string]string{"model": name})
}
