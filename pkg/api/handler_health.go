package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/devflow-ai/devflow/pkg/database"
	"github.com/devflow-ai/devflow/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
}

// healthHandler handles GET /health. Only the database is checked; external
// dependencies (LLM providers, classifier, GitHub) are excluded so an
// upstream outage cannot make an orchestrator restart this service.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.db)
	resp := &HealthResponse{
		Status:   healthStatusHealthy,
		Version:  version.GitCommit,
		Database: dbHealth,
	}
	if err != nil {
		resp.Status = healthStatusUnhealthy
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
