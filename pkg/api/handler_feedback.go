package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/devflow-ai/devflow/pkg/models"
)

// createFeedbackHandler handles POST /api/feedback.
func (s *Server) createFeedbackHandler(c *echo.Context) error {
	var req models.RecordFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	fb, err := s.feedback.Record(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, fb)
}
