package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/httpx"
	"github.com/devflow-ai/devflow/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses. Internal
// details never leak; unexpected errors are logged and reported as a bare 500.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) || ent.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrTaskTerminal) {
		return echo.NewHTTPError(http.StatusConflict, "task is in a terminal state")
	}
	if errors.Is(err, services.ErrTaskInProgress) {
		return echo.NewHTTPError(http.StatusConflict, "task is in progress")
	}
	if errors.Is(err, services.ErrConflict) {
		return echo.NewHTTPError(http.StatusConflict, "conflicting task state")
	}
	if errors.Is(err, httpx.ErrServiceUnavailable) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "upstream service unavailable")
	}
	if errors.Is(err, httpx.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return echo.NewHTTPError(http.StatusGatewayTimeout, "upstream request timed out")
	}

	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
