package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devflow-ai/devflow/pkg/httpx"
	"github.com/devflow-ai/devflow/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation error", services.NewValidationError("title", "required"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("task x"), services.ErrNotFound), http.StatusNotFound},
		{"terminal task", services.ErrTaskTerminal, http.StatusConflict},
		{"task in progress", services.ErrTaskInProgress, http.StatusConflict},
		{"bare conflict", services.ErrConflict, http.StatusConflict},
		{"upstream unavailable", httpx.ErrServiceUnavailable, http.StatusServiceUnavailable},
		{"upstream timeout", httpx.ErrTimeout, http.StatusGatewayTimeout},
		{"deadline exceeded", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}

func TestMapServiceError_HidesDetails(t *testing.T) {
	he := mapServiceError(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal server error", he.Message)
}
