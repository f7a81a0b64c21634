package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/models"
)

func TestListModelsHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "GET", "/api/models", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Models []models.ModelInfo `json:"models"`
	}](t, rec)
	names := make([]string, 0, len(body.Models))
	for _, m := range body.Models {
		names = append(names, m.Name)
	}
	assert.Contains(t, names, "gpt-4o")
	assert.Contains(t, names, "gpt-4o-mini")
}

func TestRefreshModelsHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/models/refresh", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSelectModelHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/models/select", selectModelRequest{
		TaskDescription: "fix the crash on expired session cookies",
		TaskType:        models.TaskTypeBugFix,
		Complexity:      models.ComplexitySimple,
		RequestID:       "req-1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	sel := decode[models.ModelSelection](t, rec)
	assert.Equal(t, "gpt-4o-mini", sel.Model)
	assert.NotEmpty(t, sel.Reason)
}

func TestSelectModelHandler_DescriptionOnly(t *testing.T) {
	ts := newTestServer(t)

	// No classification and no request id: the classification comes from the
	// description and the request id is generated.
	rec := ts.do(t, "POST", "/api/models/select", selectModelRequest{
		TaskDescription: "fix a typo in the settings loader error message",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	sel := decode[models.ModelSelection](t, rec)
	assert.Equal(t, "gpt-4o-mini", sel.Model)
}

func TestSelectModelHandler_RequiresDescriptionWhenUnclassified(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/models/select", selectModelRequest{
		TaskType: models.TaskTypeBugFix,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModelMetricsHandler(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	rec := ts.do(t, "POST", "/api/tasks/"+taskID+"/execute", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	ts.waitTerminal(t, taskID)

	require.Eventually(t, func() bool {
		return ts.tracker.Get("gpt-4o-mini") != nil
	}, 2*time.Second, 10*time.Millisecond)

	rec = ts.do(t, "GET", "/api/models/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Metrics []models.ModelPerformanceMetrics `json:"metrics"`
	}](t, rec)
	require.NotEmpty(t, body.Metrics)
	assert.Equal(t, "gpt-4o-mini", body.Metrics[0].Model)
	assert.Equal(t, 1, body.Metrics[0].Executions)
}

func TestBestModelHandler_EmptyBucket(t *testing.T) {
	ts := newTestServer(t)

	// An empty bucket is a 200 with an empty name, not an error.
	rec := ts.do(t, "GET", "/api/models/best/bug_fix/simple", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decode[map[string]string](t, rec)["model"])
}

func TestBestModelHandler_ReturnsQualifiedModel(t *testing.T) {
	ts := newTestServer(t)

	// The tracker's sample floor is 30 per bucket.
	for range 30 {
		ts.tracker.RecordExecution(context.Background(), models.ExecutionSample{
			Model:      "gpt-4o-mini",
			TaskType:   models.TaskTypeBugFix,
			Complexity: models.ComplexitySimple,
			Success:    true,
			TokensUsed: 500,
			Duration:   time.Second,
		})
	}

	rec := ts.do(t, "GET", "/api/models/best/bug_fix/simple", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gpt-4o-mini", decode[map[string]string](t, rec)["model"])
}
