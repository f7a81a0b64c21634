package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/models"
)

func TestCreateFeedbackHandler(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	rec := ts.do(t, "POST", "/api/feedback", models.RecordFeedbackRequest{
		TaskID:    taskID,
		UserID:    "user-1",
		Sentiment: models.SentimentPositive,
		Rating:    0.9,
		Reason:    "changes were exactly what I asked for",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, taskID, decode[map[string]any](t, rec)["task_id"])
}

func TestCreateFeedbackHandler_Validation(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	rec := ts.do(t, "POST", "/api/feedback", models.RecordFeedbackRequest{
		TaskID:    taskID,
		UserID:    "user-1",
		Sentiment: "meh",
		Rating:    0.5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateFeedbackHandler_UnknownTask(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/feedback", models.RecordFeedbackRequest{
		TaskID:    "missing",
		UserID:    "user-1",
		Sentiment: models.SentimentPositive,
		Rating:    0.5,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskPatternsHandler(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	rec := ts.do(t, "POST", "/api/feedback", models.RecordFeedbackRequest{
		TaskID:    taskID,
		UserID:    "user-1",
		Sentiment: models.SentimentPositive,
		Rating:    0.9,
		Context:   map[string]any{"procedure_id": "proc-1"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, "GET", "/api/tasks/"+taskID+"/patterns", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	analysis := decode[models.PatternAnalysis](t, rec)
	assert.Equal(t, 1, analysis.Samples)
	require.Len(t, analysis.Patterns, 1)
	assert.Equal(t, "proc-1", analysis.Patterns[0].ProcedureID)
}

func TestHealthHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[HealthResponse](t, rec)
	assert.Equal(t, healthStatusHealthy, body.Status)
	require.NotNil(t, body.Database)
	assert.Equal(t, "healthy", body.Database.Status)
}
