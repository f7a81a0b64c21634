package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/models"
)

func pct(v int) *int { return &v }

func createTest(t *testing.T, ts *testServer) string {
	t.Helper()
	rec := ts.do(t, "POST", "/api/ab-tests", models.CreateABTestRequest{
		Name:           "mini vs 4o on bug fixes",
		ModelA:         "gpt-4o-mini",
		ModelB:         "gpt-4o",
		TrafficPercent: pct(50),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[map[string]any](t, rec)["id"].(string)
}

func TestCreateABTestHandler(t *testing.T) {
	ts := newTestServer(t)

	testID := createTest(t, ts)
	assert.NotEmpty(t, testID)
}

func TestCreateABTestHandler_Validation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		req  models.CreateABTestRequest
	}{
		{"missing name", models.CreateABTestRequest{ModelA: "a", ModelB: "b"}},
		{"missing model", models.CreateABTestRequest{Name: "t", ModelA: "a"}},
		{"identical models", models.CreateABTestRequest{Name: "t", ModelA: "a", ModelB: "a"}},
		{"traffic out of range", models.CreateABTestRequest{Name: "t", ModelA: "a", ModelB: "b", TrafficPercent: pct(150)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, "POST", "/api/ab-tests", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestActiveABTestHandler(t *testing.T) {
	ts := newTestServer(t)

	// No active test is a 200 with a null body, not an error.
	rec := ts.do(t, "GET", "/api/ab-tests/active/bug_fix", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	testID := createTest(t, ts)

	rec = ts.do(t, "GET", "/api/ab-tests/active/bug_fix", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testID, decode[map[string]any](t, rec)["id"])
}

func TestEndABTestHandler(t *testing.T) {
	ts := newTestServer(t)
	testID := createTest(t, ts)

	rec := ts.do(t, "POST", "/api/ab-tests/"+testID+"/end", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, "GET", "/api/ab-tests/active/bug_fix", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestABTestResultsHandler(t *testing.T) {
	ts := newTestServer(t)
	testID := createTest(t, ts)

	rec := ts.do(t, "GET", "/api/ab-tests/"+testID+"/results", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	results := decode[models.ABTestResults](t, rec)
	assert.Equal(t, testID, results.TestID)
	assert.False(t, results.Significant)

	rec = ts.do(t, "GET", "/api/ab-tests/unknown/results", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
