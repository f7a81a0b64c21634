package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/pkg/abtest"
	"github.com/devflow-ai/devflow/pkg/config"
	"github.com/devflow-ai/devflow/pkg/coordinator"
	"github.com/devflow-ai/devflow/pkg/events"
	"github.com/devflow-ai/devflow/pkg/logstream"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/pkg/perf"
	"github.com/devflow-ai/devflow/pkg/registry"
	"github.com/devflow-ai/devflow/pkg/selector"
	"github.com/devflow-ai/devflow/pkg/services"
	"github.com/devflow-ai/devflow/pkg/strategy"
	"github.com/devflow-ai/devflow/test/util"
)

// stubStrategy stands in for the Iterative strategy so handler tests can
// exercise the execute path without an LLM.
type stubStrategy struct {
	result *strategy.ExecutionResult
}

func (s *stubStrategy) Name() string                          { return strategy.NameIterative }
func (s *stubStrategy) SupportsComplexity() models.Complexity { return models.ComplexityMedium }

func (s *stubStrategy) Execute(context.Context, *ent.CodingTask, *models.TaskExecutionContext) *strategy.ExecutionResult {
	return s.result
}

type testServer struct {
	*Server
	client *ent.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	publisher := events.NewPublisher(db)
	tasks := services.NewTaskService(client, publisher, nil, config.GitHubConfig{})
	feedback := services.NewFeedbackService(client, nil, nil, 0)
	tracker := perf.NewTracker(nil, 30)
	reg := registry.New(time.Minute)
	abEngine := abtest.NewEngine(client, 10)
	modelSel := selector.NewModelSelector(reg, tracker, abEngine, "gpt-4o-mini")
	logs := logstream.NewHub()

	stub := &stubStrategy{result: &strategy.ExecutionResult{
		Success:        true,
		Changes:        []models.CodeChange{{FilePath: "pkg/auth/session.go", Content: "package auth\n"}},
		TotalTokens:    120,
		TotalCost:      0.25,
		Duration:       1500 * time.Millisecond,
		IterationsUsed: 1,
	}}
	strategySel := selector.NewStrategySelector(nil, client, stub)
	coord := coordinator.New(client, tasks, strategySel, modelSel, tracker, abEngine, nil, logs)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = coord.Shutdown(ctx)
	})

	return &testServer{
		Server: NewServer(client, db, tasks, feedback, coord, reg, tracker, abEngine, modelSel, logs),
		client: client,
	}
}

// do issues a request against the router and returns the recorder.
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (ts *testServer) createTask(t *testing.T) string {
	t.Helper()
	rec := ts.do(t, "POST", "/api/tasks", models.CreateTaskRequest{
		UserID:      "user-1",
		Title:       "Add request rate limiting",
		Description: "add a token bucket limiter in front of the outbound client",
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())
	return decode[map[string]any](t, rec)["id"].(string)
}

func (ts *testServer) waitTerminal(t *testing.T, taskID string) *ent.CodingTask {
	t.Helper()
	var task *ent.CodingTask
	require.Eventually(t, func() bool {
		var err error
		task, err = ts.client.CodingTask.Get(context.Background(), taskID)
		if err != nil {
			return false
		}
		switch task.Status {
		case codingtask.StatusCompleted, codingtask.StatusFailed, codingtask.StatusCancelled:
			return true
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
	return task
}
