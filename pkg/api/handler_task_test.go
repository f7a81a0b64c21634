package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/pkg/models"
)

func TestCreateTaskHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/tasks", models.CreateTaskRequest{
		UserID:      "user-1",
		Title:       "Add request rate limiting",
		Description: "token bucket in front of the outbound client",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode[map[string]any](t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "pending", body["status"])
}

func TestCreateTaskHandler_Validation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/tasks", models.CreateTaskRequest{
		UserID: "user-1",
		Title:  "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTaskHandler(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	rec := ts.do(t, "GET", "/api/tasks/"+taskID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, taskID, decode[map[string]any](t, rec)["id"])

	rec = ts.do(t, "GET", "/api/tasks/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTasksHandler(t *testing.T) {
	ts := newTestServer(t)
	ts.createTask(t)
	ts.createTask(t)

	rec := ts.do(t, "GET", "/api/tasks?user_id=user-1&page=1&pageSize=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, float64(2), body["total_count"])
	assert.Len(t, body["tasks"], 1)
}

func TestListTasksHandler_InvalidPage(t *testing.T) {
	ts := newTestServer(t)

	for _, query := range []string{"page=0", "page=abc", "pageSize=-1"} {
		rec := ts.do(t, "GET", "/api/tasks?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestUpdateTaskHandler(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	title := "Add request rate limiting with burst support"
	rec := ts.do(t, "PUT", "/api/tasks/"+taskID, models.UpdateTaskRequest{Title: &title})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, title, decode[map[string]any](t, rec)["title"])
}

func TestUpdateTaskHandler_TerminalConflict(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)
	ts.client.CodingTask.UpdateOneID(taskID).
		SetStatus(codingtask.StatusCompleted).
		ExecX(t.Context())

	title := "too late"
	rec := ts.do(t, "PUT", "/api/tasks/"+taskID, models.UpdateTaskRequest{Title: &title})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteTaskHandler(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	rec := ts.do(t, "DELETE", "/api/tasks/"+taskID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, "DELETE", "/api/tasks/"+taskID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTaskHandler_InProgressConflict(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)
	ts.client.CodingTask.UpdateOneID(taskID).
		SetStatus(codingtask.StatusInProgress).
		ExecX(t.Context())

	rec := ts.do(t, "DELETE", "/api/tasks/"+taskID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestExecuteTaskHandler(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	rec := ts.do(t, "POST", "/api/tasks/"+taskID+"/execute", nil)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	body := decode[map[string]any](t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Iterative", body["strategy"])

	done := ts.waitTerminal(t, taskID)
	assert.Equal(t, codingtask.StatusCompleted, done.Status)
}

func TestExecuteTaskHandler_UnknownTask(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/tasks/missing/execute", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskLogsHandler_StreamsExecutionLog(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	rec := ts.do(t, "POST", "/api/tasks/"+taskID+"/execute", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	ts.waitTerminal(t, taskID)

	// The execution is complete, so the stream replays and closes.
	rec = ts.do(t, "GET", "/api/tasks/"+taskID+"/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "data: status:starting strategy=Iterative\n\n")
	assert.True(t, strings.Contains(body, "data: status:success tokens=120"), body)
}

func TestTaskLogsHandler_NoExecutions(t *testing.T) {
	ts := newTestServer(t)
	taskID := ts.createTask(t)

	rec := ts.do(t, "GET", "/api/tasks/"+taskID+"/logs", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskHandlers_MissingID(t *testing.T) {
	s := &Server{}
	e := echo.New()

	handlers := map[string]func(*echo.Context) error{
		"get":      s.getTaskHandler,
		"update":   s.updateTaskHandler,
		"delete":   s.deleteTaskHandler,
		"execute":  s.executeTaskHandler,
		"logs":     s.taskLogsHandler,
		"patterns": s.taskPatternsHandler,
	}
	for name, handler := range handlers {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks//x", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok, name)
		assert.Equal(t, http.StatusBadRequest, he.Code, name)
	}
}
