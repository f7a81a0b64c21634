package api

import (
	"fmt"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/taskexecution"
	"github.com/devflow-ai/devflow/pkg/models"
)

// createTaskHandler handles POST /api/tasks.
func (s *Server) createTaskHandler(c *echo.Context) error {
	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := s.tasks.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, task)
}

// getTaskHandler handles GET /api/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := s.tasks.GetByID(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// listTasksHandler handles GET /api/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	params := models.TaskListParams{
		UserID: c.QueryParam("user_id"),
		Search: c.QueryParam("search"),
	}
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page: must be a positive integer")
		}
		params.Page = p
	}
	if v := c.QueryParam("pageSize"); v != "" {
		ps, err := strconv.Atoi(v)
		if err != nil || ps < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid pageSize: must be a positive integer")
		}
		params.PageSize = ps
	}

	result, err := s.tasks.ListByUser(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// updateTaskHandler handles PUT /api/tasks/:id.
func (s *Server) updateTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req models.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := s.tasks.Update(c.Request().Context(), taskID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// deleteTaskHandler handles DELETE /api/tasks/:id.
func (s *Server) deleteTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	if err := s.tasks.Delete(c.Request().Context(), taskID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// executeTaskHandler handles POST /api/tasks/:id/execute. The execution runs
// asynchronously; the response carries the queued execution row.
func (s *Server) executeTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req models.ExecuteTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := s.tasks.GetByID(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}

	exec, err := s.coordinator.QueueExecution(c.Request().Context(), task, req.Strategy)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, exec)
}

// taskLogsHandler handles GET /api/tasks/:id/logs. It streams the execution
// log over SSE, replaying buffered lines first, and closes when the execution
// completes. An explicit execution_id query parameter selects an older run;
// the default is the task's most recent execution.
func (s *Server) taskLogsHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	executionID := c.QueryParam("execution_id")
	if executionID == "" {
		exec, err := s.client.TaskExecution.Query().
			Where(taskexecution.TaskIDEQ(taskID)).
			Order(ent.Desc(taskexecution.FieldStartedAt)).
			First(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "task has no executions")
		}
		executionID = exec.ID
	}

	lines, cancel := s.logs.Subscribe(executionID)
	defer cancel()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	flusher := http.NewResponseController(resp)

	ctx := c.Request().Context()
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(resp, "data: %s\n\n", line); err != nil {
				return nil
			}
			flusher.Flush()
		case <-ctx.Done():
			return nil
		}
	}
}

// taskPatternsHandler handles GET /api/tasks/:id/patterns.
func (s *Server) taskPatternsHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	analysis, err := s.feedback.AnalyzePatterns(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, analysis)
}
