// Package api exposes the task orchestration core over HTTP: task CRUD and
// execution, live execution logs over SSE, the model registry and metrics,
// A/B tests, and feedback.
package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/abtest"
	"github.com/devflow-ai/devflow/pkg/coordinator"
	"github.com/devflow-ai/devflow/pkg/logstream"
	"github.com/devflow-ai/devflow/pkg/perf"
	"github.com/devflow-ai/devflow/pkg/registry"
	"github.com/devflow-ai/devflow/pkg/selector"
	"github.com/devflow-ai/devflow/pkg/services"
)

// Server wires the service layer to HTTP handlers.
type Server struct {
	echo *echo.Echo
	http *http.Server

	client      *ent.Client
	db          *sql.DB
	tasks       *services.TaskService
	feedback    *services.FeedbackService
	coordinator *coordinator.Coordinator
	registry    *registry.Registry
	tracker     *perf.Tracker
	abEngine    *abtest.Engine
	modelSel    *selector.ModelSelector
	logs        *logstream.Hub
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(
	client *ent.Client,
	db *sql.DB,
	tasks *services.TaskService,
	feedback *services.FeedbackService,
	coord *coordinator.Coordinator,
	reg *registry.Registry,
	tracker *perf.Tracker,
	abEngine *abtest.Engine,
	modelSel *selector.ModelSelector,
	logs *logstream.Hub,
) *Server {
	s := &Server{
		echo:        echo.New(),
		client:      client,
		db:          db,
		tasks:       tasks,
		feedback:    feedback,
		coordinator: coord,
		registry:    reg,
		tracker:     tracker,
		abEngine:    abEngine,
		modelSel:    modelSel,
		logs:        logs,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(correlationID())
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	api := e.Group("/api")

	api.POST("/tasks", s.createTaskHandler)
	api.GET("/tasks", s.listTasksHandler)
	api.GET("/tasks/:id", s.getTaskHandler)
	api.PUT("/tasks/:id", s.updateTaskHandler)
	api.DELETE("/tasks/:id", s.deleteTaskHandler)
	api.POST("/tasks/:id/execute", s.executeTaskHandler)
	api.GET("/tasks/:id/logs", s.taskLogsHandler)
	api.GET("/tasks/:id/patterns", s.taskPatternsHandler)

	api.GET("/models", s.listModelsHandler)
	api.POST("/models/refresh", s.refreshModelsHandler)
	api.POST("/models/select", s.selectModelHandler)
	api.GET("/models/metrics", s.modelMetricsHandler)
	api.GET("/models/best/:taskType/:complexity", s.bestModelHandler)

	api.POST("/ab-tests", s.createABTestHandler)
	api.GET("/ab-tests/active/:taskType", s.activeABTestHandler)
	api.GET("/ab-tests/:id/results", s.abTestResultsHandler)
	api.POST("/ab-tests/:id/end", s.endABTestHandler)

	api.POST("/feedback", s.createFeedbackHandler)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
