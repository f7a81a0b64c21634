package coordinator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/pkg/config"
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

// stubStrategy registers under the Iterative name so the selector's fallback
// path resolves to it without a classifier.
type stubStrategy struct {
	result  *strategy.ExecutionResult
	block   bool
	panics  bool
	started chan struct{}
	saw     chan string // receives the description Execute was handed
}

func (s *stubStrategy) Name() string                          { return strategy.NameIterative }
func (s *stubStrategy) SupportsComplexity() models.Complexity { return models.ComplexityMedium }

func (s *stubStrategy) Execute(ctx context.Context, task *ent.CodingTask, _ *models.TaskExecutionContext) *strategy.ExecutionResult {
	if s.started != nil {
		close(s.started)
	}
	if s.saw != nil {
		s.saw <- task.Description
	}
	if s.panics {
		panic("prompt template corrupted")
	}
	if s.block {
		<-ctx.Done()
		return &strategy.ExecutionResult{Success: false, Errors: []string{"cancelled"}}
	}
	return s.result
}

type nopPublisher struct{}

func (nopPublisher) PublishTaskCreated(context.Context, events.TaskCreatedPayload) error   { return nil }
func (nopPublisher) PublishTaskStarted(context.Context, events.TaskStartedPayload) error   { return nil }
func (nopPublisher) PublishTaskCompleted(context.Context, events.TaskCompletedPayload) error {
	return nil
}
func (nopPublisher) PublishTaskFailed(context.Context, events.TaskFailedPayload) error { return nil }
func (nopPublisher) PublishPullRequestCreated(context.Context, events.PullRequestCreatedPayload) error {
	return nil
}

type recordingSink struct {
	mu       sync.Mutex
	feedback []models.TrainingFeedback
}

func (r *recordingSink) SubmitTrainingFeedback(_ context.Context, fb models.TrainingFeedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedback = append(r.feedback, fb)
	return nil
}

func (r *recordingSink) all() []models.TrainingFeedback {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.TrainingFeedback(nil), r.feedback...)
}

type fixture struct {
	coordinator *Coordinator
	client      *ent.Client
	tasks       *services.TaskService
	tracker     *perf.Tracker
	logs        *logstream.Hub
	sink        *recordingSink
}

func newFixture(t *testing.T, strat strategy.Strategy) *fixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	tasks := services.NewTaskService(client, nopPublisher{}, nil, config.GitHubConfig{})
	tracker := perf.NewTracker(nil, 30)
	modelSel := selector.NewModelSelector(registry.New(time.Minute), tracker, nil, "gpt-4o-mini")
	strategySel := selector.NewStrategySelector(nil, client, strat)
	logs := logstream.NewHub()
	sink := &recordingSink{}

	return &fixture{
		coordinator: New(client, tasks, strategySel, modelSel, tracker, nil, sink, logs),
		client:      client,
		tasks:       tasks,
		tracker:     tracker,
		logs:        logs,
		sink:        sink,
	}
}

func (f *fixture) createTask(t *testing.T) *ent.CodingTask {
	t.Helper()
	task, err := f.tasks.Create(context.Background(), models.CreateTaskRequest{
		UserID:      "user-1",
		Title:       "Fix login crash",
		Description: "fix the crash on expired session cookies",
	})
	require.NoError(t, err)
	return task
}

func (f *fixture) waitTerminal(t *testing.T, taskID string) *ent.CodingTask {
	t.Helper()
	var task *ent.CodingTask
	require.Eventually(t, func() bool {
		var err error
		task, err = f.client.CodingTask.Get(context.Background(), taskID)
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

func collectLines(t *testing.T, logs *logstream.Hub, executionID string) []string {
	t.Helper()
	ch, cancel := logs.Subscribe(executionID)
	defer cancel()
	var lines []string
	for {
		select {
		case line, ok := <-ch:
			if !ok {
				return lines
			}
			lines = append(lines, line)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for log stream to close")
		}
	}
}

func TestCoordinator_SuccessfulExecution(t *testing.T) {
	f := newFixture(t, &stubStrategy{result: &strategy.ExecutionResult{
		Success:        true,
		Changes:        []models.CodeChange{{FilePath: "pkg/auth/session.go", Content: "package auth\n"}},
		TotalTokens:    100,
		TotalCost:      0.5,
		Duration:       2 * time.Second,
		IterationsUsed: 1,
	}})
	task := f.createTask(t)

	exec, err := f.coordinator.QueueExecution(context.Background(), task, "")
	require.NoError(t, err)
	assert.Equal(t, strategy.NameIterative, exec.Strategy)
	assert.Equal(t, "gpt-4o-mini", exec.Model)

	done := f.waitTerminal(t, task.ID)
	assert.Equal(t, codingtask.StatusCompleted, done.Status)

	row, err := f.client.TaskExecution.Get(context.Background(), exec.ID)
	require.NoError(t, err)
	assert.True(t, row.Success)
	assert.Equal(t, 100, row.TokensUsed)
	assert.InDelta(t, 0.5, row.Cost, 1e-9)
	assert.Equal(t, int64(2000), row.DurationMs)
	assert.Equal(t, 1, row.Iterations)
	assert.NotNil(t, row.FinishedAt)

	lines := collectLines(t, f.logs, exec.ID)
	require.Len(t, lines, 2)
	assert.Equal(t, "status:starting strategy=Iterative", lines[0])
	assert.Equal(t, "status:success tokens=100 cost=0.5000 durationMs=2000", lines[1])
}

func TestCoordinator_FailedExecution(t *testing.T) {
	f := newFixture(t, &stubStrategy{result: &strategy.ExecutionResult{
		Success:     false,
		TotalTokens: 40,
		Errors:      []string{"validation failed", "unbalanced braces in\npkg/auth/session.go"},
	}})
	task := f.createTask(t)

	exec, err := f.coordinator.QueueExecution(context.Background(), task, "")
	require.NoError(t, err)

	done := f.waitTerminal(t, task.ID)
	assert.Equal(t, codingtask.StatusFailed, done.Status)

	row, err := f.client.TaskExecution.Get(context.Background(), exec.ID)
	require.NoError(t, err)
	assert.False(t, row.Success)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "validation failed; unbalanced braces in\npkg/auth/session.go", *row.ErrorMessage)

	lines := collectLines(t, f.logs, exec.ID)
	require.Len(t, lines, 2)
	assert.Equal(t, "status:failed error=validation failed; unbalanced braces in pkg/auth/session.go", lines[1])
}

func TestCoordinator_RecordsTrackerSample(t *testing.T) {
	f := newFixture(t, &stubStrategy{result: &strategy.ExecutionResult{
		Success:     true,
		Changes:     []models.CodeChange{{FilePath: "a.go", Content: "package a\n"}},
		TotalTokens: 80,
		TotalCost:   0.2,
		Duration:    time.Second,
	}})
	task := f.createTask(t)

	_, err := f.coordinator.QueueExecution(context.Background(), task, "")
	require.NoError(t, err)
	f.waitTerminal(t, task.ID)

	require.Eventually(t, func() bool {
		return f.tracker.Get("gpt-4o-mini") != nil
	}, 2*time.Second, 10*time.Millisecond)

	metrics := f.tracker.Get("gpt-4o-mini")
	assert.Equal(t, 1, metrics.Executions)
	assert.Equal(t, 1, metrics.Successes)
	assert.InDelta(t, 80, metrics.AvgTokens, 1e-9)
}

func TestCoordinator_SubmitsTrainingFeedback(t *testing.T) {
	f := newFixture(t, &stubStrategy{result: &strategy.ExecutionResult{
		Success: true,
		Changes: []models.CodeChange{{FilePath: "a.go", Content: "package a\n"}},
	}})
	task := f.createTask(t)

	_, err := f.coordinator.QueueExecution(context.Background(), task, "")
	require.NoError(t, err)
	f.waitTerminal(t, task.ID)

	require.Eventually(t, func() bool {
		return len(f.sink.all()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// "Fix login crash" trips the heuristic's simple keywords.
	fb := f.sink.all()[0]
	assert.Equal(t, task.Description, fb.TaskDescription)
	assert.Equal(t, models.ComplexitySimple, fb.Complexity)
	assert.True(t, fb.Success)
}

func TestCoordinator_ReloadsTaskBeforeExecute(t *testing.T) {
	saw := make(chan string, 1)
	f := newFixture(t, &stubStrategy{
		result: &strategy.ExecutionResult{Success: true},
		saw:    saw,
	})
	task := f.createTask(t)

	// Edit the task after the caller captured its snapshot but before the
	// execution is queued; the strategy must see the edit.
	desc := "fix the crash and add a regression test for expired cookies"
	_, err := f.tasks.Update(context.Background(), task.ID, models.UpdateTaskRequest{
		Description: &desc,
	})
	require.NoError(t, err)

	_, err = f.coordinator.QueueExecution(context.Background(), task, "")
	require.NoError(t, err)

	select {
	case got := <-saw:
		assert.Equal(t, desc, got)
	case <-time.After(2 * time.Second):
		t.Fatal("strategy never ran")
	}
	f.waitTerminal(t, task.ID)
}

func TestCoordinator_CancelExecution(t *testing.T) {
	started := make(chan struct{})
	f := newFixture(t, &stubStrategy{block: true, started: started})
	task := f.createTask(t)

	exec, err := f.coordinator.QueueExecution(context.Background(), task, "")
	require.NoError(t, err)

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("strategy never started")
	}
	assert.True(t, f.coordinator.CancelExecution(exec.ID))

	done := f.waitTerminal(t, task.ID)
	assert.Equal(t, codingtask.StatusCancelled, done.Status)

	row, err := f.client.TaskExecution.Get(context.Background(), exec.ID)
	require.NoError(t, err)
	assert.False(t, row.Success)

	lines := collectLines(t, f.logs, exec.ID)
	assert.Contains(t, lines, "status:failed error=cancelled")

	// Cancelled runs must not pollute the training set.
	assert.Empty(t, f.sink.all())
}

func TestCoordinator_CancelUnknownExecution(t *testing.T) {
	f := newFixture(t, &stubStrategy{})
	assert.False(t, f.coordinator.CancelExecution("no-such-execution"))
}

func TestCoordinator_PanicRecovery(t *testing.T) {
	f := newFixture(t, &stubStrategy{panics: true})
	task := f.createTask(t)

	exec, err := f.coordinator.QueueExecution(context.Background(), task, "")
	require.NoError(t, err)

	done := f.waitTerminal(t, task.ID)
	assert.Equal(t, codingtask.StatusFailed, done.Status)

	row, err := f.client.TaskExecution.Get(context.Background(), exec.ID)
	require.NoError(t, err)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "panic: prompt template corrupted", *row.ErrorMessage)

	// The stream must close even after a panic.
	collectLines(t, f.logs, exec.ID)
}

func TestCoordinator_ShutdownCancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	f := newFixture(t, &stubStrategy{block: true, started: started})
	task := f.createTask(t)

	_, err := f.coordinator.QueueExecution(context.Background(), task, "")
	require.NoError(t, err)
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("strategy never started")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.coordinator.Shutdown(shutdownCtx))

	done, err := f.client.CodingTask.Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, codingtask.StatusCancelled, done.Status)

	// New work is rejected once draining.
	other := f.createTask(t)
	_, err = f.coordinator.QueueExecution(context.Background(), other, "")
	assert.ErrorIs(t, err, ErrShuttingDown)
}
