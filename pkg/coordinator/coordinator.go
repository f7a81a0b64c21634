// Package coordinator owns the execution lifecycle: it resolves a strategy
// and model for a task, records the attempt as a TaskExecution row, runs the
// strategy in a supervised goroutine, and fans the outcome out to the task
// service, the performance tracker, the A/B engine, and the classifier's
// training endpoint.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/abtest"
	"github.com/devflow-ai/devflow/pkg/logstream"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/pkg/perf"
	"github.com/devflow-ai/devflow/pkg/selector"
	"github.com/devflow-ai/devflow/pkg/services"
	"github.com/devflow-ai/devflow/pkg/strategy"
)

// ErrShuttingDown rejects new executions once Shutdown has started.
var ErrShuttingDown = errors.New("coordinator is shutting down")

// trainingSink receives labelled outcomes for classifier retraining.
type trainingSink interface {
	SubmitTrainingFeedback(ctx context.Context, fb models.TrainingFeedback) error
}

// resultRecorder attributes finished executions to an active A/B test.
type resultRecorder interface {
	RecordResult(ctx context.Context, testID, requestID string, sample models.ExecutionSample) error
}

// Coordinator queues and supervises task executions. Each execution runs on
// its own detached context so that HTTP request cancellation never kills an
// accepted run; cancellation happens only through CancelExecution or
// Shutdown.
type Coordinator struct {
	client      *ent.Client
	tasks       *services.TaskService
	strategySel *selector.StrategySelector
	modelSel    *selector.ModelSelector
	tracker     *perf.Tracker
	ab          resultRecorder // nil disables A/B attribution
	classifier  trainingSink   // nil disables training feedback
	logs        *logstream.Hub

	mu       sync.Mutex
	active   map[string]context.CancelFunc
	draining bool
	wg       sync.WaitGroup
}

// New wires a Coordinator. ab and classifier may be nil.
func New(
	client *ent.Client,
	tasks *services.TaskService,
	strategySel *selector.StrategySelector,
	modelSel *selector.ModelSelector,
	tracker *perf.Tracker,
	ab *abtest.Engine,
	classifier trainingSink,
	logs *logstream.Hub,
) *Coordinator {
	c := &Coordinator{
		client:      client,
		tasks:       tasks,
		strategySel: strategySel,
		modelSel:    modelSel,
		tracker:     tracker,
		classifier:  classifier,
		logs:        logs,
		active:      make(map[string]context.CancelFunc),
	}
	if ab != nil {
		c.ab = ab
	}
	return c
}

// QueueExecution resolves the strategy and model for a task, transitions the
// task to in_progress, persists a TaskExecution row, and hands the run off to
// a supervised goroutine. The returned execution row reflects the queued
// state; callers observe progress through the log stream and task events.
func (c *Coordinator) QueueExecution(ctx context.Context, task *ent.CodingTask, overrideStrategy string) (*ent.TaskExecution, error) {
	strat, cls := c.strategySel.Select(ctx, task, overrideStrategy)

	executionID := uuid.NewString()
	sel := c.modelSel.SelectBestModel(ctx, task.Description, cls.TaskType, cls.Complexity, executionID)

	// Registration and wg.Add happen under the same lock Shutdown takes, so
	// a draining coordinator either rejects the run or waits for it.
	// Registering before the task transition means a Shutdown racing this
	// call cancels runCtx rather than leaving an untracked run.
	c.mu.Lock()
	if c.draining {
		c.mu.Unlock()
		return nil, ErrShuttingDown
	}
	runCtx, cancel := context.WithCancel(context.Background())
	c.active[executionID] = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	abandon := func() {
		c.mu.Lock()
		delete(c.active, executionID)
		c.mu.Unlock()
		cancel()
		c.wg.Done()
	}

	task, err := c.tasks.Start(ctx, task.ID, executionID, strat.Name(), sel.Model)
	if err != nil {
		abandon()
		return nil, err
	}

	exec, err := c.client.TaskExecution.Create().
		SetID(executionID).
		SetTaskID(task.ID).
		SetStrategy(strat.Name()).
		SetModel(sel.Model).
		Save(ctx)
	if err != nil {
		abandon()
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	slog.Info("Queued execution",
		"task_id", task.ID, "execution_id", executionID,
		"strategy", strat.Name(), "model", sel.Model, "model_reason", sel.Reason)

	go c.run(runCtx, task, exec, strat, sel)
	return exec, nil
}

// CancelExecution cancels a running execution. Returns false when the
// execution is not active on this instance.
func (c *Coordinator) CancelExecution(executionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cancel, ok := c.active[executionID]; ok {
		cancel()
		return true
	}
	return false
}

// Shutdown stops accepting executions, cancels in-flight runs, and waits for
// them to finish or for ctx to expire.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	c.draining = true
	for _, cancel := range c.active {
		cancel()
	}
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown wait: %w", ctx.Err())
	}
}

func (c *Coordinator) run(ctx context.Context, task *ent.CodingTask, exec *ent.TaskExecution, strat strategy.Strategy, sel *models.ModelSelection) {
	defer c.wg.Done()
	defer func() {
		c.mu.Lock()
		if cancel, ok := c.active[exec.ID]; ok {
			cancel()
			delete(c.active, exec.ID)
		}
		c.mu.Unlock()
		c.logs.Complete(exec.ID)
	}()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Execution panicked",
				"task_id", task.ID, "execution_id", exec.ID, "panic", r)
			c.finalize(context.Background(), task, exec, sel, &strategy.ExecutionResult{
				Success: false,
				Errors:  []string{fmt.Sprintf("panic: %v", r)},
			}, false)
		}
	}()

	c.logs.Write(exec.ID, fmt.Sprintf("status:starting strategy=%s", strat.Name()))

	// Reload before running: the queued snapshot may miss edits made between
	// acceptance and the goroutine getting scheduled.
	if fresh, err := c.tasks.GetByID(ctx, task.ID); err == nil {
		task = fresh
	} else {
		slog.Warn("Could not reload task before execution, using queued snapshot",
			"task_id", task.ID, "execution_id", exec.ID, "error", err)
	}

	execCtx := &models.TaskExecutionContext{
		ExecutionID: exec.ID,
		Model:       sel.Model,
	}
	result := strat.Execute(ctx, task, execCtx)

	cancelled := ctx.Err() != nil && !result.Success
	c.finalize(ctx, task, exec, sel, result, cancelled)
}

// finalize persists the outcome and fans it out. It runs on a background
// context so a cancelled execution still records its terminal state.
func (c *Coordinator) finalize(_ context.Context, task *ent.CodingTask, exec *ent.TaskExecution, sel *models.ModelSelection, result *strategy.ExecutionResult, cancelled bool) {
	bg, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	errMsg := strings.Join(result.Errors, "; ")
	update := c.client.TaskExecution.UpdateOneID(exec.ID).
		SetSuccess(result.Success).
		SetTokensUsed(result.TotalTokens).
		SetCost(result.TotalCost).
		SetDurationMs(result.Duration.Milliseconds()).
		SetIterations(result.IterationsUsed).
		SetFinishedAt(time.Now())
	if errMsg != "" {
		update.SetErrorMessage(errMsg)
	}
	if updated, err := update.Save(bg); err != nil {
		slog.Error("Failed to persist execution outcome",
			"execution_id", exec.ID, "error", err)
	} else {
		exec = updated
	}

	switch {
	case result.Success:
		if _, err := c.tasks.Complete(bg, task.ID, exec, len(result.Changes) > 0); err != nil {
			slog.Error("Failed to complete task",
				"task_id", task.ID, "execution_id", exec.ID, "error", err)
		}
		c.logs.Write(exec.ID, fmt.Sprintf("status:success tokens=%d cost=%.4f durationMs=%d",
			result.TotalTokens, result.TotalCost, result.Duration.Milliseconds()))
	case cancelled:
		if _, err := c.tasks.Cancel(bg, task.ID, exec.ID); err != nil {
			slog.Error("Failed to cancel task",
				"task_id", task.ID, "execution_id", exec.ID, "error", err)
		}
		c.logs.Write(exec.ID, "status:failed error=cancelled")
	default:
		if _, err := c.tasks.Fail(bg, task.ID, exec.ID, result.Errors); err != nil {
			slog.Error("Failed to mark task failed",
				"task_id", task.ID, "execution_id", exec.ID, "error", err)
		}
		c.logs.Write(exec.ID, "status:failed error="+oneLine(errMsg))
	}

	sample := models.ExecutionSample{
		Model:      sel.Model,
		TaskType:   models.TaskType(task.Type),
		Complexity: models.Complexity(task.Complexity),
		Success:    result.Success,
		TokensUsed: result.TotalTokens,
		Cost:       result.TotalCost,
		Duration:   result.Duration,
	}
	c.tracker.RecordExecution(bg, sample)

	if sel.IsABTest && c.ab != nil {
		if err := c.ab.RecordResult(bg, sel.ABTestID, exec.ID, sample); err != nil {
			slog.Warn("Failed to record A/B result",
				"test_id", sel.ABTestID, "execution_id", exec.ID, "error", err)
		}
	}

	if c.classifier != nil && !cancelled {
		fb := models.TrainingFeedback{
			TaskDescription: task.Description,
			TaskType:        models.TaskType(task.Type),
			Complexity:      models.Complexity(task.Complexity),
			Success:         result.Success,
		}
		if err := c.classifier.SubmitTrainingFeedback(bg, fb); err != nil {
			slog.Warn("Failed to submit training feedback",
				"task_id", task.ID, "error", err)
		}
	}
}

// oneLine keeps log stream status markers on a single line.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
