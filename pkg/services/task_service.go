package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/pkg/clients"
	"github.com/devflow-ai/devflow/pkg/config"
	"github.com/devflow-ai/devflow/pkg/events"
	"github.com/devflow-ai/devflow/pkg/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxTitleLength  = 500
)

// EventPublisher is the slice of the event publisher the task service needs.
type EventPublisher interface {
	PublishTaskCreated(ctx context.Context, payload events.TaskCreatedPayload) error
	PublishTaskStarted(ctx context.Context, payload events.TaskStartedPayload) error
	PublishTaskCompleted(ctx context.Context, payload events.TaskCompletedPayload) error
	PublishTaskFailed(ctx context.Context, payload events.TaskFailedPayload) error
	PublishPullRequestCreated(ctx context.Context, payload events.PullRequestCreatedPayload) error
}

// PullRequestCreator is the slice of the GitHub client the task service
// needs.
type PullRequestCreator interface {
	CreatePullRequest(ctx context.Context, in clients.CreatePullRequestInput) (*clients.PullRequest, error)
}

// TaskService manages the coding task lifecycle. Every state transition
// emits the corresponding domain event; event publish failures are logged,
// never surfaced, so the task row stays the source of truth.
type TaskService struct {
	client    *ent.Client
	publisher EventPublisher
	github    PullRequestCreator // nil disables PR creation
	githubCfg config.GitHubConfig
}

// NewTaskService creates a TaskService. github may be nil.
func NewTaskService(client *ent.Client, publisher EventPublisher, github PullRequestCreator, githubCfg config.GitHubConfig) *TaskService {
	return &TaskService{
		client:    client,
		publisher: publisher,
		github:    github,
		githubCfg: githubCfg,
	}
}

// Create persists a new pending task and emits task.created.
func (s *TaskService) Create(ctx context.Context, req models.CreateTaskRequest) (*ent.CodingTask, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if len(req.Title) > maxTitleLength {
		return nil, NewValidationError("title", fmt.Sprintf("longer than %d characters", maxTitleLength))
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}

	task, err := s.client.CodingTask.Create().
		SetID(uuid.NewString()).
		SetUserID(req.UserID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetStatus(codingtask.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.publish(ctx, task.ID, func(ctx context.Context) error {
		return s.publisher.PublishTaskCreated(ctx, events.TaskCreatedPayload{
			TaskID: task.ID,
			UserID: task.UserID,
			Title:  task.Title,
		})
	})
	return task, nil
}

// GetByID loads one task.
func (s *TaskService) GetByID(ctx context.Context, taskID string) (*ent.CodingTask, error) {
	task, err := s.client.CodingTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return task, nil
}

// ListByUser returns a filtered, paginated task page, newest first. Search
// matches title and description full-text.
func (s *TaskService) ListByUser(ctx context.Context, params models.TaskListParams) (*models.TaskListResponse, error) {
	query := s.client.CodingTask.Query()
	if params.UserID != "" {
		query = query.Where(codingtask.UserIDEQ(params.UserID))
	}
	if params.Search != "" {
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP(
				"to_tsvector('english', title || ' ' || description) @@ plainto_tsquery('english', $1)",
				params.Search,
			))
		})
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	page := params.Page
	if page <= 0 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	tasks, err := query.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order(ent.Desc(codingtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update edits a task's title and description. Terminal tasks are immutable.
func (s *TaskService) Update(ctx context.Context, taskID string, req models.UpdateTaskRequest) (*ent.CodingTask, error) {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if isTerminal(task.Status) {
		return nil, fmt.Errorf("task %s: %w", taskID, ErrTaskTerminal)
	}
	if req.Title != nil && *req.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if req.Title != nil && len(*req.Title) > maxTitleLength {
		return nil, NewValidationError("title", fmt.Sprintf("longer than %d characters", maxTitleLength))
	}
	if req.Description != nil && *req.Description == "" {
		return nil, NewValidationError("description", "must not be empty")
	}

	update := task.Update()
	if req.Title != nil {
		update.SetTitle(*req.Title)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// Delete removes a task and its executions and feedback. Refused while the
// task is executing.
func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.Status == codingtask.StatusInProgress {
		return fmt.Errorf("task %s: %w", taskID, ErrTaskInProgress)
	}
	if err := s.client.CodingTask.DeleteOneID(taskID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Classify applies a resolved classification to a still-unclassified task.
// Tasks past classifying keep whatever they already have.
func (s *TaskService) Classify(ctx context.Context, taskID string, cls models.Classification) (*ent.CodingTask, error) {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != codingtask.StatusPending && task.Status != codingtask.StatusClassifying {
		return task, nil
	}

	updated, err := task.Update().
		SetType(codingtask.Type(cls.TaskType)).
		SetComplexity(codingtask.Complexity(cls.Complexity)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to classify task: %w", err)
	}
	return updated, nil
}

// Start moves a pending or classifying task into in_progress and emits
// task.started. A still-unset complexity defaults to medium so the
// in_progress invariant holds. Re-executions of terminal tasks keep their
// status but still emit the event.
func (s *TaskService) Start(ctx context.Context, taskID, executionID, strategyName, model string) (*ent.CodingTask, error) {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == codingtask.StatusPending || task.Status == codingtask.StatusClassifying {
		update := task.Update().SetStatus(codingtask.StatusInProgress)
		if task.Complexity == "" {
			update.SetComplexity(codingtask.ComplexityMedium)
		}
		task, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to start task: %w", err)
		}
	}

	s.publish(ctx, task.ID, func(ctx context.Context) error {
		return s.publisher.PublishTaskStarted(ctx, events.TaskStartedPayload{
			TaskID:      task.ID,
			ExecutionID: executionID,
			Strategy:    strategyName,
			Model:       model,
		})
	})
	return task, nil
}

// Complete moves an in_progress task to completed, emits task.completed,
// and opens a pull request for the changes when the task has none yet.
// Already-terminal tasks keep their status; the event is still emitted.
func (s *TaskService) Complete(ctx context.Context, taskID string, exec *ent.TaskExecution, hasChanges bool) (*ent.CodingTask, error) {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == codingtask.StatusInProgress {
		task, err = task.Update().
			SetStatus(codingtask.StatusCompleted).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to complete task: %w", err)
		}
	}

	if task.PrNumber == nil && hasChanges {
		task = s.createPullRequest(ctx, task)
	}

	s.publish(ctx, task.ID, func(ctx context.Context) error {
		payload := events.TaskCompletedPayload{
			TaskID:      task.ID,
			ExecutionID: exec.ID,
			Strategy:    exec.Strategy,
			TokensUsed:  exec.TokensUsed,
			Cost:        exec.Cost,
			DurationMs:  exec.DurationMs,
			PRNumber:    task.PrNumber,
		}
		return s.publisher.PublishTaskCompleted(ctx, payload)
	})
	return task, nil
}

// Fail moves an in_progress task to failed and emits task.failed.
// Already-terminal tasks keep their status; the event is still emitted.
func (s *TaskService) Fail(ctx context.Context, taskID, executionID string, errs []string) (*ent.CodingTask, error) {
	return s.terminate(ctx, taskID, executionID, codingtask.StatusFailed, errs)
}

// Cancel moves an in_progress task to cancelled and emits task.failed with a
// cancellation error entry.
func (s *TaskService) Cancel(ctx context.Context, taskID, executionID string) (*ent.CodingTask, error) {
	return s.terminate(ctx, taskID, executionID, codingtask.StatusCancelled, []string{"cancelled"})
}

func (s *TaskService) terminate(ctx context.Context, taskID, executionID string, status codingtask.Status, errs []string) (*ent.CodingTask, error) {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == codingtask.StatusInProgress {
		task, err = task.Update().
			SetStatus(status).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark task %s: %w", status, err)
		}
	}

	payload := events.TaskFailedPayload{
		TaskID:      task.ID,
		ExecutionID: executionID,
		Errors:      errs,
	}
	// The execution row carries what the run consumed before failing. It may
	// not exist yet when termination raced the row's creation.
	if exec, err := s.client.TaskExecution.Get(ctx, executionID); err == nil {
		payload.Strategy = exec.Strategy
		payload.TokensUsed = exec.TokensUsed
		payload.Cost = exec.Cost
		payload.DurationMs = exec.DurationMs
	}

	s.publish(ctx, task.ID, func(ctx context.Context) error {
		return s.publisher.PublishTaskFailed(ctx, payload)
	})
	return task, nil
}

// createPullRequest opens a PR for the task under the configured bot
// identity. Best-effort: failures log and leave the task unchanged.
func (s *TaskService) createPullRequest(ctx context.Context, task *ent.CodingTask) *ent.CodingTask {
	if s.github == nil {
		return task
	}

	pr, err := s.github.CreatePullRequest(ctx, clients.CreatePullRequestInput{
		Owner: s.githubCfg.Owner,
		Repo:  s.githubCfg.Repo,
		Title: task.Title,
		Body: fmt.Sprintf("Automated changes for task %s.\n\n%s\n\nOpened by %s.",
			task.ID, task.Description, s.githubCfg.BotUser),
		Head: fmt.Sprintf("devflow/task-%s", task.ID),
		Base: s.githubCfg.BaseBranch,
	})
	if err != nil {
		slog.Warn("Pull request creation failed, task stays completed",
			"task_id", task.ID, "error", err)
		return task
	}

	updated, err := task.Update().
		SetPrNumber(pr.Number).
		SetPrURL(pr.HTMLURL).
		Save(ctx)
	if err != nil {
		slog.Warn("Failed to store pull request on task",
			"task_id", task.ID, "pr", pr.Number, "error", err)
		return task
	}

	s.publish(ctx, task.ID, func(ctx context.Context) error {
		return s.publisher.PublishPullRequestCreated(ctx, events.PullRequestCreatedPayload{
			TaskID: task.ID,
			Number: pr.Number,
			URL:    pr.HTMLURL,
		})
	})
	return updated
}

// publish runs one event publish, logging failures.
func (s *TaskService) publish(ctx context.Context, taskID string, fn func(context.Context) error) {
	if s.publisher == nil {
		return
	}
	if err := fn(ctx); err != nil {
		slog.Warn("Failed to publish task event", "task_id", taskID, "error", err)
	}
}

func isTerminal(status codingtask.Status) bool {
	switch status {
	case codingtask.StatusCompleted, codingtask.StatusFailed, codingtask.StatusCancelled:
		return true
	default:
		return false
	}
}
