package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/pkg/clients"
	"github.com/devflow-ai/devflow/pkg/config"
	"github.com/devflow-ai/devflow/pkg/events"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/test/util"
)

// recordingPublisher captures emitted events instead of hitting Postgres.
type recordingPublisher struct {
	created   []events.TaskCreatedPayload
	started   []events.TaskStartedPayload
	completed []events.TaskCompletedPayload
	failed    []events.TaskFailedPayload
	prs       []events.PullRequestCreatedPayload
}

func (p *recordingPublisher) PublishTaskCreated(_ context.Context, payload events.TaskCreatedPayload) error {
	p.created = append(p.created, payload)
	return nil
}

func (p *recordingPublisher) PublishTaskStarted(_ context.Context, payload events.TaskStartedPayload) error {
	p.started = append(p.started, payload)
	return nil
}

func (p *recordingPublisher) PublishTaskCompleted(_ context.Context, payload events.TaskCompletedPayload) error {
	p.completed = append(p.completed, payload)
	return nil
}

func (p *recordingPublisher) PublishTaskFailed(_ context.Context, payload events.TaskFailedPayload) error {
	p.failed = append(p.failed, payload)
	return nil
}

func (p *recordingPublisher) PublishPullRequestCreated(_ context.Context, payload events.PullRequestCreatedPayload) error {
	p.prs = append(p.prs, payload)
	return nil
}

type fakePRCreator struct {
	pr    *clients.PullRequest
	err   error
	input *clients.CreatePullRequestInput
}

func (f *fakePRCreator) CreatePullRequest(_ context.Context, in clients.CreatePullRequestInput) (*clients.PullRequest, error) {
	f.input = &in
	if f.err != nil {
		return nil, f.err
	}
	return f.pr, nil
}

func newTaskService(t *testing.T, github PullRequestCreator) (*TaskService, *ent.Client, *recordingPublisher) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	pub := &recordingPublisher{}
	svc := NewTaskService(client, pub, github, config.GitHubConfig{
		Owner:      "devflow-ai",
		Repo:       "sandbox",
		BaseBranch: "main",
		BotUser:    "devflow-bot",
	})
	return svc, client, pub
}

func createTask(t *testing.T, svc *TaskService) *ent.CodingTask {
	t.Helper()
	task, err := svc.Create(context.Background(), models.CreateTaskRequest{
		UserID:      "user-1",
		Title:       "Fix login crash",
		Description: "Null pointer when the session cookie is missing",
	})
	require.NoError(t, err)
	return task
}

func newExecution(t *testing.T, client *ent.Client, taskID string) *ent.TaskExecution {
	t.Helper()
	exec, err := client.TaskExecution.Create().
		SetID(uuid.NewString()).
		SetTaskID(taskID).
		SetStrategy("SingleShot").
		SetModel("gpt-4o-mini").
		SetSuccess(true).
		SetTokensUsed(1200).
		SetCost(0.004).
		SetDurationMs(2500).
		Save(context.Background())
	require.NoError(t, err)
	return exec
}

func TestTaskService_Create(t *testing.T) {
	svc, _, pub := newTaskService(t, nil)

	task := createTask(t, svc)
	assert.Equal(t, codingtask.StatusPending, task.Status)
	assert.Empty(t, task.Complexity)

	require.Len(t, pub.created, 1)
	assert.Equal(t, task.ID, pub.created[0].TaskID)
	assert.Equal(t, "user-1", pub.created[0].UserID)
}

func TestTaskService_CreateValidation(t *testing.T) {
	svc, _, _ := newTaskService(t, nil)

	cases := []models.CreateTaskRequest{
		{Title: "t", Description: "d"},
		{UserID: "u", Description: "d"},
		{UserID: "u", Title: "t"},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		assert.True(t, IsValidationError(err), "request %+v", req)
	}
}

func TestTaskService_GetByIDNotFound(t *testing.T) {
	svc, _, _ := newTaskService(t, nil)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_UpdateTerminalTaskConflicts(t *testing.T) {
	svc, client, _ := newTaskService(t, nil)
	task := createTask(t, svc)

	require.NoError(t, client.CodingTask.UpdateOneID(task.ID).
		SetStatus(codingtask.StatusCompleted).Exec(context.Background()))

	title := "New title"
	_, err := svc.Update(context.Background(), task.ID, models.UpdateTaskRequest{Title: &title})
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ErrTaskTerminal)
}

func TestTaskService_UpdatePendingTask(t *testing.T) {
	svc, _, _ := newTaskService(t, nil)
	task := createTask(t, svc)

	title := "Fix login crash on expired cookie"
	updated, err := svc.Update(context.Background(), task.ID, models.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, task.Description, updated.Description)
}

func TestTaskService_DeleteInProgressConflicts(t *testing.T) {
	svc, client, _ := newTaskService(t, nil)
	task := createTask(t, svc)

	require.NoError(t, client.CodingTask.UpdateOneID(task.ID).
		SetStatus(codingtask.StatusInProgress).
		SetComplexity(codingtask.ComplexityMedium).Exec(context.Background()))

	err := svc.Delete(context.Background(), task.ID)
	assert.ErrorIs(t, err, ErrTaskInProgress)
}

func TestTaskService_DeleteCascades(t *testing.T) {
	svc, client, _ := newTaskService(t, nil)
	task := createTask(t, svc)
	newExecution(t, client, task.ID)

	require.NoError(t, svc.Delete(context.Background(), task.ID))

	count, err := client.TaskExecution.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTaskService_Classify(t *testing.T) {
	svc, _, _ := newTaskService(t, nil)
	task := createTask(t, svc)

	classified, err := svc.Classify(context.Background(), task.ID, models.Classification{
		TaskType:   models.TaskTypeBugFix,
		Complexity: models.ComplexitySimple,
	})
	require.NoError(t, err)
	assert.Equal(t, codingtask.TypeBugFix, classified.Type)
	assert.Equal(t, codingtask.ComplexitySimple, classified.Complexity)
}

func TestTaskService_ClassifyIgnoresStartedTask(t *testing.T) {
	svc, client, _ := newTaskService(t, nil)
	task := createTask(t, svc)

	require.NoError(t, client.CodingTask.UpdateOneID(task.ID).
		SetStatus(codingtask.StatusInProgress).
		SetComplexity(codingtask.ComplexityComplex).Exec(context.Background()))

	unchanged, err := svc.Classify(context.Background(), task.ID, models.Classification{
		TaskType:   models.TaskTypeBugFix,
		Complexity: models.ComplexitySimple,
	})
	require.NoError(t, err)
	assert.Equal(t, codingtask.ComplexityComplex, unchanged.Complexity)
}

func TestTaskService_StartDefaultsComplexity(t *testing.T) {
	svc, _, pub := newTaskService(t, nil)
	task := createTask(t, svc)

	started, err := svc.Start(context.Background(), task.ID, "exec-1", "Iterative", "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, codingtask.StatusInProgress, started.Status)
	assert.Equal(t, codingtask.ComplexityMedium, started.Complexity)

	require.Len(t, pub.started, 1)
	assert.Equal(t, "exec-1", pub.started[0].ExecutionID)
	assert.Equal(t, "Iterative", pub.started[0].Strategy)
}

func TestTaskService_StartKeepsClassifiedComplexity(t *testing.T) {
	svc, _, _ := newTaskService(t, nil)
	task := createTask(t, svc)

	_, err := svc.Classify(context.Background(), task.ID, models.Classification{
		TaskType:   models.TaskTypeBugFix,
		Complexity: models.ComplexitySimple,
	})
	require.NoError(t, err)

	started, err := svc.Start(context.Background(), task.ID, "exec-1", "SingleShot", "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, codingtask.ComplexitySimple, started.Complexity)
}

func TestTaskService_CompleteOpensPullRequest(t *testing.T) {
	github := &fakePRCreator{pr: &clients.PullRequest{
		Number:  17,
		URL:     "https://api.github.example/pulls/17",
		HTMLURL: "https://github.example/devflow-ai/sandbox/pull/17",
	}}
	svc, client, pub := newTaskService(t, github)
	task := createTask(t, svc)

	_, err := svc.Start(context.Background(), task.ID, "exec-1", "SingleShot", "gpt-4o-mini")
	require.NoError(t, err)
	exec := newExecution(t, client, task.ID)

	completed, err := svc.Complete(context.Background(), task.ID, exec, true)
	require.NoError(t, err)
	assert.Equal(t, codingtask.StatusCompleted, completed.Status)
	require.NotNil(t, completed.PrNumber)
	assert.Equal(t, 17, *completed.PrNumber)
	require.NotNil(t, completed.PrURL)
	assert.Equal(t, github.pr.HTMLURL, *completed.PrURL)

	require.NotNil(t, github.input)
	assert.Equal(t, "main", github.input.Base)
	assert.Equal(t, fmt.Sprintf("devflow/task-%s", task.ID), github.input.Head)

	require.Len(t, pub.completed, 1)
	require.NotNil(t, pub.completed[0].PRNumber)
	assert.Equal(t, "SingleShot", pub.completed[0].Strategy)
	assert.Equal(t, 1200, pub.completed[0].TokensUsed)
	require.Len(t, pub.prs, 1)
	assert.Equal(t, 17, pub.prs[0].Number)
}

func TestTaskService_FailEmitsExecutionUsage(t *testing.T) {
	svc, client, pub := newTaskService(t, nil)
	task := createTask(t, svc)

	_, err := svc.Start(context.Background(), task.ID, "exec-1", "SingleShot", "gpt-4o-mini")
	require.NoError(t, err)
	exec := newExecution(t, client, task.ID)

	failed, err := svc.Fail(context.Background(), task.ID, exec.ID, []string{"no code changes in model output"})
	require.NoError(t, err)
	assert.Equal(t, codingtask.StatusFailed, failed.Status)

	require.Len(t, pub.failed, 1)
	assert.Equal(t, "SingleShot", pub.failed[0].Strategy)
	assert.Equal(t, 1200, pub.failed[0].TokensUsed)
	assert.InDelta(t, 0.004, pub.failed[0].Cost, 1e-9)
	assert.Equal(t, int64(2500), pub.failed[0].DurationMs)
}

func TestTaskService_FailWithoutExecutionRowStillEmits(t *testing.T) {
	svc, _, pub := newTaskService(t, nil)
	task := createTask(t, svc)

	_, err := svc.Start(context.Background(), task.ID, "exec-gone", "SingleShot", "gpt-4o-mini")
	require.NoError(t, err)

	_, err = svc.Fail(context.Background(), task.ID, "exec-gone", []string{"crashed before persisting"})
	require.NoError(t, err)

	require.Len(t, pub.failed, 1)
	assert.Empty(t, pub.failed[0].Strategy)
	assert.Zero(t, pub.failed[0].TokensUsed)
}

func TestTaskService_CompletePRFailureIsNotFatal(t *testing.T) {
	github := &fakePRCreator{err: errors.New("wrapper unreachable")}
	svc, client, pub := newTaskService(t, github)
	task := createTask(t, svc)

	_, err := svc.Start(context.Background(), task.ID, "exec-1", "SingleShot", "gpt-4o-mini")
	require.NoError(t, err)
	exec := newExecution(t, client, task.ID)

	completed, err := svc.Complete(context.Background(), task.ID, exec, true)
	require.NoError(t, err)
	assert.Equal(t, codingtask.StatusCompleted, completed.Status)
	assert.Nil(t, completed.PrNumber)
	assert.Empty(t, pub.prs)
	require.Len(t, pub.completed, 1)
}

func TestTaskService_CompleteWithoutChangesSkipsPR(t *testing.T) {
	github := &fakePRCreator{pr: &clients.PullRequest{Number: 1}}
	svc, client, _ := newTaskService(t, github)
	task := createTask(t, svc)

	_, err := svc.Start(context.Background(), task.ID, "exec-1", "SingleShot", "gpt-4o-mini")
	require.NoError(t, err)
	exec := newExecution(t, client, task.ID)

	_, err = svc.Complete(context.Background(), task.ID, exec, false)
	require.NoError(t, err)
	assert.Nil(t, github.input)
}

func TestTaskService_ReexecutionKeepsTerminalStatus(t *testing.T) {
	svc, client, pub := newTaskService(t, nil)
	task := createTask(t, svc)

	_, err := svc.Start(context.Background(), task.ID, "exec-1", "SingleShot", "gpt-4o-mini")
	require.NoError(t, err)
	exec := newExecution(t, client, task.ID)
	_, err = svc.Fail(context.Background(), task.ID, exec.ID, []string{"no code changes in model output"})
	require.NoError(t, err)

	// A re-execution of the failed task completes; status stays failed but
	// the completion event is still emitted.
	reexec := newExecution(t, client, task.ID)
	after, err := svc.Complete(context.Background(), task.ID, reexec, false)
	require.NoError(t, err)
	assert.Equal(t, codingtask.StatusFailed, after.Status)
	assert.Len(t, pub.failed, 1)
	assert.Len(t, pub.completed, 1)
}

func TestTaskService_Cancel(t *testing.T) {
	svc, _, pub := newTaskService(t, nil)
	task := createTask(t, svc)

	_, err := svc.Start(context.Background(), task.ID, "exec-1", "SingleShot", "gpt-4o-mini")
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), task.ID, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, codingtask.StatusCancelled, cancelled.Status)
	require.Len(t, pub.failed, 1)
	assert.Equal(t, []string{"cancelled"}, pub.failed[0].Errors)
}

func TestTaskService_ListByUser(t *testing.T) {
	svc, _, _ := newTaskService(t, nil)

	for i := range 25 {
		_, err := svc.Create(context.Background(), models.CreateTaskRequest{
			UserID:      "user-1",
			Title:       fmt.Sprintf("Task %d", i),
			Description: "routine maintenance work",
		})
		require.NoError(t, err)
		// created_at ordering needs distinct timestamps.
		time.Sleep(2 * time.Millisecond)
	}
	_, err := svc.Create(context.Background(), models.CreateTaskRequest{
		UserID:      "user-2",
		Title:       "Other user task",
		Description: "not ours",
	})
	require.NoError(t, err)

	page, err := svc.ListByUser(context.Background(), models.TaskListParams{
		UserID: "user-1", Page: 2, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, page.TotalCount)
	assert.Len(t, page.Tasks, 10)
	// Newest first: page 2 starts at the 11th newest.
	assert.Equal(t, "Task 14", page.Tasks[0].Title)
}

func TestTaskService_ListSearch(t *testing.T) {
	svc, _, _ := newTaskService(t, nil)

	_, err := svc.Create(context.Background(), models.CreateTaskRequest{
		UserID: "user-1", Title: "Fix login crash", Description: "session cookie expiry crashes the handler",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), models.CreateTaskRequest{
		UserID: "user-1", Title: "Add CSV export", Description: "export tasks as CSV",
	})
	require.NoError(t, err)

	page, err := svc.ListByUser(context.Background(), models.TaskListParams{Search: "login crash"})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 1)
	assert.Equal(t, "Fix login crash", page.Tasks[0].Title)
}
