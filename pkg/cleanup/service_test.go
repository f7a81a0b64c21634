package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/pkg/config"
	"github.com/devflow-ai/devflow/pkg/events"
	"github.com/devflow-ai/devflow/pkg/services"
	"github.com/devflow-ai/devflow/test/util"
)

func newService(t *testing.T, cfg config.RetentionConfig) (*Service, *ent.Client) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	tasks := services.NewTaskService(client, events.NewPublisher(db), nil, config.GitHubConfig{})
	return NewService(cfg, db, client, tasks, nil), client
}

func createTask(t *testing.T, client *ent.Client, status codingtask.Status) *ent.CodingTask {
	t.Helper()
	task, err := client.CodingTask.Create().
		SetID(uuid.NewString()).
		SetUserID("user-1").
		SetTitle("Fix login crash").
		SetDescription("crash on expired cookie").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func createExecution(t *testing.T, client *ent.Client, taskID string, startedAt time.Time) *ent.TaskExecution {
	t.Helper()
	exec, err := client.TaskExecution.Create().
		SetID(uuid.NewString()).
		SetTaskID(taskID).
		SetStrategy("Iterative").
		SetStartedAt(startedAt).
		Save(context.Background())
	require.NoError(t, err)
	return exec
}

func TestService_PrunesOldEvents(t *testing.T) {
	svc, _ := newService(t, config.RetentionConfig{EventTTL: "1h"})
	ctx := context.Background()

	insert := "INSERT INTO events (task_id, channel, payload, created_at) VALUES ($1, $2, $3, $4)"
	_, err := svc.db.ExecContext(ctx, insert, "task-1", "task:task-1", `{"type":"task.created"}`, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = svc.db.ExecContext(ctx, insert, "task-1", "task:task-1", `{"type":"task.started"}`, time.Now())
	require.NoError(t, err)

	svc.RunAll(ctx)

	var count int
	require.NoError(t, svc.db.QueryRowContext(ctx, "SELECT count(*) FROM events").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestService_RecoversOrphanedTask(t *testing.T) {
	svc, client := newService(t, config.RetentionConfig{StaleTaskTimeout: "1h"})
	ctx := context.Background()

	task := createTask(t, client, codingtask.StatusInProgress)
	exec := createExecution(t, client, task.ID, time.Now().Add(-2*time.Hour))

	svc.RunAll(ctx)

	updated := client.CodingTask.GetX(ctx, task.ID)
	assert.Equal(t, codingtask.StatusFailed, updated.Status)

	row := client.TaskExecution.GetX(ctx, exec.ID)
	assert.False(t, row.Success)
	assert.NotNil(t, row.FinishedAt)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "execution orphaned")
}

func TestService_LeavesFreshExecutionsAlone(t *testing.T) {
	svc, client := newService(t, config.RetentionConfig{StaleTaskTimeout: "1h"})
	ctx := context.Background()

	task := createTask(t, client, codingtask.StatusInProgress)
	createExecution(t, client, task.ID, time.Now().Add(-10*time.Minute))

	svc.RunAll(ctx)

	updated := client.CodingTask.GetX(ctx, task.ID)
	assert.Equal(t, codingtask.StatusInProgress, updated.Status)
}

func TestService_IgnoresTerminalTasks(t *testing.T) {
	svc, client := newService(t, config.RetentionConfig{StaleTaskTimeout: "1h"})
	ctx := context.Background()

	// A cancelled task can legitimately leave an unfinished execution row
	// behind; the sweeper must not flip it to failed.
	task := createTask(t, client, codingtask.StatusCancelled)
	createExecution(t, client, task.ID, time.Now().Add(-2*time.Hour))

	svc.RunAll(ctx)

	updated := client.CodingTask.GetX(ctx, task.ID)
	assert.Equal(t, codingtask.StatusCancelled, updated.Status)
}

type fakeRetrainer struct {
	calls int
}

func (f *fakeRetrainer) TriggerRetrain(context.Context) error {
	f.calls++
	return nil
}

func TestService_SweepTriggersRetrain(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	tasks := services.NewTaskService(client, events.NewPublisher(db), nil, config.GitHubConfig{})
	retrainer := &fakeRetrainer{}
	feedback := services.NewFeedbackService(client, nil, retrainer, 1)
	svc := NewService(config.RetentionConfig{}, db, client, tasks, feedback)
	ctx := context.Background()

	task := createTask(t, client, codingtask.StatusCompleted)
	_, err := client.Feedback.Create().
		SetID(uuid.NewString()).
		SetTaskID(task.ID).
		SetUserID("user-1").
		SetSentiment("positive").
		SetRating(1).
		SetContext(map[string]any{"procedure_id": "proc-1"}).
		Save(ctx)
	require.NoError(t, err)

	// One all-positive procedure sample clears the floor of 1 and is a
	// significant pattern, so the sweep fires the retrain trigger.
	svc.RunAll(ctx)
	assert.Equal(t, 1, retrainer.calls)
}

func TestService_StartStop(t *testing.T) {
	svc, _ := newService(t, config.RetentionConfig{SweepInterval: "50ms"})

	svc.Start(context.Background())
	time.Sleep(120 * time.Millisecond)
	svc.Stop()

	// Stop is idempotent through the nil-cancel guard on a second Service.
	NewService(svc.cfg, svc.db, svc.client, svc.tasks, nil).Stop()
}
