// Package events publishes task lifecycle events. Events are persisted to
// the events table and broadcast via PostgreSQL NOTIFY in one transaction,
// so a committed row and its notification are atomic; cross-pod consumers
// LISTEN on the task channels and can catch up from the table.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeTaskCreated        = "task.created"
	EventTypeTaskStarted        = "task.started"
	EventTypeTaskCompleted      = "task.completed"
	EventTypeTaskFailed         = "task.failed"
	EventTypePullRequestCreated = "pull_request.created"
)

// GlobalTasksChannel carries transient copies of task status events for
// consumers that watch every task (dashboards, queues).
const GlobalTasksChannel = "tasks"

// TaskChannel returns the NOTIFY channel for one task's events.
func TaskChannel(taskID string) string {
	return "task:" + taskID
}
