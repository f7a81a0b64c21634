package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyPayloadLimit stays under PostgreSQL's 8000-byte NOTIFY payload cap.
const notifyPayloadLimit = 7800

// Publisher persists task events and broadcasts them via NOTIFY.
// Persistent publishes run the INSERT and pg_notify in one transaction, so
// the notification fires exactly when the row commits.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher over the raw connection pool (use
// database.Client.DB()).
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishTaskCreated persists and broadcasts a task.created event.
func (p *Publisher) PublishTaskCreated(ctx context.Context, payload TaskCreatedPayload) error {
	payload.Type = EventTypeTaskCreated
	return p.publishStatus(ctx, payload.TaskID, payload.Type, &payload.Timestamp, payload)
}

// PublishTaskStarted persists and broadcasts a task.started event.
func (p *Publisher) PublishTaskStarted(ctx context.Context, payload TaskStartedPayload) error {
	payload.Type = EventTypeTaskStarted
	return p.publishStatus(ctx, payload.TaskID, payload.Type, &payload.Timestamp, payload)
}

// PublishTaskCompleted persists and broadcasts a task.completed event.
func (p *Publisher) PublishTaskCompleted(ctx context.Context, payload TaskCompletedPayload) error {
	payload.Type = EventTypeTaskCompleted
	return p.publishStatus(ctx, payload.TaskID, payload.Type, &payload.Timestamp, payload)
}

// PublishTaskFailed persists and broadcasts a task.failed event.
func (p *Publisher) PublishTaskFailed(ctx context.Context, payload TaskFailedPayload) error {
	payload.Type = EventTypeTaskFailed
	return p.publishStatus(ctx, payload.TaskID, payload.Type, &payload.Timestamp, payload)
}

// PublishPullRequestCreated persists and broadcasts a pull_request.created
// event on the task channel only.
func (p *Publisher) PublishPullRequestCreated(ctx context.Context, payload PullRequestCreatedPayload) error {
	payload.Type = EventTypePullRequestCreated
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", payload.Type, err)
	}
	return p.persistAndNotify(ctx, payload.TaskID, TaskChannel(payload.TaskID), payloadJSON)
}

// publishStatus persists the event on the task channel and mirrors a
// transient copy onto the global tasks channel. The mirror is best-effort;
// the persistent publish decides the returned error.
func (p *Publisher) publishStatus(ctx context.Context, taskID, eventType string, ts *time.Time, payload any) error {
	if ts.IsZero() {
		*ts = time.Now()
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	if err := p.persistAndNotify(ctx, taskID, TaskChannel(taskID), payloadJSON); err != nil {
		return err
	}
	if err := p.notifyOnly(ctx, GlobalTasksChannel, payloadJSON); err != nil {
		slog.Warn("Failed to mirror event to global channel",
			"task_id", taskID, "type", eventType, "error", err)
	}
	return nil
}

// persistAndNotify inserts the event row and fires pg_notify in a single
// transaction (pg_notify is transactional, held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, taskID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (task_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		taskID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectEventID(payloadJSON, eventID)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload := truncateIfNeeded(string(payloadJSON))
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectEventID adds the row id to the NOTIFY copy so listeners can catch up
// from the events table after a dropped notification.
func injectEventID(payloadJSON []byte, eventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to decode event payload: %w", err)
	}
	m["event_id"] = eventID
	out, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to re-encode event payload: %w", err)
	}
	return truncateIfNeeded(string(out)), nil
}

// truncateIfNeeded replaces oversized payloads with a stub that points the
// listener at the persisted row.
func truncateIfNeeded(payload string) string {
	if len(payload) <= notifyPayloadLimit {
		return payload
	}
	slog.Warn("NOTIFY payload too large, sending truncation stub", "bytes", len(payload))
	return `{"truncated":true}`
}
