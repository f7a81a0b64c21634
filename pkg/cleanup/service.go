// Package cleanup provides data retention and orphan recovery.
package cleanup

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/ent/taskexecution"
	"github.com/devflow-ai/devflow/pkg/config"
	"github.com/devflow-ai/devflow/pkg/services"
)

// retrainChecker is the slice of the feedback service the sweeper needs.
type retrainChecker interface {
	UpdateModelParameters(ctx context.Context) bool
}

// Service periodically enforces retention policies:
//   - Removes outbox event rows past their TTL
//   - Fails tasks whose execution died without reaching a terminal state
//     (for example after a crash), so they stop blocking updates and deletes
//   - Re-evaluates the classifier retrain condition against accumulated
//     feedback
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	cfg      config.RetentionConfig
	db       *sql.DB
	client   *ent.Client
	tasks    *services.TaskService
	feedback retrainChecker // nil disables retrain checks

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. feedback may be nil.
func NewService(cfg config.RetentionConfig, db *sql.DB, client *ent.Client, tasks *services.TaskService, feedback *services.FeedbackService) *Service {
	s := &Service{
		cfg:    cfg,
		db:     db,
		client: client,
		tasks:  tasks,
	}
	if feedback != nil {
		s.feedback = feedback
	}
	return s
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.cfg.EventRetention(),
		"stale_task_timeout", s.cfg.StaleTaskAfter(),
		"interval", s.cfg.Interval())
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.cfg.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one sweep of every retention policy.
func (s *Service) RunAll(ctx context.Context) {
	s.pruneEvents(ctx)
	s.recoverOrphanedTasks(ctx)
	if s.feedback != nil {
		s.feedback.UpdateModelParameters(ctx)
	}
}

// pruneEvents deletes outbox rows past the TTL. Listeners that fell this far
// behind cannot catch up from the outbox anyway.
func (s *Service) pruneEvents(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.EventRetention())
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE created_at < $1", cutoff)
	if err != nil {
		slog.Error("Retention: event pruning failed", "error", err)
		return
	}
	if count, err := res.RowsAffected(); err == nil && count > 0 {
		slog.Info("Retention: pruned old events", "count", count)
	}
}

// recoverOrphanedTasks fails in_progress tasks whose newest execution never
// finished and is older than the stale timeout.
func (s *Service) recoverOrphanedTasks(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.StaleTaskAfter())
	execs, err := s.client.TaskExecution.Query().
		Where(
			taskexecution.FinishedAtIsNil(),
			taskexecution.StartedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		slog.Error("Retention: orphan query failed", "error", err)
		return
	}

	for _, exec := range execs {
		task, err := s.client.CodingTask.Get(ctx, exec.TaskID)
		if err != nil {
			slog.Error("Retention: failed to load task for orphaned execution",
				"execution_id", exec.ID, "task_id", exec.TaskID, "error", err)
			continue
		}
		if task.Status != codingtask.StatusInProgress {
			continue
		}

		errMsg := "execution orphaned: no progress since " + exec.StartedAt.Format(time.RFC3339)
		if err := s.client.TaskExecution.UpdateOneID(exec.ID).
			SetSuccess(false).
			SetErrorMessage(errMsg).
			SetFinishedAt(time.Now()).
			Exec(ctx); err != nil {
			slog.Error("Retention: failed to close orphaned execution",
				"execution_id", exec.ID, "error", err)
			continue
		}
		if _, err := s.tasks.Fail(ctx, task.ID, exec.ID, []string{errMsg}); err != nil {
			slog.Error("Retention: failed to fail orphaned task",
				"task_id", task.ID, "execution_id", exec.ID, "error", err)
			continue
		}
		slog.Warn("Retention: recovered orphaned task",
			"task_id", task.ID, "execution_id", exec.ID,
			"started_at", exec.StartedAt)
	}
}
