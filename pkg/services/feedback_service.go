package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/feedback"
	"github.com/devflow-ai/devflow/pkg/models"
)

// defaultRetrainMinSamples gates the classifier retrain trigger.
const defaultRetrainMinSamples = 1000

// significanceMargin marks a procedure pattern significant when its success
// rate departs from a coin flip by more than this.
const significanceMargin = 0.2

// ProcedureMemory is an optional outbound capability: a memory subsystem
// that keeps per-procedure outcome counters. A nil implementation is legal.
type ProcedureMemory interface {
	RecordOutcome(ctx context.Context, procedureID string, success bool) error
}

// RetrainTrigger is the slice of the classifier client the feedback service
// needs.
type RetrainTrigger interface {
	TriggerRetrain(ctx context.Context) error
}

// FeedbackService records user feedback and turns accumulated feedback into
// retraining signals.
type FeedbackService struct {
	client            *ent.Client
	memory            ProcedureMemory // nil disables memory updates
	classifier        RetrainTrigger  // nil disables retrain triggers
	retrainMinSamples int
}

// NewFeedbackService creates a FeedbackService. memory and classifier may be
// nil; a non-positive minSamples falls back to the default.
func NewFeedbackService(client *ent.Client, memory ProcedureMemory, classifier RetrainTrigger, minSamples int) *FeedbackService {
	if minSamples <= 0 {
		minSamples = defaultRetrainMinSamples
	}
	return &FeedbackService{
		client:            client,
		memory:            memory,
		classifier:        classifier,
		retrainMinSamples: minSamples,
	}
}

// Record persists one piece of feedback and forwards the outcome to the
// procedure memory when the feedback names a procedure.
func (s *FeedbackService) Record(ctx context.Context, req models.RecordFeedbackRequest) (*ent.Feedback, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	switch req.Sentiment {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		return nil, NewValidationError("sentiment", "must be positive, negative, or neutral")
	}
	if req.Rating < 0 || req.Rating > 1 {
		return nil, NewValidationError("rating", "must be in [0,1]")
	}

	create := s.client.Feedback.Create().
		SetID(uuid.NewString()).
		SetTaskID(req.TaskID).
		SetUserID(req.UserID).
		SetSentiment(feedback.Sentiment(req.Sentiment)).
		SetRating(req.Rating)
	if req.ExecutionID != "" {
		create.SetExecutionID(req.ExecutionID)
	}
	if req.Reason != "" {
		create.SetReason(req.Reason)
	}
	if req.Context != nil {
		create.SetContext(req.Context)
	}

	fb, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("task %s: %w", req.TaskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}

	if procID := procedureID(req.Context); procID != "" && s.memory != nil {
		if err := s.memory.RecordOutcome(ctx, procID, req.Sentiment == models.SentimentPositive); err != nil {
			slog.Warn("Failed to update procedure memory",
				"task_id", req.TaskID, "procedure_id", procID, "error", err)
		}
	}
	return fb, nil
}

// AnalyzePatterns groups one task's feedback by procedure and computes
// per-procedure success rates. A pattern is significant when its rate departs
// from 0.5 by more than the margin.
func (s *FeedbackService) AnalyzePatterns(ctx context.Context, taskID string) (*models.PatternAnalysis, error) {
	rows, err := s.client.Feedback.Query().
		Where(feedback.TaskIDEQ(taskID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}

	analysis := &models.PatternAnalysis{TaskID: taskID, Samples: len(rows)}
	analysis.Patterns = patternsFrom(rows)
	return analysis, nil
}

// UpdateModelParameters triggers a classifier retrain when the accumulated
// feedback is both large enough and carries a significant pattern. Failures
// are logged, never propagated.
func (s *FeedbackService) UpdateModelParameters(ctx context.Context) bool {
	if s.classifier == nil {
		return false
	}

	rows, err := s.client.Feedback.Query().All(ctx)
	if err != nil {
		slog.Warn("Failed to load feedback for retrain check", "error", err)
		return false
	}
	if len(rows) < s.retrainMinSamples {
		return false
	}

	var significant bool
	for _, p := range patternsFrom(rows) {
		if p.Significant {
			significant = true
			break
		}
	}
	if !significant {
		return false
	}

	if err := s.classifier.TriggerRetrain(ctx); err != nil {
		slog.Warn("Classifier retrain trigger failed", "error", err)
		return false
	}
	slog.Info("Triggered classifier retrain", "samples", len(rows))
	return true
}

// patternsFrom aggregates feedback rows by procedure id.
func patternsFrom(rows []*ent.Feedback) []models.ProcedurePattern {
	type counter struct {
		samples   int
		successes int
	}
	counters := make(map[string]*counter)
	var order []string
	for _, fb := range rows {
		procID := procedureID(fb.Context)
		if procID == "" {
			continue
		}
		c, ok := counters[procID]
		if !ok {
			c = &counter{}
			counters[procID] = c
			order = append(order, procID)
		}
		c.samples++
		if fb.Sentiment == feedback.SentimentPositive {
			c.successes++
		}
	}

	patterns := make([]models.ProcedurePattern, 0, len(order))
	for _, procID := range order {
		c := counters[procID]
		rate := float64(c.successes) / float64(c.samples)
		patterns = append(patterns, models.ProcedurePattern{
			ProcedureID: procID,
			Samples:     c.samples,
			SuccessRate: rate,
			Significant: math.Abs(rate-0.5) > significanceMargin,
		})
	}
	return patterns
}

func procedureID(context map[string]any) string {
	if context == nil {
		return ""
	}
	id, _ := context["procedure_id"].(string)
	return id
}
