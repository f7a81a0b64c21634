package selector

import (
	"context"
	"log/slog"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/abtest"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/pkg/perf"
	"github.com/devflow-ai/devflow/pkg/registry"
)

// abEngine is the slice of the A/B engine the selector needs.
type abEngine interface {
	GetActiveTest(ctx context.Context, taskType models.TaskType) (*ent.ABTest, error)
}

// perfTracker is the slice of the performance tracker the selector needs.
type perfTracker interface {
	GetBest(taskType models.TaskType, complexity models.Complexity) *models.ModelPerformanceMetrics
}

// modelRegistry is the slice of the registry the selector needs.
type modelRegistry interface {
	List(ctx context.Context) ([]models.ModelInfo, error)
	IsAvailable(ctx context.Context, name string) bool
}

// ModelSelector picks the model for one execution. Precedence: active A/B
// test, then tracked performance, then a per-complexity preference list,
// then the safe default.
type ModelSelector struct {
	registry     modelRegistry
	tracker      perfTracker
	ab           abEngine // nil disables A/B assignment
	defaultModel string
}

// NewModelSelector builds the selector. ab may be nil.
func NewModelSelector(reg *registry.Registry, tracker *perf.Tracker, ab *abtest.Engine, defaultModel string) *ModelSelector {
	s := &ModelSelector{registry: reg, tracker: tracker, defaultModel: defaultModel}
	if ab != nil {
		s.ab = ab
	}
	return s
}

// preferenceFor is the static per-complexity preference order, strongest
// first.
func preferenceFor(complexity models.Complexity) []string {
	switch complexity {
	case models.ComplexitySimple:
		return []string{"gpt-4o-mini", "gpt-3.5-turbo", "gpt-4o"}
	case models.ComplexityMedium:
		return []string{"gpt-4o-mini", "gpt-4o", "gpt-4-turbo"}
	default:
		return []string{"gpt-4o", "gpt-4-turbo", "gpt-4o-mini"}
	}
}

// SelectBestModel picks the model for one request. requestID keys the sticky
// A/B assignment; pass the execution id. A missing classification is filled
// in from the description so callers ahead of the classifier still get a
// profile-appropriate pick.
func (s *ModelSelector) SelectBestModel(ctx context.Context, description string, taskType models.TaskType, complexity models.Complexity, requestID string) *models.ModelSelection {
	if taskType == "" || complexity == "" {
		cls := classifyHeuristic("", description)
		if taskType == "" {
			taskType = cls.TaskType
		}
		if complexity == "" {
			complexity = cls.Complexity
		}
	}

	if sel := s.selectFromABTest(ctx, taskType, requestID); sel != nil {
		s.fillAlternatives(ctx, sel)
		return sel
	}

	if best := s.tracker.GetBest(taskType, complexity); best != nil && s.registry.IsAvailable(ctx, best.Model) {
		bucket := best.Buckets[models.BucketKey(taskType, complexity)]
		sel := &models.ModelSelection{
			Model:      best.Model,
			Reason:     "best tracked performance for this task profile",
			Confidence: bucket.SuccessRate(),
		}
		s.fillAlternatives(ctx, sel)
		return sel
	}

	for _, name := range preferenceFor(complexity) {
		if s.registry.IsAvailable(ctx, name) {
			sel := &models.ModelSelection{
				Model:      name,
				Reason:     "complexity preference",
				Confidence: 0.6,
			}
			s.fillAlternatives(ctx, sel)
			return sel
		}
	}

	slog.Warn("No preferred model available, using safe default",
		"default", s.defaultModel, "complexity", complexity)
	sel := &models.ModelSelection{
		Model:      s.defaultModel,
		Reason:     "safe default",
		Confidence: 0.0,
	}
	s.fillAlternatives(ctx, sel)
	return sel
}

func (s *ModelSelector) selectFromABTest(ctx context.Context, taskType models.TaskType, requestID string) *models.ModelSelection {
	if s.ab == nil {
		return nil
	}
	test, err := s.ab.GetActiveTest(ctx, taskType)
	if err != nil {
		slog.Warn("A/B test lookup failed, continuing without it", "error", err)
		return nil
	}
	if test == nil {
		return nil
	}
	model, inTest := abtest.SelectVariant(test, requestID)
	if !inTest {
		// Out-of-traffic requests see the control model but are not part of
		// the experiment, so no sample is recorded for them.
		return &models.ModelSelection{
			Model:      model,
			Reason:     "A/B test control",
			Confidence: 0.5,
		}
	}
	return &models.ModelSelection{
		Model:      model,
		Reason:     "active A/B test variant",
		Confidence: 0.5,
		IsABTest:   true,
		ABTestID:   test.ID,
	}
}

// fillAlternatives lists up to three other available models.
func (s *ModelSelector) fillAlternatives(ctx context.Context, sel *models.ModelSelection) {
	all, err := s.registry.List(ctx)
	if err != nil {
		return
	}
	for _, m := range all {
		if len(sel.Alternatives) == 3 {
			break
		}
		if m.Available && m.Name != sel.Model {
			sel.Alternatives = append(sel.Alternatives, m.Name)
		}
	}
}
