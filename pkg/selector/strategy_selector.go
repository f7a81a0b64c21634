// Package selector decides how a task runs: which execution strategy and
// which model. Strategy selection prefers the ML classifier with a keyword
// heuristic fallback; model selection layers A/B tests over tracked
// performance over static preferences.
package selector

import (
	"context"
	"log/slog"
	"time"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/pkg/strategy"
)

// selectionWarnThreshold flags selections slow enough to hurt request
// latency; the classifier call alone is budgeted at 100 ms.
const selectionWarnThreshold = 100 * time.Millisecond

// classifierClient is the slice of the ML classifier the selector needs.
type classifierClient interface {
	Classify(ctx context.Context, description string) (*models.ClassificationResponse, error)
}

// StrategySelector resolves a task to an execution strategy.
type StrategySelector struct {
	classifier classifierClient
	db         *ent.Client // nil skips persisting resolved classifications
	strategies map[string]strategy.Strategy
	fallback   strategy.Strategy
}

// NewStrategySelector indexes the strategy family by name. The Iterative
// member doubles as the fallback for unknown override names.
func NewStrategySelector(classifier classifierClient, db *ent.Client, strategies ...strategy.Strategy) *StrategySelector {
	s := &StrategySelector{
		classifier: classifier,
		db:         db,
		strategies: make(map[string]strategy.Strategy, len(strategies)),
	}
	for _, st := range strategies {
		s.strategies[st.Name()] = st
		if st.Name() == strategy.NameIterative {
			s.fallback = st
		}
	}
	return s
}

// Select resolves the strategy for a task. A non-empty override short-circuits
// classification; otherwise the classifier's answer is taken at face value,
// falling back to the keyword heuristic when the classifier is unreachable.
// Tasks without a stored classification are updated with the resolved one.
func (s *StrategySelector) Select(ctx context.Context, task *ent.CodingTask, override string) (strategy.Strategy, models.Classification) {
	start := time.Now()
	defer func() {
		if elapsed := time.Since(start); elapsed > selectionWarnThreshold {
			slog.Warn("Strategy selection was slow", "task_id", task.ID, "elapsed", elapsed)
		}
	}()

	if override != "" {
		return s.selectByOverride(task, override)
	}

	cls := s.classify(ctx, task)
	st := s.strategyFor(cls.Complexity)
	s.persistClassification(ctx, task, cls)

	slog.Info("Strategy selected",
		"task_id", task.ID, "strategy", st.Name(),
		"complexity", cls.Complexity, "source", cls.Source)
	return st, cls
}

func (s *StrategySelector) selectByOverride(task *ent.CodingTask, override string) (strategy.Strategy, models.Classification) {
	st, ok := s.strategies[override]
	if !ok {
		slog.Warn("Unknown strategy override, using Iterative",
			"task_id", task.ID, "override", override)
		st = s.fallback
	}

	taskType := models.TaskType(task.Type)
	if taskType == "" {
		taskType = models.TaskTypeFeature
	}
	return st, models.Classification{
		TaskType:   taskType,
		Complexity: st.SupportsComplexity(),
		Confidence: 1.0,
		Source:     "manual",
	}
}

func (s *StrategySelector) classify(ctx context.Context, task *ent.CodingTask) models.Classification {
	if s.classifier != nil {
		resp, err := s.classifier.Classify(ctx, task.Description)
		if err == nil {
			return models.Classification{
				TaskType:   resp.TaskType,
				Complexity: resp.Complexity,
				Confidence: resp.Confidence,
				Source:     "ml",
			}
		}
		slog.Warn("Classifier unavailable, falling back to heuristic",
			"task_id", task.ID, "error", err)
	}
	return classifyHeuristic(task.Title, task.Description)
}

func (s *StrategySelector) strategyFor(complexity models.Complexity) strategy.Strategy {
	var name string
	switch complexity {
	case models.ComplexitySimple:
		name = strategy.NameSingleShot
	case models.ComplexityMedium:
		name = strategy.NameIterative
	case models.ComplexityComplex, models.ComplexityEpic:
		name = strategy.NameMultiAgent
	default:
		name = strategy.NameIterative
	}
	if st, ok := s.strategies[name]; ok {
		return st
	}
	return s.fallback
}

// persistClassification writes the resolved pair onto still-unclassified
// tasks, best-effort.
func (s *StrategySelector) persistClassification(ctx context.Context, task *ent.CodingTask, cls models.Classification) {
	if s.db == nil || task.Complexity != "" {
		return
	}
	err := s.db.CodingTask.UpdateOneID(task.ID).
		SetType(codingtask.Type(cls.TaskType)).
		SetComplexity(codingtask.Complexity(cls.Complexity)).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to persist task classification", "task_id", task.ID, "error", err)
	}
}
