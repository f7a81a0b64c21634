// Package perf aggregates per-model execution outcomes and answers "which
// model performs best for this kind of task".
package perf

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/ent/modelmetric"
	"github.com/devflow-ai/devflow/pkg/models"
)

// DefaultMinSamples is the bucket floor below which GetBest will not
// recommend a model.
const DefaultMinSamples = 30

// Tracker keeps rolling per-model aggregates in memory and writes them
// through to the model_metrics table. Writes for one model are serialized on
// that model's own lock so unrelated models never contend.
type Tracker struct {
	db         *ent.Client // nil disables persistence
	minSamples int

	mu     sync.Mutex
	states map[string]*modelState
}

type modelState struct {
	mu           sync.Mutex
	metrics      models.ModelPerformanceMetrics
	qualityCount int
}

// NewTracker builds a tracker. db may be nil for in-memory-only use; a
// non-positive minSamples falls back to DefaultMinSamples.
func NewTracker(db *ent.Client, minSamples int) *Tracker {
	if minSamples <= 0 {
		minSamples = DefaultMinSamples
	}
	return &Tracker{
		db:         db,
		minSamples: minSamples,
		states:     make(map[string]*modelState),
	}
}

// RecordExecution folds one finished execution into the model's aggregate and
// persists the new aggregate best-effort.
func (t *Tracker) RecordExecution(ctx context.Context, sample models.ExecutionSample) {
	if sample.Model == "" {
		return
	}
	st := t.state(sample.Model)

	st.mu.Lock()
	m := &st.metrics
	m.Executions++
	if sample.Success {
		m.Successes++
	}
	n := float64(m.Executions)
	m.AvgTokens += (float64(sample.TokensUsed) - m.AvgTokens) / n
	m.AvgCost += (sample.Cost - m.AvgCost) / n
	m.AvgDurationMs += (float64(sample.Duration.Milliseconds()) - m.AvgDurationMs) / n
	if sample.QualityScore != nil {
		st.qualityCount++
		if m.AvgQuality == nil {
			q := *sample.QualityScore
			m.AvgQuality = &q
		} else {
			*m.AvgQuality += (*sample.QualityScore - *m.AvgQuality) / float64(st.qualityCount)
		}
	}

	key := models.BucketKey(sample.TaskType, sample.Complexity)
	b := m.Buckets[key]
	b.Executions++
	if sample.Success {
		b.Successes++
	}
	bn := float64(b.Executions)
	b.AvgCost += (sample.Cost - b.AvgCost) / bn
	b.AvgDurationMs += (float64(sample.Duration.Milliseconds()) - b.AvgDurationMs) / bn
	m.Buckets[key] = b
	m.UpdatedAt = time.Now()

	snapshot := copyMetrics(m)
	st.mu.Unlock()

	t.persist(ctx, snapshot)
}

// Get returns a snapshot of one model's aggregate, nil when unknown.
func (t *Tracker) Get(model string) *models.ModelPerformanceMetrics {
	t.mu.Lock()
	st, ok := t.states[model]
	t.mu.Unlock()
	if !ok {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return copyMetrics(&st.metrics)
}

// GetAll returns snapshots for every tracked model.
func (t *Tracker) GetAll() []*models.ModelPerformanceMetrics {
	t.mu.Lock()
	states := make([]*modelState, 0, len(t.states))
	for _, st := range t.states {
		states = append(states, st)
	}
	t.mu.Unlock()

	out := make([]*models.ModelPerformanceMetrics, 0, len(states))
	for _, st := range states {
		st.mu.Lock()
		out = append(out, copyMetrics(&st.metrics))
		st.mu.Unlock()
	}
	return out
}

// GetBest returns the model with the best record in the (taskType,
// complexity) bucket, or nil when no model has enough samples there.
// Highest success rate wins; ties go to lower mean cost, then lower mean
// duration.
func (t *Tracker) GetBest(taskType models.TaskType, complexity models.Complexity) *models.ModelPerformanceMetrics {
	key := models.BucketKey(taskType, complexity)

	var best *models.ModelPerformanceMetrics
	var bestBucket models.BucketStats
	for _, m := range t.GetAll() {
		b, ok := m.Buckets[key]
		if !ok || b.Executions < t.minSamples {
			continue
		}
		if best == nil || betterBucket(b, bestBucket) {
			best = m
			bestBucket = b
		}
	}
	return best
}

func betterBucket(a, b models.BucketStats) bool {
	if a.SuccessRate() != b.SuccessRate() {
		return a.SuccessRate() > b.SuccessRate()
	}
	if a.AvgCost != b.AvgCost {
		return a.AvgCost < b.AvgCost
	}
	return a.AvgDurationMs < b.AvgDurationMs
}

func (t *Tracker) state(model string) *modelState {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[model]
	if !ok {
		st = &modelState{metrics: models.ModelPerformanceMetrics{
			Model:   model,
			Buckets: make(map[string]models.BucketStats),
		}}
		t.states[model] = st
	}
	return st
}

// persist upserts the aggregate row. Failures are logged, never surfaced;
// the in-memory aggregate is authoritative for the process lifetime.
func (t *Tracker) persist(ctx context.Context, m *models.ModelPerformanceMetrics) {
	if t.db == nil {
		return
	}

	buckets := make(map[string]interface{}, len(m.Buckets))
	for k, v := range m.Buckets {
		buckets[k] = v
	}

	create := t.db.ModelMetric.Create().
		SetID(m.Model).
		SetExecutions(m.Executions).
		SetSuccesses(m.Successes).
		SetAvgTokens(m.AvgTokens).
		SetAvgCost(m.AvgCost).
		SetAvgDurationMs(m.AvgDurationMs).
		SetBuckets(buckets).
		SetUpdatedAt(m.UpdatedAt)
	if m.AvgQuality != nil {
		create.SetAvgQuality(*m.AvgQuality)
	}

	err := create.
		OnConflictColumns(modelmetric.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to persist model metrics", "model", m.Model, "error", err)
	}
}

func copyMetrics(m *models.ModelPerformanceMetrics) *models.ModelPerformanceMetrics {
	out := *m
	out.Buckets = make(map[string]models.BucketStats, len(m.Buckets))
	for k, v := range m.Buckets {
		out.Buckets[k] = v
	}
	if m.AvgQuality != nil {
		q := *m.AvgQuality
		out.AvgQuality = &q
	}
	return &out
}
