package perf

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/models"
)

func sample(model string, success bool, cost float64, dur time.Duration) models.ExecutionSample {
	return models.ExecutionSample{
		Model:      model,
		TaskType:   models.TaskTypeBugFix,
		Complexity: models.ComplexitySimple,
		Success:    success,
		TokensUsed: 1000,
		Cost:       cost,
		Duration:   dur,
	}
}

func record(t *Tracker, s models.ExecutionSample, n int) {
	for range n {
		t.RecordExecution(context.Background(), s)
	}
}

func TestTracker_RollingAverages(t *testing.T) {
	tr := NewTracker(nil, 30)
	tr.RecordExecution(context.Background(), sample("gpt-4o", true, 0.02, 2*time.Second))
	tr.RecordExecution(context.Background(), sample("gpt-4o", false, 0.04, 4*time.Second))

	m := tr.Get("gpt-4o")
	require.NotNil(t, m)
	assert.Equal(t, 2, m.Executions)
	assert.Equal(t, 1, m.Successes)
	assert.InDelta(t, 0.5, m.SuccessRate(), 1e-9)
	assert.InDelta(t, 0.03, m.AvgCost, 1e-9)
	assert.InDelta(t, 3000, m.AvgDurationMs, 1e-9)
	assert.InDelta(t, 1000, m.AvgTokens, 1e-9)

	b := m.Buckets[models.BucketKey(models.TaskTypeBugFix, models.ComplexitySimple)]
	assert.Equal(t, 2, b.Executions)
	assert.Equal(t, 1, b.Successes)
}

func TestTracker_QualityAveragedOnlyWhenPresent(t *testing.T) {
	tr := NewTracker(nil, 30)
	q := 8.0
	s := sample("gpt-4o", true, 0.01, time.Second)
	tr.RecordExecution(context.Background(), s)

	s.QualityScore = &q
	tr.RecordExecution(context.Background(), s)

	m := tr.Get("gpt-4o")
	require.NotNil(t, m.AvgQuality)
	// One rated execution out of two; the unrated one does not dilute it.
	assert.InDelta(t, 8.0, *m.AvgQuality, 1e-9)
}

func TestTracker_GetUnknownModel(t *testing.T) {
	tr := NewTracker(nil, 30)
	assert.Nil(t, tr.Get("nope"))
	assert.Empty(t, tr.GetAll())
}

func TestTracker_GetBestNeedsMinSamples(t *testing.T) {
	tr := NewTracker(nil, 30)
	record(tr, sample("gpt-4o", true, 0.02, time.Second), 29)

	assert.Nil(t, tr.GetBest(models.TaskTypeBugFix, models.ComplexitySimple))

	tr.RecordExecution(context.Background(), sample("gpt-4o", true, 0.02, time.Second))
	best := tr.GetBest(models.TaskTypeBugFix, models.ComplexitySimple)
	require.NotNil(t, best)
	assert.Equal(t, "gpt-4o", best.Model)
}

func TestTracker_GetBestIsPerBucket(t *testing.T) {
	tr := NewTracker(nil, 30)
	record(tr, sample("gpt-4o", true, 0.02, time.Second), 30)

	// Qualified in bug_fix/simple only.
	assert.Nil(t, tr.GetBest(models.TaskTypeFeature, models.ComplexityComplex))
	assert.NotNil(t, tr.GetBest(models.TaskTypeBugFix, models.ComplexitySimple))
}

func TestTracker_GetBestPrefersSuccessRateThenCostThenDuration(t *testing.T) {
	tr := NewTracker(nil, 30)

	// 100% success, expensive.
	record(tr, sample("gpt-4o", true, 0.05, 2*time.Second), 30)
	// 50% success, cheap.
	record(tr, sample("gpt-4o-mini", true, 0.001, time.Second), 15)
	record(tr, sample("gpt-4o-mini", false, 0.001, time.Second), 15)

	best := tr.GetBest(models.TaskTypeBugFix, models.ComplexitySimple)
	require.NotNil(t, best)
	assert.Equal(t, "gpt-4o", best.Model)

	// Equal success rate: the cheaper model wins.
	record(tr, sample("cheap", true, 0.001, 3*time.Second), 30)
	record(tr, sample("fast", true, 0.001, time.Second), 30)
	record(tr, sample("pricey", true, 0.05, time.Second), 30)

	best = tr.GetBest(models.TaskTypeBugFix, models.ComplexitySimple)
	require.NotNil(t, best)
	// cheap/fast/pricey/gpt-4o all at 100%; cost filters to cheap vs fast,
	// duration picks fast.
	assert.Equal(t, "fast", best.Model)
}

func TestTracker_SnapshotsAreIsolated(t *testing.T) {
	tr := NewTracker(nil, 30)
	tr.RecordExecution(context.Background(), sample("gpt-4o", true, 0.02, time.Second))

	m := tr.Get("gpt-4o")
	m.Executions = 999
	m.Buckets["tampered"] = models.BucketStats{Executions: 1}

	fresh := tr.Get("gpt-4o")
	assert.Equal(t, 1, fresh.Executions)
	assert.NotContains(t, fresh.Buckets, "tampered")
}

func TestTracker_ConcurrentRecording(t *testing.T) {
	tr := NewTracker(nil, 30)

	const workers = 8
	const perWorker = 50
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				tr.RecordExecution(context.Background(),
					sample("gpt-4o", (w+i)%2 == 0, 0.01, time.Second))
			}
		}()
	}
	wg.Wait()

	m := tr.Get("gpt-4o")
	require.NotNil(t, m)
	assert.Equal(t, workers*perWorker, m.Executions)
	assert.Equal(t, workers*perWorker/2, m.Successes)
	b := m.Buckets[models.BucketKey(models.TaskTypeBugFix, models.ComplexitySimple)]
	assert.Equal(t, workers*perWorker, b.Executions)
}
