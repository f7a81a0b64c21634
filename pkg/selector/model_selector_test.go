package selector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/models"
)

type stubRegistry struct {
	available []string
}

func (r *stubRegistry) List(context.Context) ([]models.ModelInfo, error) {
	out := make([]models.ModelInfo, 0, len(r.available))
	for _, name := range r.available {
		out = append(out, models.ModelInfo{Name: name, Available: true})
	}
	return out, nil
}

func (r *stubRegistry) IsAvailable(_ context.Context, name string) bool {
	for _, n := range r.available {
		if n == name {
			return true
		}
	}
	return false
}

type stubTracker struct {
	best *models.ModelPerformanceMetrics
}

func (t *stubTracker) GetBest(models.TaskType, models.Complexity) *models.ModelPerformanceMetrics {
	return t.best
}

type stubAB struct {
	test *ent.ABTest
	err  error
}

func (a *stubAB) GetActiveTest(context.Context, models.TaskType) (*ent.ABTest, error) {
	return a.test, a.err
}

func tracked(model string, successes, executions int) *models.ModelPerformanceMetrics {
	key := models.BucketKey(models.TaskTypeBugFix, models.ComplexitySimple)
	return &models.ModelPerformanceMetrics{
		Model: model,
		Buckets: map[string]models.BucketStats{
			key: {Executions: executions, Successes: successes},
		},
	}
}

func newSelector(reg modelRegistry, tr perfTracker, ab abEngine) *ModelSelector {
	return &ModelSelector{registry: reg, tracker: tr, ab: ab, defaultModel: "gpt-4o-mini"}
}

func TestModelSelector_ABTestWins(t *testing.T) {
	ends := time.Now().Add(time.Hour)
	ab := &stubAB{test: &ent.ABTest{
		ID:             "test-1",
		ModelA:         "gpt-4o",
		ModelB:         "gpt-4o-mini",
		TrafficPercent: 100,
		MinSamples:     30,
		EndsAt:         &ends,
	}}
	s := newSelector(
		&stubRegistry{available: []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo", "gpt-3.5-turbo"}},
		&stubTracker{best: tracked("gpt-4-turbo", 40, 40)},
		ab,
	)

	sel := s.SelectBestModel(context.Background(), "", models.TaskTypeBugFix, models.ComplexitySimple, "exec-1")
	require.True(t, sel.IsABTest)
	assert.Equal(t, "test-1", sel.ABTestID)
	assert.InDelta(t, 0.5, sel.Confidence, 1e-9)
	assert.Contains(t, []string{"gpt-4o", "gpt-4o-mini"}, sel.Model)
	assert.Len(t, sel.Alternatives, 3)
	assert.NotContains(t, sel.Alternatives, sel.Model)
}

func TestModelSelector_TrackerBestWhenNoTest(t *testing.T) {
	s := newSelector(
		&stubRegistry{available: []string{"gpt-4o", "gpt-4-turbo"}},
		&stubTracker{best: tracked("gpt-4-turbo", 36, 40)},
		&stubAB{},
	)

	sel := s.SelectBestModel(context.Background(), "", models.TaskTypeBugFix, models.ComplexitySimple, "exec-1")
	assert.Equal(t, "gpt-4-turbo", sel.Model)
	assert.False(t, sel.IsABTest)
	assert.InDelta(t, 0.9, sel.Confidence, 1e-9)
}

func TestModelSelector_TrackerBestMustBeInRegistry(t *testing.T) {
	s := newSelector(
		&stubRegistry{available: []string{"gpt-4o-mini"}},
		&stubTracker{best: tracked("retired-model", 40, 40)},
		&stubAB{},
	)

	sel := s.SelectBestModel(context.Background(), "", models.TaskTypeBugFix, models.ComplexitySimple, "exec-1")
	assert.Equal(t, "gpt-4o-mini", sel.Model)
	assert.InDelta(t, 0.6, sel.Confidence, 1e-9)
}

func TestModelSelector_PreferenceListPerComplexity(t *testing.T) {
	s := newSelector(
		&stubRegistry{available: []string{"gpt-4o", "gpt-4o-mini"}},
		&stubTracker{},
		&stubAB{},
	)

	simple := s.SelectBestModel(context.Background(), "", models.TaskTypeBugFix, models.ComplexitySimple, "exec-1")
	assert.Equal(t, "gpt-4o-mini", simple.Model)

	complexSel := s.SelectBestModel(context.Background(), "", models.TaskTypeFeature, models.ComplexityComplex, "exec-1")
	assert.Equal(t, "gpt-4o", complexSel.Model)
}

func TestModelSelector_SafeDefaultWhenNothingAvailable(t *testing.T) {
	s := newSelector(&stubRegistry{}, &stubTracker{}, &stubAB{})

	sel := s.SelectBestModel(context.Background(), "", models.TaskTypeBugFix, models.ComplexitySimple, "exec-1")
	assert.Equal(t, "gpt-4o-mini", sel.Model)
	assert.Zero(t, sel.Confidence)
	assert.Empty(t, sel.Alternatives)
}

func TestModelSelector_ABLookupFailureFallsThrough(t *testing.T) {
	s := newSelector(
		&stubRegistry{available: []string{"gpt-4o-mini"}},
		&stubTracker{},
		&stubAB{err: context.DeadlineExceeded},
	)

	sel := s.SelectBestModel(context.Background(), "", models.TaskTypeBugFix, models.ComplexitySimple, "exec-1")
	assert.Equal(t, "gpt-4o-mini", sel.Model)
	assert.False(t, sel.IsABTest)
}

func TestModelSelector_OutOfTrafficRequestGetsControl(t *testing.T) {
	ab := &stubAB{test: &ent.ABTest{
		ID:             "test-1",
		ModelA:         "gpt-4o",
		ModelB:         "gpt-4o-mini",
		TrafficPercent: 0,
	}}
	s := newSelector(
		&stubRegistry{available: []string{"gpt-4o-mini"}},
		&stubTracker{},
		ab,
	)

	// Non-test traffic sees model A as the control but carries no test
	// attribution, so nothing is recorded against the experiment.
	sel := s.SelectBestModel(context.Background(), "", models.TaskTypeBugFix, models.ComplexitySimple, "exec-1")
	assert.Equal(t, "gpt-4o", sel.Model)
	assert.False(t, sel.IsABTest)
	assert.Empty(t, sel.ABTestID)
}

func TestModelSelector_ClassifiesFromDescriptionWhenUnclassified(t *testing.T) {
	s := newSelector(
		&stubRegistry{available: []string{"gpt-4o", "gpt-4o-mini"}},
		&stubTracker{},
		&stubAB{},
	)

	// "rewrite" marks the description complex, which prefers the large model.
	sel := s.SelectBestModel(context.Background(),
		"rewrite the storage layer around the new outbox schema", "", "", "exec-1")
	assert.Equal(t, "gpt-4o", sel.Model)
}
