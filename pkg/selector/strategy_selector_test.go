package selector

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/pkg/strategy"
)

type stubStrategy struct {
	name       string
	complexity models.Complexity
}

func (s *stubStrategy) Name() string                          { return s.name }
func (s *stubStrategy) SupportsComplexity() models.Complexity { return s.complexity }
func (s *stubStrategy) Execute(context.Context, *ent.CodingTask, *models.TaskExecutionContext) *strategy.ExecutionResult {
	return &strategy.ExecutionResult{}
}

type stubClassifier struct {
	resp  *models.ClassificationResponse
	err   error
	calls int
}

func (c *stubClassifier) Classify(context.Context, string) (*models.ClassificationResponse, error) {
	c.calls++
	return c.resp, c.err
}

func strategyFamily() []strategy.Strategy {
	return []strategy.Strategy{
		&stubStrategy{strategy.NameSingleShot, models.ComplexitySimple},
		&stubStrategy{strategy.NameIterative, models.ComplexityMedium},
		&stubStrategy{strategy.NameMultiAgent, models.ComplexityComplex},
	}
}

func selectorTask(title, description string) *ent.CodingTask {
	return &ent.CodingTask{ID: "task-1", Title: title, Description: description}
}

func TestStrategySelector_ClassifierResultTakenAtFaceValue(t *testing.T) {
	cls := &stubClassifier{resp: &models.ClassificationResponse{
		TaskType:   models.TaskTypeFeature,
		Complexity: models.ComplexityComplex,
		Confidence: 0.91,
	}}
	s := NewStrategySelector(cls, nil, strategyFamily()...)

	st, c := s.Select(context.Background(), selectorTask("Redesign storage", "split the blob store"), "")
	assert.Equal(t, strategy.NameMultiAgent, st.Name())
	assert.Equal(t, "ml", c.Source)
	assert.Equal(t, models.ComplexityComplex, c.Complexity)
	assert.InDelta(t, 0.91, c.Confidence, 1e-9)
}

func TestStrategySelector_HeuristicFallbackWhenClassifierDown(t *testing.T) {
	cls := &stubClassifier{err: errors.New("connection refused")}
	s := NewStrategySelector(cls, nil, strategyFamily()...)

	st, c := s.Select(context.Background(), selectorTask("Fix typo", "fix a typo in the readme"), "")
	assert.Equal(t, strategy.NameSingleShot, st.Name())
	assert.Equal(t, "heuristic", c.Source)
	assert.Equal(t, models.ComplexitySimple, c.Complexity)
	assert.Equal(t, 1, cls.calls)
}

func TestStrategySelector_OverrideSkipsClassifier(t *testing.T) {
	cls := &stubClassifier{}
	s := NewStrategySelector(cls, nil, strategyFamily()...)

	st, c := s.Select(context.Background(), selectorTask("Anything", "whatever"), strategy.NameMultiAgent)
	assert.Equal(t, strategy.NameMultiAgent, st.Name())
	assert.Equal(t, "manual", c.Source)
	assert.Zero(t, cls.calls)
}

func TestStrategySelector_UnknownOverrideFallsBackToIterative(t *testing.T) {
	cls := &stubClassifier{}
	s := NewStrategySelector(cls, nil, strategyFamily()...)

	st, c := s.Select(context.Background(), selectorTask("Anything", "whatever"), "Turbo")
	assert.Equal(t, strategy.NameIterative, st.Name())
	assert.Equal(t, "manual", c.Source)
	assert.Zero(t, cls.calls)
}

func TestStrategySelector_ComplexityMapping(t *testing.T) {
	cases := []struct {
		complexity models.Complexity
		strategy   string
	}{
		{models.ComplexitySimple, strategy.NameSingleShot},
		{models.ComplexityMedium, strategy.NameIterative},
		{models.ComplexityComplex, strategy.NameMultiAgent},
		{models.ComplexityEpic, strategy.NameMultiAgent},
	}
	for _, tc := range cases {
		cls := &stubClassifier{resp: &models.ClassificationResponse{
			TaskType:   models.TaskTypeFeature,
			Complexity: tc.complexity,
			Confidence: 0.8,
		}}
		s := NewStrategySelector(cls, nil, strategyFamily()...)
		st, _ := s.Select(context.Background(), selectorTask("t", "d"), "")
		assert.Equal(t, tc.strategy, st.Name(), "complexity %s", tc.complexity)
	}
}

func TestClassifyHeuristic(t *testing.T) {
	long := strings.Repeat("word ", 120)
	medium := strings.Repeat("word ", 40)

	cases := []struct {
		name        string
		title, desc string
		complexity  models.Complexity
		taskType    models.TaskType
	}{
		{"complex keyword", "Architecture overhaul", medium, models.ComplexityComplex, models.TaskTypeFeature},
		{"refactor keyword", "Clean up", "refactor the session layer " + medium, models.ComplexityComplex, models.TaskTypeRefactor},
		{"long description", "Big one", long, models.ComplexityComplex, models.TaskTypeFeature},
		{"simple keyword", "Quick change", "a quick rename " + medium, models.ComplexitySimple, models.TaskTypeFeature},
		{"short description", "Rename", "rename the flag", models.ComplexitySimple, models.TaskTypeFeature},
		{"default medium", "Add endpoint", "add a paginated listing endpoint " + medium, models.ComplexityMedium, models.TaskTypeFeature},
		{"bug type", "Crash on login", "users hit a crash when the cookie expires " + medium, models.ComplexityMedium, models.TaskTypeBugFix},
		{"docs type", "Update readme", "document the new env vars " + medium, models.ComplexityMedium, models.TaskTypeDocumentation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := classifyHeuristic(tc.title, tc.desc)
			assert.Equal(t, tc.complexity, c.Complexity)
			assert.Equal(t, tc.taskType, c.TaskType)
			assert.Equal(t, "heuristic", c.Source)
			require.InDelta(t, 0.5, c.Confidence, 1e-9)
		})
	}
}
