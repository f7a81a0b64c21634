package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/agent"
	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
)

const twoStepPlan = `{"subtasks": [
  {"id": "st-1", "title": "Core", "description": "implement the core", "affected_files": ["pkg/core/core.go"], "estimated_complexity": 5},
  {"id": "st-2", "title": "Wire", "description": "wire it up", "affected_files": ["pkg/api/wire.go"], "estimated_complexity": 3, "depends_on": ["st-1"]}
]}`

const approval = `{"is_approved": true, "issues": [], "severity": 1}`

func coderOutput(path, body string) string {
	return "FILE: " + path + "\n```go\npackage x\n\nfunc " + body + "() {}\n```\n"
}

func newMultiAgent(client llm.Client, maxParallel int) *MultiAgent {
	return NewMultiAgent(
		agent.NewPlanner(client, "gpt-4o"),
		agent.NewCoder(client, "gpt-4o"),
		agent.NewReviewer(client, "gpt-4o"),
		agent.NewTester(client, "gpt-4o"),
		maxParallel,
	)
}

func TestMultiAgent_Pipeline(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: twoStepPlan, TokensUsed: 500, Cost: 0.01},
		{Content: coderOutput("pkg/core/core.go", "Core"), TokensUsed: 1000, Cost: 0.02},
		{Content: coderOutput("pkg/api/wire.go", "Wire"), TokensUsed: 800, Cost: 0.015},
		{Content: approval, TokensUsed: 300, Cost: 0.005},
		{Content: coderOutput("pkg/core/core_test.go", "TestCore"), TokensUsed: 400, Cost: 0.008},
	}}

	result := newMultiAgent(client, 3).Execute(context.Background(), testTask(), nil)
	require.True(t, result.Success, "errors: %v", result.Errors)
	require.Len(t, result.Changes, 3)

	var paths []string
	for _, ch := range result.Changes {
		paths = append(paths, ch.FilePath)
	}
	assert.Contains(t, paths, "pkg/core/core.go")
	assert.Contains(t, paths, "pkg/api/wire.go")
	assert.Contains(t, paths, "pkg/core/core_test.go")

	// Usage accumulates across all five agent calls.
	assert.Equal(t, 3000, result.TotalTokens)
	assert.InDelta(t, 0.058, result.TotalCost, 1e-9)
	assert.Equal(t, 5, client.callCount())
}

func TestMultiAgent_ConflictLastWriteWins(t *testing.T) {
	// st-2 depends on st-1, so completion order is fixed and the second
	// coder's version of the shared file must survive the merge.
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: twoStepPlan},
		{Content: coderOutput("src/util.go", "VersionA")},
		{Content: coderOutput("src/util.go", "VersionB")},
		{Content: approval},
		{Content: coderOutput("src/util_test.go", "TestUtil")},
	}}

	result := newMultiAgent(client, 3).Execute(context.Background(), testTask(), nil)
	require.True(t, result.Success, "errors: %v", result.Errors)

	var utilChanges []models.CodeChange
	for _, ch := range result.Changes {
		if ch.FilePath == "src/util.go" {
			utilChanges = append(utilChanges, ch)
		}
	}
	require.Len(t, utilChanges, 1)
	assert.Contains(t, utilChanges[0].Content, "VersionB")
}

func TestMultiAgent_IndependentSubtasksRunInOneWave(t *testing.T) {
	plan := `{"subtasks": [
  {"id": "st-1", "title": "A", "description": "part a", "estimated_complexity": 3},
  {"id": "st-2", "title": "B", "description": "part b", "estimated_complexity": 3}
]}`
	// No dependency between the coders, so either may take either response;
	// both paths must still land in the merge.
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: plan},
		{Content: coderOutput("pkg/a/a.go", "A")},
		{Content: coderOutput("pkg/b/b.go", "B")},
		{Content: approval},
		{Content: coderOutput("pkg/a/a_test.go", "TestA")},
	}}

	result := newMultiAgent(client, 2).Execute(context.Background(), testTask(), nil)
	require.True(t, result.Success, "errors: %v", result.Errors)

	var paths []string
	for _, ch := range result.Changes {
		paths = append(paths, ch.FilePath)
	}
	assert.Contains(t, paths, "pkg/a/a.go")
	assert.Contains(t, paths, "pkg/b/b.go")
}

func TestMultiAgent_PlannerFailureIsFatal(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: "not a plan at all", TokensUsed: 200},
	}}

	result := newMultiAgent(client, 3).Execute(context.Background(), testTask(), nil)
	assert.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "planner failed", result.Errors[0])
	// Planner usage still counted, and nothing downstream ran.
	assert.Equal(t, 200, result.TotalTokens)
	assert.Equal(t, 1, client.callCount())
}

func TestMultiAgent_CoderFailureIsFatal(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: twoStepPlan},
		{Content: "I could not produce code for this."},
	}}

	result := newMultiAgent(client, 3).Execute(context.Background(), testTask(), nil)
	assert.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "subtask st-1 failed")
	// The dependent subtask never ran.
	assert.Equal(t, 2, client.callCount())
}

func TestMultiAgent_ReviewRejectionIsFatal(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: twoStepPlan},
		{Content: coderOutput("pkg/core/core.go", "Core")},
		{Content: coderOutput("pkg/api/wire.go", "Wire")},
		{Content: `{"is_approved": false, "issues": ["SQL built by string concatenation"], "severity": 5}`},
	}}

	result := newMultiAgent(client, 3).Execute(context.Background(), testTask(), nil)
	assert.False(t, result.Success)
	require.GreaterOrEqual(t, len(result.Errors), 2)
	assert.Contains(t, result.Errors[0], "review rejected (severity 5)")
	assert.Contains(t, result.Errors, "SQL built by string concatenation")
	// No tester call after rejection.
	assert.Equal(t, 4, client.callCount())
}

func TestMultiAgent_TesterFailureIsNotFatal(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: twoStepPlan},
		{Content: coderOutput("pkg/core/core.go", "Core")},
		{Content: coderOutput("pkg/api/wire.go", "Wire")},
		{Content: approval},
		{Content: "no tests today"},
	}}

	result := newMultiAgent(client, 3).Execute(context.Background(), testTask(), nil)
	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Len(t, result.Changes, 2)
}

func TestMultiAgent_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &scriptedLLM{block: true}

	result := newMultiAgent(client, 3).Execute(ctx, testTask(), nil)
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "cancelled")
}

func TestMultiAgent_Identity(t *testing.T) {
	s := newMultiAgent(&scriptedLLM{}, 0)
	assert.Equal(t, NameMultiAgent, s.Name())
	assert.Equal(t, models.ComplexityComplex, s.SupportsComplexity())
	assert.Equal(t, 3, s.maxParallel)
}

func TestMergeLastWriteWins(t *testing.T) {
	results := []models.AgentResult{
		{AgentName: "coder:st-1", Changes: []models.CodeChange{
			{FilePath: "a.go", Content: "one"},
			{FilePath: "b.go", Content: "two"},
		}},
		{AgentName: "coder:st-2", Changes: []models.CodeChange{
			{FilePath: "a.go", Content: "three"},
		}},
	}

	merged, conflicts := mergeLastWriteWins(results)
	require.Len(t, merged, 2)
	assert.Equal(t, "three", merged[0].Content)
	assert.Equal(t, "two", merged[1].Content)
	require.Len(t, conflicts, 1)
	assert.Contains(t, conflicts[0], "a.go")
}
