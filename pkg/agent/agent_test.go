package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
)

// scriptedLLM returns queued responses in order, then errors.
type scriptedLLM struct {
	responses []*llm.Response
	err       error
	requests  []llm.Request
}

func (s *scriptedLLM) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) == 0 {
		return nil, errors.New("no scripted response left")
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func testTask() *ent.CodingTask {
	return &ent.CodingTask{
		ID:          "task-1",
		UserID:      "user-1",
		Title:       "Add rate limiting",
		Description: "Add per-user rate limiting to the API gateway",
	}
}

func TestPlanner_ValidPlan(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content: `Here is the plan:
{"subtasks": [
  {"id": "st-1", "title": "Limiter core", "description": "token bucket", "affected_files": ["limiter.go"], "estimated_complexity": 4},
  {"id": "st-2", "title": "Wire middleware", "description": "hook into gateway", "affected_files": ["middleware.go"], "estimated_complexity": 3, "depends_on": ["st-1"]}
]}`,
		TokensUsed: 800,
		Cost:       0.002,
	}}}

	result, plan := NewPlanner(client, "gpt-4o").Plan(context.Background(), testTask(), nil)
	require.True(t, result.Success, "errors: %v", result.Errors)
	require.NotNil(t, plan)
	assert.Len(t, plan.SubTasks, 2)
	assert.Equal(t, []string{"st-1"}, plan.SubTasks[1].DependsOn)
	assert.Equal(t, 800, result.TokensUsed)
	assert.InDelta(t, 0.002, result.Cost, 1e-9)
}

func TestPlanner_RejectsSingleSubtask(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content:    `{"subtasks": [{"id": "st-1", "title": "All of it", "description": "everything", "estimated_complexity": 9}]}`,
		TokensUsed: 100,
	}}}

	result, plan := NewPlanner(client, "gpt-4o").Plan(context.Background(), testTask(), nil)
	assert.False(t, result.Success)
	assert.Nil(t, plan)
	// Usage is still accounted on failure.
	assert.Equal(t, 100, result.TokensUsed)
}

func TestPlanner_RejectsCyclicPlan(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content: `{"subtasks": [
  {"id": "st-1", "title": "a", "description": "a", "estimated_complexity": 2, "depends_on": ["st-2"]},
  {"id": "st-2", "title": "b", "description": "b", "estimated_complexity": 2, "depends_on": ["st-1"]}
]}`,
	}}}

	result, plan := NewPlanner(client, "gpt-4o").Plan(context.Background(), testTask(), nil)
	assert.False(t, result.Success)
	assert.Nil(t, plan)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cycle")
}

func TestPlanner_LLMFailure(t *testing.T) {
	client := &scriptedLLM{err: llm.ErrProviderUnavailable}

	result, plan := NewPlanner(client, "gpt-4o").Plan(context.Background(), testTask(), nil)
	assert.False(t, result.Success)
	assert.Nil(t, plan)
}

func TestCoder_ParsesChanges(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content:    "FILE: limiter.go\n```go\npackage gateway\n```\n",
		TokensUsed: 500,
		Cost:       0.001,
	}}}

	st := models.SubTask{ID: "st-1", Title: "Limiter core", Description: "token bucket", AffectedFiles: []string{"limiter.go"}}
	result := NewCoder(client, "gpt-4o-mini").Implement(context.Background(), st, nil)

	require.True(t, result.Success, "errors: %v", result.Errors)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "limiter.go", result.Changes[0].FilePath)
	assert.Equal(t, "coder:st-1", result.AgentName)
}

func TestCoder_NoChangesIsFailure(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content:    "I cannot implement this subtask.",
		TokensUsed: 50,
	}}}

	result := NewCoder(client, "gpt-4o-mini").Implement(context.Background(), models.SubTask{ID: "st-1"}, nil)
	assert.False(t, result.Success)
	assert.Equal(t, 50, result.TokensUsed)
}

func TestReviewer_ParsesVerdict(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content:    "```json\n{\"is_approved\": false, \"issues\": [\"sql injection in query builder\"], \"severity\": 5}\n```",
		TokensUsed: 300,
	}}}

	result, review := NewReviewer(client, "gpt-4o").Review(context.Background(), []models.CodeChange{
		{FilePath: "q.go", Language: "go", Content: "package q"},
	})
	require.True(t, result.Success, "errors: %v", result.Errors)
	require.NotNil(t, review)
	assert.False(t, review.IsApproved)
	assert.Equal(t, 5, review.Severity)
	require.Len(t, review.Issues, 1)
}

func TestReviewer_SeverityOutOfRange(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content: `{"is_approved": true, "severity": 9}`,
	}}}

	result, review := NewReviewer(client, "gpt-4o").Review(context.Background(), nil)
	assert.False(t, result.Success)
	assert.Nil(t, review)
}

func TestTester_ProducesTestFiles(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content:    "FILE: limiter_test.go\n```go\npackage gateway\n```\n",
		TokensUsed: 400,
	}}}

	result := NewTester(client, "gpt-4o").GenerateTests(context.Background(), []models.CodeChange{
		{FilePath: "limiter.go", Language: "go", Content: "package gateway"},
	})
	require.True(t, result.Success)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "limiter_test.go", result.Changes[0].FilePath)
}

func TestTester_FailureCarriesUsage(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content:    "No tests needed.",
		TokensUsed: 20,
		Cost:       0.0001,
	}}}

	result := NewTester(client, "gpt-4o").GenerateTests(context.Background(), nil)
	assert.False(t, result.Success)
	assert.Equal(t, 20, result.TokensUsed)
	assert.InDelta(t, 0.0001, result.Cost, 1e-9)
}
