package strategy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
)

const unbalancedOutput = "FILE: pkg/auth/session.go\n```go\npackage auth\n\nfunc SessionOK() bool {\n\treturn true\n```\n"

func TestIterative_SelfCorrectsOnValidationFailure(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: unbalancedOutput, TokensUsed: 1000, Cost: 0.003},
		{Content: goodOutput, TokensUsed: 900, Cost: 0.002},
	}}

	result := NewIterative(client, "gpt-4o-mini", 3, time.Minute).
		Execute(context.Background(), testTask(), nil)

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, 2, result.IterationsUsed)
	assert.Equal(t, 1900, result.TotalTokens)
	assert.InDelta(t, 0.005, result.TotalCost, 1e-9)
	require.Len(t, result.Changes, 1)

	// The second prompt carries the first attempt's validation errors.
	require.Equal(t, 2, client.callCount())
	second := client.requests[1].Messages[1].Content
	assert.Contains(t, second, "previous attempt failed validation")
	assert.Contains(t, second, "unbalanced")
}

func TestIterative_MaxIterationsReached(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: unbalancedOutput, TokensUsed: 100},
		{Content: unbalancedOutput, TokensUsed: 100},
		{Content: unbalancedOutput, TokensUsed: 100},
	}}

	result := NewIterative(client, "gpt-4o-mini", 3, time.Minute).
		Execute(context.Background(), testTask(), nil)

	assert.False(t, result.Success)
	assert.Equal(t, 3, result.IterationsUsed)
	assert.Equal(t, 300, result.TotalTokens)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "Max iterations (3) reached", result.Errors[0])
	assert.Equal(t, 3, client.callCount())
}

func TestIterative_EmptyParseConsumesIteration(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		{Content: "No code needed here.", TokensUsed: 50},
		{Content: goodOutput, TokensUsed: 800},
	}}

	result := NewIterative(client, "gpt-4o-mini", 3, time.Minute).
		Execute(context.Background(), testTask(), nil)

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, 2, result.IterationsUsed)
	assert.Contains(t, client.requests[1].Messages[1].Content, "no code changes in model output")
}

func TestIterative_BudgetExpiry(t *testing.T) {
	client := &scriptedLLM{block: true}

	result := NewIterative(client, "gpt-4o-mini", 3, 20*time.Millisecond).
		Execute(context.Background(), testTask(), nil)

	assert.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[len(result.Errors)-1], "timed out after 20ms")
}

func TestIterative_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &scriptedLLM{block: true}

	result := NewIterative(client, "gpt-4o-mini", 3, time.Minute).
		Execute(ctx, testTask(), nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "cancelled")
}

func TestIterative_Identity(t *testing.T) {
	s := NewIterative(&scriptedLLM{}, "gpt-4o-mini", 0, 0)
	assert.Equal(t, NameIterative, s.Name())
	assert.Equal(t, models.ComplexityMedium, s.SupportsComplexity())
}
