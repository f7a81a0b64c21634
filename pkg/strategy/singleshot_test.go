package strategy

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
)

// scriptedLLM hands out queued responses in call order. Safe for parallel
// callers. With block set it waits for context cancellation instead.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []*llm.Response
	err       error
	block     bool
	requests  []llm.Request
}

func (s *scriptedLLM) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
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

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func testTask() *ent.CodingTask {
	return &ent.CodingTask{
		ID:          "task-1",
		UserID:      "user-1",
		Title:       "Fix login crash",
		Description: "Null pointer when the session cookie is missing",
	}
}

const goodOutput = "FILE: pkg/auth/session.go\n```go\npackage auth\n\nfunc SessionOK() bool {\n\treturn true\n}\n```\n"

func TestSingleShot_Success(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content:    goodOutput,
		TokensUsed: 1200,
		Cost:       0.004,
	}}}

	result := NewSingleShot(client, "gpt-4o-mini").Execute(context.Background(), testTask(), nil)
	require.True(t, result.Success, "errors: %v", result.Errors)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "pkg/auth/session.go", result.Changes[0].FilePath)
	assert.Equal(t, "go", result.Changes[0].Language)
	assert.Equal(t, 1200, result.TotalTokens)
	assert.InDelta(t, 0.004, result.TotalCost, 1e-9)
	assert.Equal(t, 1, result.IterationsUsed)
	assert.Equal(t, 1, client.callCount())
}

func TestSingleShot_UsesContextModel(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{Content: goodOutput}}}
	execCtx := &models.TaskExecutionContext{Model: "gpt-4o"}

	NewSingleShot(client, "gpt-4o-mini").Execute(context.Background(), testTask(), execCtx)
	require.Equal(t, 1, client.callCount())
	assert.Equal(t, "gpt-4o", client.requests[0].Model)
}

func TestSingleShot_NoChangesFails(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{Content: "I would suggest refactoring the handler."}}}

	result := NewSingleShot(client, "gpt-4o-mini").Execute(context.Background(), testTask(), nil)
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "no code changes in model output")
}

func TestSingleShot_ValidationFailureIsFinal(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{{
		Content: "FILE: /etc/passwd\n```\nroot::0:0\n```\n",
	}}}

	result := NewSingleShot(client, "gpt-4o-mini").Execute(context.Background(), testTask(), nil)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)
	// No retry on validation failure.
	assert.Equal(t, 1, client.callCount())
}

func TestSingleShot_LLMError(t *testing.T) {
	client := &scriptedLLM{err: llm.ErrProviderUnavailable}

	result := NewSingleShot(client, "gpt-4o-mini").Execute(context.Background(), testTask(), nil)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "llm call failed")
}

func TestSingleShot_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &scriptedLLM{block: true}

	result := NewSingleShot(client, "gpt-4o-mini").Execute(ctx, testTask(), nil)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"cancelled"}, result.Errors)
}

func TestSingleShot_Identity(t *testing.T) {
	s := NewSingleShot(&scriptedLLM{}, "gpt-4o-mini")
	assert.Equal(t, NameSingleShot, s.Name())
	assert.Equal(t, models.ComplexitySimple, s.SupportsComplexity())
}
