package strategy

import (
	"context"
	"fmt"
	"time"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/pkg/validate"
)

// SingleShot makes one LLM call, parses, validates, and returns. No retry;
// a validation failure is final. Targets simple tasks on a cheap model.
type SingleShot struct {
	llm          llm.Client
	defaultModel string
}

// NewSingleShot builds the strategy. defaultModel is used when the execution
// context carries no selected model.
func NewSingleShot(client llm.Client, defaultModel string) *SingleShot {
	return &SingleShot{llm: client, defaultModel: defaultModel}
}

// Name implements Strategy.
func (s *SingleShot) Name() string { return NameSingleShot }

// SupportsComplexity implements Strategy.
func (s *SingleShot) SupportsComplexity() models.Complexity { return models.ComplexitySimple }

// Execute implements Strategy.
func (s *SingleShot) Execute(ctx context.Context, task *ent.CodingTask, execCtx *models.TaskExecutionContext) *ExecutionResult {
	start := time.Now()
	result := &ExecutionResult{IterationsUsed: 1}

	model := s.defaultModel
	if execCtx != nil && execCtx.Model != "" {
		model = execCtx.Model
	}

	resp, err := s.llm.Generate(ctx, llm.Request{
		Model: model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: codeSystemPrompt},
			{Role: llm.RoleUser, Content: taskPrompt(task, execCtx, nil)},
		},
		Temperature: 0.3,
		MaxTokens:   4000,
	})
	if err != nil {
		result.Duration = time.Since(start)
		result.Errors = []string{describeLLMError(ctx, err)}
		return result
	}
	result.TotalTokens = resp.TokensUsed
	result.TotalCost = resp.Cost

	changes, warnings := llm.ParseChanges(resp.Content)
	result.Errors = append(result.Errors, warnings...)
	if len(changes) == 0 {
		result.Duration = time.Since(start)
		result.Errors = append(result.Errors, "no code changes in model output")
		return result
	}

	if v := validate.Validate(changes); !v.Success {
		result.Duration = time.Since(start)
		result.Errors = append(result.Errors, v.Errors...)
		return result
	}

	result.Success = true
	result.Changes = changes
	result.Duration = time.Since(start)
	return result
}

// describeLLMError keeps cancellation distinct from provider failures in the
// result's error list.
func describeLLMError(ctx context.Context, err error) string {
	if ctx.Err() != nil {
		return "cancelled"
	}
	return fmt.Sprintf("llm call failed: %v", err)
}
