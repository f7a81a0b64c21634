package strategy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/pkg/validate"
)

// Iterative loops generate-parse-validate, feeding validation errors back
// into the next prompt. Bounded by an iteration cap and a wall-clock budget;
// tokens and cost accumulate across every iteration.
type Iterative struct {
	llm           llm.Client
	defaultModel  string
	maxIterations int
	budget        time.Duration
}

// NewIterative builds the strategy with the configured bounds.
func NewIterative(client llm.Client, defaultModel string, maxIterations int, budget time.Duration) *Iterative {
	if maxIterations <= 0 {
		maxIterations = 3
	}
	if budget <= 0 {
		budget = 60 * time.Second
	}
	return &Iterative{
		llm:           client,
		defaultModel:  defaultModel,
		maxIterations: maxIterations,
		budget:        budget,
	}
}

// Name implements Strategy.
func (s *Iterative) Name() string { return NameIterative }

// SupportsComplexity implements Strategy.
func (s *Iterative) SupportsComplexity() models.Complexity { return models.ComplexityMedium }

// Execute implements Strategy.
func (s *Iterative) Execute(ctx context.Context, task *ent.CodingTask, execCtx *models.TaskExecutionContext) *ExecutionResult {
	start := time.Now()
	result := &ExecutionResult{}

	runCtx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	model := s.defaultModel
	if execCtx != nil && execCtx.Model != "" {
		model = execCtx.Model
	}

	var lastErrors []string
	for i := 1; i <= s.maxIterations; i++ {
		result.IterationsUsed = i

		resp, err := s.llm.Generate(runCtx, llm.Request{
			Model: model,
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: codeSystemPrompt},
				{Role: llm.RoleUser, Content: taskPrompt(task, execCtx, lastErrors)},
			},
			Temperature: 0.3,
			MaxTokens:   4000,
		})
		if err != nil {
			result.Duration = time.Since(start)
			result.Errors = append(lastErrors, s.terminalReason(ctx, runCtx, err))
			return result
		}
		result.TotalTokens += resp.TokensUsed
		result.TotalCost += resp.Cost

		changes, warnings := llm.ParseChanges(resp.Content)
		if len(changes) == 0 {
			// An empty parse consumes the iteration.
			lastErrors = append(warnings, "no code changes in model output")
			slog.Debug("Iteration produced no changes", "task_id", task.ID, "iteration", i)
			continue
		}

		v := validate.Validate(changes)
		if v.Success {
			result.Success = true
			result.Changes = changes
			result.Duration = time.Since(start)
			return result
		}

		lastErrors = v.Errors
		slog.Debug("Iteration failed validation",
			"task_id", task.ID, "iteration", i, "errors", len(v.Errors))
	}

	result.Duration = time.Since(start)
	result.Errors = append([]string{fmt.Sprintf("Max iterations (%d) reached", s.maxIterations)}, lastErrors...)
	return result
}

// terminalReason distinguishes caller cancellation from budget expiry from
// provider failure.
func (s *Iterative) terminalReason(ctx, runCtx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "cancelled"
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return fmt.Sprintf("timed out after %s", s.budget)
	default:
		return fmt.Sprintf("llm call failed: %v", err)
	}
}
