// Package strategy implements the execution strategy family. A strategy
// turns a task plus its loaded context into code changes; it never returns
// an error, failures land in the ExecutionResult.
package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/models"
)

// Strategy names.
const (
	NameSingleShot = "SingleShot"
	NameIterative  = "Iterative"
	NameMultiAgent = "MultiAgent"
)

// ExecutionResult is the uniform outcome of one strategy run.
type ExecutionResult struct {
	Success        bool                `json:"success"`
	Changes        []models.CodeChange `json:"changes,omitempty"`
	TotalTokens    int                 `json:"total_tokens"`
	TotalCost      float64             `json:"total_cost"`
	Duration       time.Duration       `json:"duration"`
	IterationsUsed int                 `json:"iterations_used"`
	Errors         []string            `json:"errors,omitempty"`
}

// Strategy is one member of the execution family.
type Strategy interface {
	// Name identifies the strategy in execution rows and events.
	Name() string
	// SupportsComplexity names the complexity tier this strategy targets.
	SupportsComplexity() models.Complexity
	// Execute runs the strategy. It never returns an error; failures are
	// reported in the result. Cancellation yields a failed result with a
	// "cancelled" error entry.
	Execute(ctx context.Context, task *ent.CodingTask, execCtx *models.TaskExecutionContext) *ExecutionResult
}

// taskPrompt renders the task and its context files into a user prompt
// shared by the single-shot and iterative strategies.
func taskPrompt(task *ent.CodingTask, execCtx *models.TaskExecutionContext, validationErrors []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n\n%s\n", task.Title, task.Description)

	if execCtx != nil && len(execCtx.Files) > 0 {
		b.WriteString("\nRelevant repository files:\n\n")
		for _, f := range execCtx.Files {
			fmt.Fprintf(&b, "FILE: %s\n```%s\n%s\n```\n\n", f.Path, f.Language, f.Content)
		}
	}

	if len(validationErrors) > 0 {
		b.WriteString("\nYour previous attempt failed validation with these errors; fix them:\n")
		for _, e := range validationErrors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	return b.String()
}

const codeSystemPrompt = `You are an expert software engineer. Implement the requested task.
For every file you create or modify, emit:
FILE: <path>
` + "```" + `<language>
<full new file content>
` + "```" + `
Emit complete file bodies, never diffs or fragments.`
