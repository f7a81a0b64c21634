package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
)

const plannerSystemPrompt = `You are a senior software architect decomposing a coding task into subtasks.
Respond with a single JSON object and nothing else:
{"subtasks": [{"id": "st-1", "title": "...", "description": "...", "affected_files": ["path"], "estimated_complexity": 3, "depends_on": []}]}
Rules: produce between 2 and 5 subtasks; estimated_complexity is 1-10; depends_on lists subtask ids that must finish first; the dependency graph must be acyclic.`

// Planner decomposes a task into a TaskPlan of 2-5 subtasks.
type Planner struct {
	llm   llm.Client
	model string
}

// NewPlanner builds a planner that uses the given model.
func NewPlanner(client llm.Client, model string) *Planner {
	return &Planner{llm: client, model: model}
}

// Plan asks the model for a decomposition and validates it. The plan is nil
// when the result is not successful.
func (p *Planner) Plan(ctx context.Context, task *ent.CodingTask, execCtx *models.TaskExecutionContext) (models.AgentResult, *models.TaskPlan) {
	const name = "planner"
	start := time.Now()

	prompt := fmt.Sprintf("Task: %s\n\n%s\n\n%s", task.Title, task.Description, contextSection(execCtx))

	resp, err := p.llm.Generate(ctx, llm.Request{
		Model: p.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: plannerSystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature: 0.2,
		MaxTokens:   2000,
	})
	if err != nil {
		return failedResult(name, start, nil, fmt.Sprintf("llm call failed: %v", err)), nil
	}

	raw, ok := extractJSON(resp.Content)
	if !ok {
		return failedResult(name, start, resp, "no JSON plan in planner output"), nil
	}

	var plan models.TaskPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return failedResult(name, start, resp, fmt.Sprintf("malformed plan JSON: %v", err)), nil
	}
	if n := len(plan.SubTasks); n < 2 || n > 5 {
		return failedResult(name, start, resp, fmt.Sprintf("plan has %d subtasks, want 2-5", n)), nil
	}
	if err := plan.Validate(); err != nil {
		return failedResult(name, start, resp, fmt.Sprintf("invalid plan: %v", err)), nil
	}

	return models.AgentResult{
		AgentName:  name,
		Success:    true,
		TokensUsed: resp.TokensUsed,
		Cost:       resp.Cost,
		Duration:   time.Since(start),
		Output:     raw,
	}, &plan
}
