package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
)

const coderSystemPrompt = `You are an expert software engineer implementing one well-scoped subtask.
For every file you create or modify, emit:
FILE: <path>
` + "```" + `<language>
<full new file content>
` + "```" + `
Emit complete file bodies, never diffs or fragments. Do not touch files outside the subtask's scope.`

// Coder implements a single subtask and returns its code changes.
type Coder struct {
	llm   llm.Client
	model string
}

// NewCoder builds a coder that uses the given model.
func NewCoder(client llm.Client, model string) *Coder {
	return &Coder{llm: client, model: model}
}

// Implement generates the changes for one subtask.
func (c *Coder) Implement(ctx context.Context, st models.SubTask, execCtx *models.TaskExecutionContext) models.AgentResult {
	name := "coder:" + st.ID
	start := time.Now()

	var b strings.Builder
	fmt.Fprintf(&b, "Subtask: %s\n\n%s\n", st.Title, st.Description)
	if len(st.AffectedFiles) > 0 {
		fmt.Fprintf(&b, "\nFiles in scope: %s\n", strings.Join(st.AffectedFiles, ", "))
	}
	if section := contextSection(execCtx); section != "" {
		b.WriteString("\n")
		b.WriteString(section)
	}

	resp, err := c.llm.Generate(ctx, llm.Request{
		Model: c.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: coderSystemPrompt},
			{Role: llm.RoleUser, Content: b.String()},
		},
		Temperature: 0.3,
		MaxTokens:   4000,
	})
	if err != nil {
		return failedResult(name, start, nil, fmt.Sprintf("llm call failed: %v", err))
	}

	changes, warnings := llm.ParseChanges(resp.Content)
	if len(changes) == 0 {
		errs := append([]string{"coder produced no parsable changes"}, warnings...)
		return failedResult(name, start, resp, errs...)
	}

	return models.AgentResult{
		AgentName:  name,
		Success:    true,
		Changes:    changes,
		TokensUsed: resp.TokensUsed,
		Cost:       resp.Cost,
		Duration:   time.Since(start),
		Errors:     warnings,
	}
}
