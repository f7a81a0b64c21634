package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
)

const testerSystemPrompt = `You are a test engineer. Write test files covering the changed code.
For every test file, emit:
FILE: <path>
` + "```" + `<language>
<full test file content>
` + "```" + `
Follow the conventions visible in the changed files. Only emit test files.`

// Tester generates test files for a merged change set. Its failure is
// non-fatal to the strategy.
type Tester struct {
	llm   llm.Client
	model string
}

// NewTester builds a tester that uses the given model.
func NewTester(client llm.Client, model string) *Tester {
	return &Tester{llm: client, model: model}
}

// GenerateTests asks the model for test files covering the changes.
func (t *Tester) GenerateTests(ctx context.Context, changes []models.CodeChange) models.AgentResult {
	const name = "tester"
	start := time.Now()

	resp, err := t.llm.Generate(ctx, llm.Request{
		Model: t.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: testerSystemPrompt},
			{Role: llm.RoleUser, Content: renderChanges(changes)},
		},
		Temperature: 0.3,
		MaxTokens:   4000,
	})
	if err != nil {
		return failedResult(name, start, nil, fmt.Sprintf("llm call failed: %v", err))
	}

	testChanges, warnings := llm.ParseChanges(resp.Content)
	if len(testChanges) == 0 {
		errs := append([]string{"tester produced no parsable test files"}, warnings...)
		return failedResult(name, start, resp, errs...)
	}

	return models.AgentResult{
		AgentName:  name,
		Success:    true,
		Changes:    testChanges,
		TokensUsed: resp.TokensUsed,
		Cost:       resp.Cost,
		Duration:   time.Since(start),
		Errors:     warnings,
	}
}
