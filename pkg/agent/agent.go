// Package agent implements the specialized LLM agents used by the
// multi-agent strategy: Planner, Coder, Reviewer, and Tester. Every agent
// returns a uniform AgentResult; token and cost usage is accounted even when
// the agent fails.
package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
)

// failedResult builds a failed AgentResult that still carries any usage
// accumulated before the failure.
func failedResult(name string, start time.Time, resp *llm.Response, errs ...string) models.AgentResult {
	r := models.AgentResult{
		AgentName: name,
		Success:   false,
		Duration:  time.Since(start),
		Errors:    errs,
	}
	if resp != nil {
		r.TokensUsed = resp.TokensUsed
		r.Cost = resp.Cost
	}
	return r
}

// contextSection renders the execution context files into a prompt section.
// Empty when no files were loaded.
func contextSection(execCtx *models.TaskExecutionContext) string {
	if execCtx == nil || len(execCtx.Files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Relevant repository files:\n\n")
	for _, f := range execCtx.Files {
		fmt.Fprintf(&b, "FILE: %s\n```%s\n%s\n```\n\n", f.Path, f.Language, f.Content)
	}
	return b.String()
}

// extractJSON pulls the outermost JSON object from agent output, tolerating
// markdown fences and surrounding prose.
func extractJSON(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
