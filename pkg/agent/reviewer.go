package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/models"
)

const reviewerSystemPrompt = `You are a strict code reviewer. Review the proposed changes for correctness, safety, and scope.
Respond with a single JSON object and nothing else:
{"is_approved": true, "issues": ["..."], "severity": 1}
severity grades the worst issue found: 1 cosmetic, 5 blocking. Approve only when nothing above severity 2 remains.`

// Reviewer gates a merged change set with a structured verdict.
type Reviewer struct {
	llm   llm.Client
	model string
}

// NewReviewer builds a reviewer that uses the given model.
func NewReviewer(client llm.Client, model string) *Reviewer {
	return &Reviewer{llm: client, model: model}
}

// Review produces a ReviewResult for the change set. The review is nil when
// the result is not successful.
func (r *Reviewer) Review(ctx context.Context, changes []models.CodeChange) (models.AgentResult, *models.ReviewResult) {
	const name = "reviewer"
	start := time.Now()

	resp, err := r.llm.Generate(ctx, llm.Request{
		Model: r.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: reviewerSystemPrompt},
			{Role: llm.RoleUser, Content: renderChanges(changes)},
		},
		Temperature: 0.1,
		MaxTokens:   2000,
	})
	if err != nil {
		return failedResult(name, start, nil, fmt.Sprintf("llm call failed: %v", err)), nil
	}

	raw, ok := extractJSON(resp.Content)
	if !ok {
		return failedResult(name, start, resp, "no JSON verdict in reviewer output"), nil
	}

	var review models.ReviewResult
	if err := json.Unmarshal([]byte(raw), &review); err != nil {
		return failedResult(name, start, resp, fmt.Sprintf("malformed review JSON: %v", err)), nil
	}
	if review.Severity < 1 || review.Severity > 5 {
		return failedResult(name, start, resp, fmt.Sprintf("review severity %d out of range", review.Severity)), nil
	}

	return models.AgentResult{
		AgentName:  name,
		Success:    true,
		TokensUsed: resp.TokensUsed,
		Cost:       resp.Cost,
		Duration:   time.Since(start),
		Output:     raw,
	}, &review
}

func renderChanges(changes []models.CodeChange) string {
	var b strings.Builder
	b.WriteString("Proposed changes:\n\n")
	for _, ch := range changes {
		fmt.Fprintf(&b, "FILE: %s\n```%s\n%s\n```\n\n", ch.FilePath, ch.Language, ch.Content)
	}
	return b.String()
}
