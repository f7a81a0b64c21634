// Package llm defines the provider-agnostic LLM client interface and the
// shared output-change parser used by all execution strategies.
package llm

import (
	"context"
	"errors"
)

// Role identifies the author of a chat message.
type Role string

// Message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a single-shot generation request.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Response carries the generation output. Cost is computed by the provider
// adapter from its price table; callers never recompute it.
type Response struct {
	Content    string  `json:"content"`
	TokensUsed int     `json:"tokens_used"`
	Cost       float64 `json:"cost"`
	Model      string  `json:"model"`
}

// Client generates completions. Implementations must honor context
// cancellation and map provider failures onto the package error kinds.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

var (
	// ErrProviderUnavailable indicates the provider could not be reached or
	// answered with a server-side failure
	ErrProviderUnavailable = errors.New("llm provider unavailable")

	// ErrQuotaExhausted indicates rate or spend limits were hit
	ErrQuotaExhausted = errors.New("llm quota exhausted")

	// ErrInvalidRequest indicates the provider rejected the request itself
	ErrInvalidRequest = errors.New("invalid llm request")
)
