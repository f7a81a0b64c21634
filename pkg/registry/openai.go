package registry

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/devflow-ai/devflow/pkg/models"
)

// modelLister is the slice of the OpenAI client the provider needs.
type modelLister interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// OpenAIProvider lists chat-capable models from the OpenAI API (or an
// OpenAI-compatible proxy).
type OpenAIProvider struct {
	client modelLister
}

// NewOpenAIProvider builds a provider over the OpenAI API. baseURL overrides
// the endpoint when non-empty.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg)}
}

func (p *OpenAIProvider) Name() string { return "openai" }

// ListModels returns the GPT chat models the account can use. Non-chat
// entries (embeddings, audio, moderation) are filtered out.
func (p *OpenAIProvider) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	list, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.ModelInfo, 0, len(list.Models))
	for _, m := range list.Models {
		if !isChatModel(m.ID) {
			continue
		}
		out = append(out, models.ModelInfo{
			Name:         m.ID,
			Provider:     "openai",
			DisplayName:  m.ID,
			Capabilities: models.CapAll,
			Available:    true,
		})
	}
	return out, nil
}

func isChatModel(id string) bool {
	if !strings.HasPrefix(id, "gpt-") {
		return false
	}
	for _, skip := range []string{"instruct", "audio", "realtime", "transcribe", "tts", "search"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return true
}
