package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient captures the subset of the go-openai client used by the adapter.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (
		openai.ChatCompletionResponse, error)
}

// modelPrice holds per-1K-token USD prices.
type modelPrice struct {
	prompt     float64
	completion float64
}

// priceTable is the cost source of truth for the OpenAI adapter. Models not
// listed fall back to defaultPrice.
var priceTable = map[string]modelPrice{
	"gpt-4o":        {prompt: 0.0025, completion: 0.01},
	"gpt-4o-mini":   {prompt: 0.00015, completion: 0.0006},
	"gpt-4-turbo":   {prompt: 0.01, completion: 0.03},
	"gpt-3.5-turbo": {prompt: 0.0005, completion: 0.0015},
}

var defaultPrice = modelPrice{prompt: 0.0025, completion: 0.01}

// OpenAI implements Client via the OpenAI Chat Completions API.
type OpenAI struct {
	chat         ChatClient
	defaultModel string
}

// NewOpenAI builds the adapter around an existing chat client.
func NewOpenAI(chat ChatClient, defaultModel string) (*OpenAI, error) {
	if chat == nil {
		return nil, errors.New("openai chat client is required")
	}
	if defaultModel == "" {
		return nil, errors.New("default model is required")
	}
	return &OpenAI{chat: chat, defaultModel: defaultModel}, nil
}

// NewOpenAIFromConfig constructs the adapter with the stock go-openai client.
// baseURL may point an OpenAI-compatible proxy; empty uses the provider
// default.
func NewOpenAIFromConfig(apiKey, baseURL, defaultModel string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return NewOpenAI(openai.NewClientWithConfig(cfg), defaultModel)
}

// Generate performs one chat completion.
func (o *OpenAI) Generate(ctx context.Context, req Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: messages are required", ErrInvalidRequest)
	}
	model := req.Model
	if model == "" {
		model = o.defaultModel
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	resp, err := o.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, mapProviderError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choice list", ErrProviderUnavailable)
	}

	return &Response{
		Content:    resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.TotalTokens,
		Cost:       cost(model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens),
		Model:      model,
	}, nil
}

func cost(model string, promptTokens, completionTokens int) float64 {
	price, ok := priceTable[model]
	if !ok {
		price = defaultPrice
	}
	return float64(promptTokens)/1000*price.prompt +
		float64(completionTokens)/1000*price.completion
}

func mapProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		case apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500:
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}
