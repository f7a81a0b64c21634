package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	gotReq openai.ChatCompletionRequest
	resp   openai.ChatCompletionResponse
	err    error
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func TestOpenAI_Generate(t *testing.T) {
	chat := &fakeChat{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "done"}},
			},
			Usage: openai.Usage{PromptTokens: 1000, CompletionTokens: 500, TotalTokens: 1500},
		},
	}
	client, err := NewOpenAI(chat, "gpt-4o-mini")
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), Request{
		Messages:    []Message{{Role: RoleUser, Content: "fix it"}},
		Temperature: 0.3,
		MaxTokens:   4000,
	})
	require.NoError(t, err)

	assert.Equal(t, "done", resp.Content)
	assert.Equal(t, 1500, resp.TokensUsed)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	// 1000 prompt * 0.00015/1K + 500 completion * 0.0006/1K
	assert.InDelta(t, 0.00015+0.0003, resp.Cost, 1e-9)

	assert.Equal(t, "gpt-4o-mini", chat.gotReq.Model)
	assert.Equal(t, float32(0.3), chat.gotReq.Temperature)
	assert.Equal(t, 4000, chat.gotReq.MaxTokens)
}

func TestOpenAI_GenerateRequiresMessages(t *testing.T) {
	client, err := NewOpenAI(&fakeChat{}, "gpt-4o-mini")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestOpenAI_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "rate limit maps to quota",
			err:  &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests},
			want: ErrQuotaExhausted,
		},
		{
			name: "bad request maps to invalid",
			err:  &openai.APIError{HTTPStatusCode: http.StatusBadRequest},
			want: ErrInvalidRequest,
		},
		{
			name: "server error maps to unavailable",
			err:  &openai.APIError{HTTPStatusCode: http.StatusInternalServerError},
			want: ErrProviderUnavailable,
		},
		{
			name: "transport error maps to unavailable",
			err:  errors.New("connection reset"),
			want: ErrProviderUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewOpenAI(&fakeChat{err: tt.err}, "gpt-4o-mini")
			require.NoError(t, err)

			_, err = client.Generate(context.Background(), Request{
				Messages: []Message{{Role: RoleUser, Content: "x"}},
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOpenAI_CancellationPassesThrough(t *testing.T) {
	client, err := NewOpenAI(&fakeChat{err: context.Canceled}, "gpt-4o-mini")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "x"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrProviderUnavailable)
}

func TestCost_UnknownModelUsesDefaultPrice(t *testing.T) {
	got := cost("future-model", 1000, 1000)
	assert.InDelta(t, 0.0025+0.01, got, 1e-9)
}
