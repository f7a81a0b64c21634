package registry

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModelLister struct {
	models []openai.Model
	err    error
}

func (f *fakeModelLister) ListModels(context.Context) (openai.ModelsList, error) {
	if f.err != nil {
		return openai.ModelsList{}, f.err
	}
	return openai.ModelsList{Models: f.models}, nil
}

func TestOpenAIProvider_ListModels(t *testing.T) {
	p := &OpenAIProvider{client: &fakeModelLister{models: []openai.Model{
		{ID: "gpt-4o"},
		{ID: "gpt-4o-mini"},
		{ID: "gpt-4o-audio-preview"},
		{ID: "text-embedding-3-small"},
		{ID: "whisper-1"},
		{ID: "gpt-3.5-turbo-instruct"},
	}}}

	listed, err := p.ListModels(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(listed))
	for _, m := range listed {
		names = append(names, m.Name)
		assert.Equal(t, "openai", m.Provider)
		assert.True(t, m.Available)
	}
	assert.Equal(t, []string{"gpt-4o", "gpt-4o-mini"}, names)
}

func TestOpenAIProvider_ListModelsError(t *testing.T) {
	p := &OpenAIProvider{client: &fakeModelLister{err: errors.New("401 unauthorized")}}

	_, err := p.ListModels(context.Background())
	assert.Error(t, err)
}
