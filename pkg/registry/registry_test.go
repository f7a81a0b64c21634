package registry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/models"
)

type fakeProvider struct {
	name   string
	models []models.ModelInfo
	err    error
	calls  atomic.Int32
	gate   chan struct{}
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	p.calls.Add(1)
	if p.gate != nil {
		select {
		case <-p.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.models, nil
}

func TestRegistry_ListMergesDefaultsAndProviders(t *testing.T) {
	p := &fakeProvider{name: "local", models: []models.ModelInfo{
		{Name: "codellama-13b", Available: true},
	}}
	r := New(time.Minute, p)

	all, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)

	byName := make(map[string]models.ModelInfo, len(all))
	for _, m := range all {
		byName[m.Name] = m
	}
	assert.True(t, byName["gpt-4o"].Available)
	// Provider name is filled in when the listing omits it.
	assert.Equal(t, "local", byName["codellama-13b"].Provider)
}

func TestRegistry_TTLCachesListings(t *testing.T) {
	p := &fakeProvider{name: "local"}
	r := New(time.Minute, p)

	for range 5 {
		_, err := r.List(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), p.calls.Load())

	// Forced refresh bypasses the TTL.
	require.NoError(t, r.Refresh(context.Background()))
	assert.Equal(t, int32(2), p.calls.Load())
}

func TestRegistry_ExpiredTTLRefetches(t *testing.T) {
	p := &fakeProvider{name: "local"}
	r := New(10*time.Millisecond, p)

	_, err := r.List(context.Background())
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), p.calls.Load())
}

func TestRegistry_ProviderFailureIsPartial(t *testing.T) {
	healthy := &fakeProvider{name: "local", models: []models.ModelInfo{
		{Name: "codellama-13b", Provider: "local", Available: true},
	}}
	broken := &fakeProvider{name: "flaky", err: errors.New("connection refused")}
	r := New(time.Minute, healthy, broken)

	all, err := r.List(context.Background())
	require.NoError(t, err)
	// Defaults plus the healthy provider survive the flaky one.
	assert.Len(t, all, 5)
}

func TestRegistry_IsAvailable(t *testing.T) {
	p := &fakeProvider{name: "local", models: []models.ModelInfo{
		{Name: "codellama-13b", Provider: "local", Available: false},
	}}
	r := New(time.Minute, p)

	assert.True(t, r.IsAvailable(context.Background(), "gpt-4o-mini"))
	assert.False(t, r.IsAvailable(context.Background(), "codellama-13b"))
	assert.False(t, r.IsAvailable(context.Background(), "no-such-model"))
}

func TestRegistry_ListByProvider(t *testing.T) {
	r := New(time.Minute)

	openais, err := r.ListByProvider(context.Background(), "openai")
	require.NoError(t, err)
	assert.Len(t, openais, 4)

	none, err := r.ListByProvider(context.Background(), "anthropic")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRegistry_ConcurrentMissesSingleSweep(t *testing.T) {
	p := &fakeProvider{name: "local", gate: make(chan struct{})}
	r := New(time.Minute, p)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.List(context.Background())
		}()
	}
	// Let the goroutines pile up on the in-flight sweep before releasing it.
	time.Sleep(20 * time.Millisecond)
	close(p.gate)
	wg.Wait()

	assert.Equal(t, int32(1), p.calls.Load())
}
