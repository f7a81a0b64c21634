// Package registry tracks the models available for execution. Listings are
// cached with a TTL; refreshes go through singleflight so concurrent cache
// misses trigger one provider sweep.
package registry

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/devflow-ai/devflow/pkg/models"
)

// DefaultTTL is how long a provider sweep stays fresh.
const DefaultTTL = 5 * time.Minute

// Provider lists the models one upstream offers.
type Provider interface {
	Name() string
	ListModels(ctx context.Context) ([]models.ModelInfo, error)
}

// Registry caches model listings across providers. A provider failure during
// refresh is logged and skipped, the sweep keeps whatever the other providers
// returned plus the static defaults.
type Registry struct {
	providers []Provider
	ttl       time.Duration

	sf singleflight.Group

	mu        sync.RWMutex
	cache     []models.ModelInfo
	fetchedAt time.Time
}

// New builds a registry over the given providers. A non-positive ttl falls
// back to DefaultTTL.
func New(ttl time.Duration, providers ...Provider) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{providers: providers, ttl: ttl}
}

// List returns every known model, refreshing the cache when stale.
func (r *Registry) List(ctx context.Context) ([]models.ModelInfo, error) {
	if err := r.ensureFresh(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ModelInfo, len(r.cache))
	copy(out, r.cache)
	return out, nil
}

// ListByProvider returns the models one provider offers.
func (r *Registry) ListByProvider(ctx context.Context, provider string) ([]models.ModelInfo, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.ModelInfo
	for _, m := range all {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out, nil
}

// IsAvailable reports whether a model is currently listed as available.
func (r *Registry) IsAvailable(ctx context.Context, name string) bool {
	all, err := r.List(ctx)
	if err != nil {
		return false
	}
	for _, m := range all {
		if m.Name == name && m.Available {
			return true
		}
	}
	return false
}

// Refresh forces a provider sweep regardless of TTL.
func (r *Registry) Refresh(ctx context.Context) error {
	_, err, _ := r.sf.Do("refresh", func() (any, error) {
		return nil, r.refresh(ctx)
	})
	return err
}

func (r *Registry) ensureFresh(ctx context.Context) error {
	r.mu.RLock()
	fresh := !r.fetchedAt.IsZero() && time.Since(r.fetchedAt) < r.ttl
	r.mu.RUnlock()
	if fresh {
		return nil
	}
	return r.Refresh(ctx)
}

func (r *Registry) refresh(ctx context.Context) error {
	now := time.Now()
	byName := make(map[string]models.ModelInfo)
	for _, m := range defaultModels() {
		m.UpdatedAt = now
		byName[m.Name] = m
	}

	for _, p := range r.providers {
		listed, err := p.ListModels(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("Model provider listing failed, skipping",
				"provider", p.Name(), "error", err)
			continue
		}
		for _, m := range listed {
			if m.Provider == "" {
				m.Provider = p.Name()
			}
			m.UpdatedAt = now
			byName[m.Name] = m
		}
	}

	merged := make([]models.ModelInfo, 0, len(byName))
	for _, m := range byName {
		merged = append(merged, m)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })

	r.mu.Lock()
	r.cache = merged
	r.fetchedAt = now
	r.mu.Unlock()

	slog.Debug("Model registry refreshed", "models", len(merged))
	return nil
}

// defaultModels is the static cloud set the registry always knows about,
// even before any provider answers.
func defaultModels() []models.ModelInfo {
	return []models.ModelInfo{
		{
			Name:         "gpt-4o",
			Provider:     "openai",
			DisplayName:  "GPT-4o",
			Capabilities: models.CapAll,
			Available:    true,
		},
		{
			Name:         "gpt-4o-mini",
			Provider:     "openai",
			DisplayName:  "GPT-4o mini",
			Capabilities: models.CapAll,
			Available:    true,
		},
		{
			Name:         "gpt-4-turbo",
			Provider:     "openai",
			DisplayName:  "GPT-4 Turbo",
			Capabilities: models.CapAll,
			Available:    true,
		},
		{
			Name:         "gpt-3.5-turbo",
			Provider:     "openai",
			DisplayName:  "GPT-3.5 Turbo",
			Capabilities: models.CapCodeGeneration | models.CapChatCompletion | models.CapTesting,
			Available:    true,
		},
	}
}
