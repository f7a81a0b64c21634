package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "devflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitialize_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultClassifierURL, cfg.Classifier.BaseURL)
	assert.Equal(t, 100*time.Millisecond, cfg.Classifier.Timeout())
	assert.Equal(t, 5*time.Second, cfg.GitHub.Timeout())
	assert.Equal(t, DefaultMaxParallelSubagents, cfg.Orchestration.MaxParallelSubagents)
	assert.Equal(t, DefaultIterativeTimeout, cfg.Orchestration.IterativeBudget())
	assert.Equal(t, DefaultRegistryTTL, cfg.Orchestration.ModelRegistry.TTL())
}

func TestInitialize_OverridesAndDefaults(t *testing.T) {
	path := writeSettings(t, `
server:
  port: 9090
ml_classifier:
  base_url: http://classifier.internal:8001
  timeout_ms: 250
orchestration:
  max_parallel_subagents: 5
  iterative_timeout: 90s
  model_registry:
    refresh_ttl: 10m
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://classifier.internal:8001", cfg.Classifier.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Classifier.Timeout())
	assert.Equal(t, 5, cfg.Orchestration.MaxParallelSubagents)
	assert.Equal(t, 90*time.Second, cfg.Orchestration.IterativeBudget())
	assert.Equal(t, 10*time.Minute, cfg.Orchestration.ModelRegistry.TTL())

	// Untouched sections keep defaults.
	assert.Equal(t, DefaultGitHubServiceURL, cfg.GitHub.ServiceURL)
	assert.Equal(t, DefaultPerfMinSamples, cfg.Orchestration.Performance.MinSamples)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("CLASSIFIER_HOST", "ml.svc.cluster.local")

	path := writeSettings(t, `
ml_classifier:
  base_url: http://${CLASSIFIER_HOST}:8001
github:
  service_url: ${GITHUB_SVC_URL:-http://localhost:8002}
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "http://ml.svc.cluster.local:8001", cfg.Classifier.BaseURL)
	assert.Equal(t, "http://localhost:8002", cfg.GitHub.ServiceURL)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	path := writeSettings(t, "server: [not a mapping")

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "relative classifier url",
			content: "ml_classifier:\n  base_url: classifier.internal\n",
		},
		{
			name:    "traffic percent out of range",
			content: "orchestration:\n  ab_test:\n    default_traffic_percent: 150\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Initialize(context.Background(), writeSettings(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestIterativeBudget_InvalidFallsBack(t *testing.T) {
	o := OrchestrationConfig{IterativeTimeout: "not-a-duration"}
	assert.Equal(t, DefaultIterativeTimeout, o.IterativeBudget())

	o = OrchestrationConfig{IterativeTimeout: "-5s"}
	assert.Equal(t, DefaultIterativeTimeout, o.IterativeBudget())
}
