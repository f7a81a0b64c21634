package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the umbrella configuration object returned by Initialize and
// used throughout the application.
type Config struct {
	path string

	Server        ServerConfig        `yaml:"server"`
	Classifier    ClassifierConfig    `yaml:"ml_classifier"`
	GitHub        GitHubConfig        `yaml:"github"`
	LLM           LLMConfig           `yaml:"llm"`
	Orchestration OrchestrationConfig `yaml:"orchestration"`
	Retention     RetentionConfig     `yaml:"retention"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ClassifierConfig holds ML classifier service settings.
type ClassifierConfig struct {
	BaseURL string `yaml:"base_url"`
	// TimeoutMs is the per-call timeout in milliseconds.
	TimeoutMs int `yaml:"timeout_ms"`
}

// Timeout returns the per-call timeout as a duration.
func (c ClassifierConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// GitHubConfig holds GitHub wrapper service settings. The wrapper service
// owns credentials; this process only needs its endpoint and the identity
// pull requests are opened under.
type GitHubConfig struct {
	ServiceURL string `yaml:"service_url"`
	// TimeoutS is the per-call timeout in seconds.
	TimeoutS   int    `yaml:"timeout_s"`
	Owner      string `yaml:"owner"`
	Repo       string `yaml:"repo"`
	BaseBranch string `yaml:"base_branch"`
	BotUser    string `yaml:"bot_user"`
}

// Timeout returns the per-call timeout as a duration.
func (g GitHubConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutS) * time.Second
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	// APIKeyEnv names the env var holding the provider key.
	APIKeyEnv string `yaml:"api_key_env"`
	// BaseURL overrides the provider endpoint (OpenAI-compatible proxies).
	BaseURL string `yaml:"base_url"`
	// DefaultModel is the safe fallback when nothing better is known.
	DefaultModel string `yaml:"default_model"`
}

// APIKey resolves the provider API key from the environment.
func (l LLMConfig) APIKey() string {
	return os.Getenv(l.APIKeyEnv)
}

// OrchestrationConfig holds execution tuning knobs.
type OrchestrationConfig struct {
	MaxParallelSubagents   int                 `yaml:"max_parallel_subagents"`
	IterativeMaxIterations int                 `yaml:"iterative_max_iterations"`
	IterativeTimeout       string              `yaml:"iterative_timeout"`
	Performance            PerformanceConfig   `yaml:"performance"`
	ABTest                 ABTestConfig        `yaml:"ab_test"`
	ModelRegistry          ModelRegistryConfig `yaml:"model_registry"`
}

// IterativeBudget returns the iterative wall-clock budget, falling back to
// the default when the configured value does not parse.
func (o OrchestrationConfig) IterativeBudget() time.Duration {
	if o.IterativeTimeout == "" {
		return DefaultIterativeTimeout
	}
	d, err := time.ParseDuration(o.IterativeTimeout)
	if err != nil || d <= 0 {
		slog.Warn("Invalid iterative_timeout, using default",
			"value", o.IterativeTimeout,
			"default", DefaultIterativeTimeout)
		return DefaultIterativeTimeout
	}
	return d
}

// PerformanceConfig holds performance tracker settings.
type PerformanceConfig struct {
	MinSamples int `yaml:"min_samples"`
}

// ABTestConfig holds A/B engine settings.
type ABTestConfig struct {
	DefaultTrafficPercent int `yaml:"default_traffic_percent"`
}

// ModelRegistryConfig holds model registry cache settings.
type ModelRegistryConfig struct {
	RefreshTTL string `yaml:"refresh_ttl"`
}

// TTL returns the registry cache TTL, falling back to the default when the
// configured value does not parse.
func (m ModelRegistryConfig) TTL() time.Duration {
	if m.RefreshTTL == "" {
		return DefaultRegistryTTL
	}
	d, err := time.ParseDuration(m.RefreshTTL)
	if err != nil || d <= 0 {
		slog.Warn("Invalid refresh_ttl, using default",
			"value", m.RefreshTTL,
			"default", DefaultRegistryTTL)
		return DefaultRegistryTTL
	}
	return d
}

// RetentionConfig holds data retention settings for the background sweeper.
type RetentionConfig struct {
	EventTTL         string `yaml:"event_ttl"`
	StaleTaskTimeout string `yaml:"stale_task_timeout"`
	SweepInterval    string `yaml:"sweep_interval"`
}

// EventRetention returns how long outbox event rows are kept.
func (r RetentionConfig) EventRetention() time.Duration {
	return durationOrDefault("event_ttl", r.EventTTL, DefaultEventTTL)
}

// StaleTaskAfter returns how long an in_progress task may go without updates
// before the sweeper declares it orphaned.
func (r RetentionConfig) StaleTaskAfter() time.Duration {
	return durationOrDefault("stale_task_timeout", r.StaleTaskTimeout, DefaultStaleTaskTimeout)
}

// Interval returns how often the sweeper runs.
func (r RetentionConfig) Interval() time.Duration {
	return durationOrDefault("sweep_interval", r.SweepInterval, DefaultSweepInterval)
}

func durationOrDefault(field, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration setting, using default",
			"field", field, "value", value, "default", fallback)
		return fallback
	}
	return d
}

// Path returns the settings file path this configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Initialize loads, defaults, and validates configuration from the given
// settings file. A missing file is not an error: the built-in defaults are
// used so the service can start in a dev environment with env vars only.
func Initialize(_ context.Context, path string) (*Config, error) {
	cfg := defaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Info("Settings file not found, using defaults", "path", path)
	case err != nil:
		return nil, NewLoadError(path, err)
	default:
		data = ExpandEnv(data)
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	slog.Info("Configuration initialized",
		"path", path,
		"classifier_url", cfg.Classifier.BaseURL,
		"github_url", cfg.GitHub.ServiceURL,
		"llm_provider", cfg.LLM.Provider)

	return cfg, nil
}
