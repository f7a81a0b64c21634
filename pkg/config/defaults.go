package config

import "time"

// Built-in defaults applied when the settings file omits a value.
const (
	DefaultServerHost = "0.0.0.0"
	DefaultServerPort = 8080

	DefaultClassifierURL       = "http://localhost:8001"
	DefaultClassifierTimeoutMs = 100

	DefaultGitHubServiceURL = "http://localhost:8002"
	DefaultGitHubTimeoutS   = 5
	DefaultGitHubBaseBranch = "main"
	DefaultGitHubBotUser    = "devflow-bot"

	DefaultLLMProvider = "openai"
	DefaultLLMKeyEnv   = "OPENAI_API_KEY"
	DefaultLLMModel    = "gpt-4o-mini"

	DefaultMaxParallelSubagents   = 3
	DefaultIterativeMaxIterations = 3
	DefaultIterativeTimeout       = 60 * time.Second

	DefaultPerfMinSamples   = 30
	DefaultABTrafficPercent = 10
	DefaultRegistryTTL      = 5 * time.Minute

	DefaultEventTTL         = 7 * 24 * time.Hour
	DefaultStaleTaskTimeout = 2 * time.Hour
	DefaultSweepInterval    = time.Hour
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultServerHost,
			Port: DefaultServerPort,
		},
		Classifier: ClassifierConfig{
			BaseURL:   DefaultClassifierURL,
			TimeoutMs: DefaultClassifierTimeoutMs,
		},
		GitHub: GitHubConfig{
			ServiceURL: DefaultGitHubServiceURL,
			TimeoutS:   DefaultGitHubTimeoutS,
			BaseBranch: DefaultGitHubBaseBranch,
			BotUser:    DefaultGitHubBotUser,
		},
		LLM: LLMConfig{
			Provider:     DefaultLLMProvider,
			APIKeyEnv:    DefaultLLMKeyEnv,
			DefaultModel: DefaultLLMModel,
		},
		Orchestration: OrchestrationConfig{
			MaxParallelSubagents:   DefaultMaxParallelSubagents,
			IterativeMaxIterations: DefaultIterativeMaxIterations,
			Performance:            PerformanceConfig{MinSamples: DefaultPerfMinSamples},
			ABTest:                 ABTestConfig{DefaultTrafficPercent: DefaultABTrafficPercent},
		},
	}
}

// applyDefaults fills zero values left after YAML unmarshalling. YAML
// unmarshals into the pre-defaulted struct, so only fields explicitly set to
// zero in the file need repair here.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Classifier.TimeoutMs <= 0 {
		cfg.Classifier.TimeoutMs = DefaultClassifierTimeoutMs
	}
	if cfg.GitHub.TimeoutS <= 0 {
		cfg.GitHub.TimeoutS = DefaultGitHubTimeoutS
	}
	if cfg.GitHub.BaseBranch == "" {
		cfg.GitHub.BaseBranch = DefaultGitHubBaseBranch
	}
	if cfg.GitHub.BotUser == "" {
		cfg.GitHub.BotUser = DefaultGitHubBotUser
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = DefaultLLMProvider
	}
	if cfg.LLM.APIKeyEnv == "" {
		cfg.LLM.APIKeyEnv = DefaultLLMKeyEnv
	}
	if cfg.LLM.DefaultModel == "" {
		cfg.LLM.DefaultModel = DefaultLLMModel
	}
	if cfg.Orchestration.MaxParallelSubagents <= 0 {
		cfg.Orchestration.MaxParallelSubagents = DefaultMaxParallelSubagents
	}
	if cfg.Orchestration.IterativeMaxIterations <= 0 {
		cfg.Orchestration.IterativeMaxIterations = DefaultIterativeMaxIterations
	}
	if cfg.Orchestration.Performance.MinSamples <= 0 {
		cfg.Orchestration.Performance.MinSamples = DefaultPerfMinSamples
	}
	if cfg.Orchestration.ABTest.DefaultTrafficPercent <= 0 {
		cfg.Orchestration.ABTest.DefaultTrafficPercent = DefaultABTrafficPercent
	}
}
