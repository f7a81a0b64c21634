// DevFlow orchestration server. Serves the HTTP API, selects strategies
// and models for coding tasks, and supervises task executions.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/devflow-ai/devflow/pkg/abtest"
	"github.com/devflow-ai/devflow/pkg/agent"
	"github.com/devflow-ai/devflow/pkg/api"
	"github.com/devflow-ai/devflow/pkg/cleanup"
	"github.com/devflow-ai/devflow/pkg/clients"
	"github.com/devflow-ai/devflow/pkg/config"
	"github.com/devflow-ai/devflow/pkg/coordinator"
	"github.com/devflow-ai/devflow/pkg/database"
	"github.com/devflow-ai/devflow/pkg/events"
	"github.com/devflow-ai/devflow/pkg/llm"
	"github.com/devflow-ai/devflow/pkg/logstream"
	"github.com/devflow-ai/devflow/pkg/perf"
	"github.com/devflow-ai/devflow/pkg/registry"
	"github.com/devflow-ai/devflow/pkg/selector"
	"github.com/devflow-ai/devflow/pkg/services"
	"github.com/devflow-ai/devflow/pkg/strategy"
	"github.com/devflow-ai/devflow/pkg/version"
)

const shutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	settingsPath := flag.String("settings",
		getEnv("DEVFLOW_SETTINGS", "./config/settings.yaml"),
		"Path to the settings file")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	slog.Info("Starting DevFlow",
		"version", version.GitCommit,
		"settings", *settingsPath)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *settingsPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (migrations applied on startup)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	publisher := events.NewPublisher(dbClient.DB())

	// 3. Outbound clients
	llmClient, err := llm.NewOpenAIFromConfig(cfg.LLM.APIKey(), cfg.LLM.BaseURL, cfg.LLM.DefaultModel)
	if err != nil {
		slog.Error("Failed to create LLM client", "error", err)
		os.Exit(1)
	}
	classifier := clients.NewClassifier(cfg.Classifier)
	github := clients.NewGitHub(cfg.GitHub)

	// 4. Model registry, performance tracker, A/B engine
	var providers []registry.Provider
	if cfg.LLM.APIKey() != "" {
		providers = append(providers, registry.NewOpenAIProvider(cfg.LLM.APIKey(), cfg.LLM.BaseURL))
	}
	reg := registry.New(cfg.Orchestration.ModelRegistry.TTL(), providers...)
	tracker := perf.NewTracker(dbClient.Client, cfg.Orchestration.Performance.MinSamples)
	abEngine := abtest.NewEngine(dbClient.Client, cfg.Orchestration.ABTest.DefaultTrafficPercent)
	modelSel := selector.NewModelSelector(reg, tracker, abEngine, cfg.LLM.DefaultModel)

	// 5. Strategy family and selector
	defaultModel := cfg.LLM.DefaultModel
	multiAgent := strategy.NewMultiAgent(
		agent.NewPlanner(llmClient, defaultModel),
		agent.NewCoder(llmClient, defaultModel),
		agent.NewReviewer(llmClient, defaultModel),
		agent.NewTester(llmClient, defaultModel),
		cfg.Orchestration.MaxParallelSubagents,
	)
	strategySel := selector.NewStrategySelector(classifier, dbClient.Client,
		strategy.NewSingleShot(llmClient, defaultModel),
		strategy.NewIterative(llmClient, defaultModel,
			cfg.Orchestration.IterativeMaxIterations,
			cfg.Orchestration.IterativeBudget()),
		multiAgent,
	)

	// 6. Services and coordinator
	logs := logstream.NewHub()
	tasks := services.NewTaskService(dbClient.Client, publisher, github, cfg.GitHub)
	feedback := services.NewFeedbackService(dbClient.Client, nil, classifier, 0)
	coord := coordinator.New(dbClient.Client, tasks, strategySel, modelSel, tracker, abEngine, classifier, logs)

	retention := cleanup.NewService(cfg.Retention, dbClient.DB(), dbClient.Client, tasks, feedback)
	retention.Start(ctx)
	defer retention.Stop()

	// 7. HTTP server
	httpServer := api.NewServer(dbClient.Client, dbClient.DB(), tasks, feedback,
		coord, reg, tracker, abEngine, modelSel, logs)

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Server.Addr()
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("DevFlow started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop accepting requests, then drain executions.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	coordCtx, coordCancel := context.WithTimeout(ctx, shutdownTimeout)
	defer coordCancel()
	if err := coord.Shutdown(coordCtx); err != nil {
		slog.Warn("Shutdown timeout exceeded, abandoning in-flight executions", "error", err)
	} else {
		slog.Info("Coordinator stopped gracefully")
	}

	slog.Info("Shutdown complete")
}
