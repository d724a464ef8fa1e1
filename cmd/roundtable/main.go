// Roundtable debate server — HTTP API with SSE streaming, debate
// orchestration, and background retention cleanup.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/roundtable-ai/roundtable/pkg/api"
	"github.com/roundtable-ai/roundtable/pkg/billing"
	"github.com/roundtable-ai/roundtable/pkg/cleanup"
	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/database"
	"github.com/roundtable-ai/roundtable/pkg/debate"
	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/personality"
	"github.com/roundtable-ai/roundtable/pkg/pricing"
	"github.com/roundtable-ai/roundtable/pkg/services"
	"github.com/roundtable-ai/roundtable/pkg/tokens"
	"github.com/roundtable-ai/roundtable/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	logger := slog.Default()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		logger.Warn("could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		logger.Info("loaded environment", "path", envPath)
	}

	logger.Info("starting roundtable",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		logger.Error("failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("error closing database client", "error", err)
		}
	}()
	logger.Info("connected to PostgreSQL database")

	debateRepo := services.NewDebateService(dbClient.Client)

	// 3. One-time startup orphan recovery: debates a previous process left
	// active become failed before any new work is accepted.
	if n, err := debateRepo.RecoverOrphans(ctx); err != nil {
		logger.Error("failed to recover orphaned debates", "error", err)
		// Non-fatal — continue
	} else if n > 0 {
		logger.Info("recovered orphaned debates", "count", n)
	}

	// 4. Pricing and usage
	resolver := pricing.NewResolver(logger)
	usageService := services.NewUsageService(dbClient.Client, resolver, logger)

	// 5. Debate orchestration
	counter := tokens.NewTiktokenCounter()
	llmClient := llm.NewAnyLLMClient(logger)
	personalities, err := personality.NewRegistry(cfg.Personalities.Dir, logger)
	if err != nil {
		logger.Error("failed to load personalities", "error", err)
		os.Exit(1)
	}

	executor := debate.NewExecutor(llmClient, personalities, counter, logger)
	engine := debate.NewEngine(executor, logger)
	registry := debate.NewRegistry()
	ledger := billing.NewMemoryLedger()
	debates := debate.NewService(debateRepo, usageService, ledger, engine, registry, personalities, logger)
	logger.Info("debate engine initialized")

	// 6. Retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, debateRepo, logger)
	cleanupService.Start(ctx)

	// 7. HTTP server
	apiServer, err := api.NewServer(cfg, dbClient, debates, usageService, personalities, logger)
	if err != nil {
		logger.Error("failed to create API server", "error", err)
		os.Exit(1)
	}
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           apiServer.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: cancel live debates first so their streams end
	// and persist terminal state, then drain the HTTP server.
	if n := registry.ActiveCount(); n > 0 {
		logger.Info("cancelling live debates", "count", n)
	}
	registry.CancelAll()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	cleanupService.Stop()
	logger.Info("shutdown complete")
}
