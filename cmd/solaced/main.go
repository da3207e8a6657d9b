// Package main implements the solaced daemon: a retrieval-and-affect
// engine for mental-wellness conversations, exposed over HTTP.
//
// Usage:
//
//	# Start with defaults (requires SOLACED_LLM_API_KEY)
//	solaced serve
//
//	# Start with a config file
//	solaced serve --config /etc/solaced/config.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solaceworks/solaced/internal/config"
	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/embedding"
	httpserver "github.com/solaceworks/solaced/internal/http"
	"github.com/solaceworks/solaced/internal/kvstore"
	"github.com/solaceworks/solaced/internal/llm"
	"github.com/solaceworks/solaced/internal/logging"
	"github.com/solaceworks/solaced/internal/orchestrator"
	"github.com/solaceworks/solaced/internal/sentiment"
	"github.com/solaceworks/solaced/internal/vectorstore"
)

// Version information (set via ldflags during build)
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:     "solaced",
	Short:   "Retrieval-and-affect engine for mental-wellness conversations",
	Version: version,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the solaced HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runServe wires the engine together and blocks until shutdown:
// configuration, logger, store backend, context tracker, seeded vector
// index, completion client, orchestrator, HTTP server.
func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logging.Sync(logger)

	logger.Info("starting solaced",
		zap.String("version", version),
		zap.Int("port", cfg.Server.Port),
		zap.String("storage_backend", cfg.Storage.Backend))

	store, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	tracker := contexttracker.NewTracker(store, logger)

	index := vectorstore.NewIndex(embedding.New())
	index.SeedKnowledgeBase()
	logger.Info("knowledge base seeded", zap.Int("documents", index.Count()))

	client, err := llm.NewGeminiClient(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize completion client: %w", err)
	}

	engine := orchestrator.NewEngine(tracker, index, sentiment.NewAnalyzer(), client, logger)

	srv, err := httpserver.NewServer(engine, tracker, logger, &httpserver.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	})
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// newStore creates the configured key-value store backend.
func newStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return kvstore.NewMemoryStore(), nil
	case config.StorageFile:
		return kvstore.NewFileStore(cfg.Storage.Dir)
	case config.StorageRedis:
		return kvstore.NewRedisStore(ctx, cfg.Storage.Redis)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
