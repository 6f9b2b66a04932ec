// Reddalert server: provides the HTTP management API, runs the
// poll/match/alert pipeline on a schedule, and enforces data retention.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/reddalert/reddalert/pkg/api"
	"github.com/reddalert/reddalert/pkg/config"
	"github.com/reddalert/reddalert/pkg/database"
	"github.com/reddalert/reddalert/pkg/dispatch"
	"github.com/reddalert/reddalert/pkg/engine"
	"github.com/reddalert/reddalert/pkg/ingest"
	"github.com/reddalert/reddalert/pkg/reddit"
	"github.com/reddalert/reddalert/pkg/scheduler"
	"github.com/reddalert/reddalert/pkg/version"
)

func main() {
	// Load .env when present; a plain environment works too.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, continuing with existing environment", "error", err)
	}

	slog.Info("Starting Reddalert", "version", version.Full())

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
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

	// 3. Build the pipeline stages
	redditClient := reddit.NewClient(reddit.Config{
		BaseURL:         cfg.Poller.BaseURL,
		RequestTimeout:  cfg.Poller.RequestTimeout,
		RequestInterval: cfg.Poller.RequestInterval,
	})
	poller := ingest.NewPoller(dbClient.Client, redditClient, cfg.Poller.FetchLimit)
	matchEngine := engine.NewEngine(dbClient.Client)
	dispatcher := dispatch.NewDispatcher(dbClient.Client, cfg.Dispatcher, nil)
	pipeline := scheduler.NewPipeline(poller, matchEngine, dispatcher)

	// 4. Start the scheduler (pipeline ticks plus daily cleanup)
	sched := scheduler.NewScheduler(dbClient.Client, pipeline, cfg)
	sched.Start(ctx)
	defer sched.Stop()

	// 5. Start HTTP server (non-blocking)
	sender := dispatch.NewWebhookSender(cfg.Dispatcher.MaxAttempts, cfg.Dispatcher.RetryBackoffs)
	server := api.NewServer(dbClient.Client, dbClient.DB(), pipeline, sender)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Reddalert started successfully",
		"poll_interval", cfg.Poller.PollInterval,
		"retention_days", cfg.Retention.RetentionDays)

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown: stop accepting requests, then the scheduler
	// and database close via the deferred calls above.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown incomplete", "error", err)
	}

	slog.Info("Reddalert stopped")
}
