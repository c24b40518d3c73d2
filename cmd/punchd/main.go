// punchd observes an agent host's event stream, mints punches, governs
// runaway sessions, and serves the punch-card validation API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/punchd-io/punchd/pkg/api"
	"github.com/punchd-io/punchd/pkg/cleanup"
	"github.com/punchd-io/punchd/pkg/config"
	"github.com/punchd-io/punchd/pkg/daemon"
	"github.com/punchd-io/punchd/pkg/database"
	"github.com/punchd-io/punchd/pkg/governor"
	"github.com/punchd-io/punchd/pkg/governorworker"
	"github.com/punchd-io/punchd/pkg/host"
	"github.com/punchd-io/punchd/pkg/punchcard"
	"github.com/punchd-io/punchd/pkg/services"
	"github.com/punchd-io/punchd/pkg/version"
)

func main() {
	envPath := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	slog.Info("Starting punchd", "version", version.Version)

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
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

	// 3. Initialize services
	writer := services.NewWriter(dbClient.Client)
	validator := punchcard.NewValidator(writer.Punches, writer.Cards, writer.ChildRels)
	slog.Info("Services initialized")

	// 4. Create agent-host client
	hostClient := host.NewClient(cfg.Host.Hostname, cfg.Host.Port)
	slog.Info("Agent host client initialized",
		"hostname", cfg.Host.Hostname, "port", cfg.Host.Port)

	// 5. Start governor pool (before the daemon, which feeds it)
	var pool *governorworker.Pool
	if !cfg.Daemon.DetectionsDisabled {
		killer := governor.NewKiller(hostClient, writer.Punches)
		diagnoser := governor.NewDiagnoser(hostClient)
		dispatcher := host.NewDispatcher(hostClient)
		fitter := governor.NewFitter(dispatcher, cfg.Fitter)
		pool = governorworker.NewPool(killer, diagnoser, fitter, cfg.Workers)
		pool.Start(ctx)
	} else {
		slog.Info("Governor disabled")
	}

	// 6. Start observation daemon
	var detections daemon.DetectionHandler
	if pool != nil {
		detections = pool
	}
	obs := daemon.New(hostClient, writer, detections, cfg.Daemon)

	daemonCtx, daemonCancel := context.WithCancel(ctx)
	defer daemonCancel()
	daemonErrCh := make(chan error, 1)
	go func() {
		if err := obs.Run(daemonCtx); err != nil {
			daemonErrCh <- err
		}
	}()

	// 7. Start retention loop
	var retention *cleanup.Service
	if cfg.Retention.Enabled {
		retention = cleanup.NewService(dbClient.Client, cfg.Retention)
		retention.Start(ctx)
	} else {
		slog.Info("Retention disabled")
	}

	// 8. Start HTTP server (non-blocking)
	var govStats api.GovernorStats
	if pool != nil {
		govStats = pool
	}
	httpServer := api.NewServer(dbClient, writer, validator, obs, govStats)
	httpErrCh := make(chan error, 1)
	go func() {
		addr := ":" + strconv.Itoa(cfg.HTTPPort)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			httpErrCh <- err
		}
	}()

	slog.Info("punchd started successfully")

	// 9. Wait for shutdown signal or fatal error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-daemonErrCh:
		slog.Error("Daemon error triggered shutdown", "error", err)
	case err := <-httpErrCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: daemon first (stops feeding the governor), then
	// the governor pool (finishes in-flight kill pipelines), then HTTP.
	daemonCancel()
	obs.Stop()
	slog.Info("Daemon stopped")

	if retention != nil {
		retention.Stop()
	}

	if pool != nil {
		done := make(chan struct{})
		go func() {
			pool.Stop()
			close(done)
		}()
		select {
		case <-done:
			slog.Info("Governor pool stopped gracefully")
		case <-time.After(2 * time.Minute):
			slog.Warn("Governor pool shutdown timeout exceeded")
		}
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
