// Package config loads the punchd application configuration from the
// environment. Database settings live in pkg/database; everything else —
// host endpoint, governor thresholds, fitter dispatch, HTTP surface — is
// resolved here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/punchd-io/punchd/pkg/cleanup"
	"github.com/punchd-io/punchd/pkg/daemon"
	"github.com/punchd-io/punchd/pkg/governor"
	"github.com/punchd-io/punchd/pkg/governorworker"
)

// HostConfig locates the agent host.
type HostConfig struct {
	Hostname string
	Port     int
}

// Config is the umbrella configuration for the punchd process.
type Config struct {
	Host      HostConfig
	Daemon    daemon.Config
	Fitter    governor.FitterConfig
	Workers   governorworker.Config
	Retention cleanup.Config
	HTTPPort  int
}

// Load resolves configuration from environment variables, falling back to
// defaults for anything unset.
func Load() (*Config, error) {
	hostname, port, err := splitHostAddr(getEnv("HOST_ADDR", "localhost:4096"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOST_ADDR: %w", err)
	}

	daemonCfg := daemon.DefaultConfig()
	daemonCfg.CatchUpWindow = getEnvDuration("CATCH_UP_WINDOW", daemonCfg.CatchUpWindow)
	daemonCfg.DetectionsDisabled = getEnvBool("GOVERNOR_DISABLED", false)

	det := governor.DefaultDetectorConfig()
	det.MaxSteps = getEnvInt("GOVERNOR_MAX_STEPS", det.MaxSteps)
	det.MaxCostUSD = getEnvFloat("GOVERNOR_MAX_COST_USD", det.MaxCostUSD)
	det.MinCycleLength = getEnvInt("GOVERNOR_MIN_CYCLE_LENGTH", det.MinCycleLength)
	det.MaxCycleLength = getEnvInt("GOVERNOR_MAX_CYCLE_LENGTH", det.MaxCycleLength)
	det.CycleRepetitions = getEnvInt("GOVERNOR_CYCLE_REPETITIONS", det.CycleRepetitions)
	det.CacheWindowSize = getEnvInt("GOVERNOR_CACHE_WINDOW_SIZE", det.CacheWindowSize)
	det.CachePlateauRatio = getEnvFloat("GOVERNOR_CACHE_PLATEAU_RATIO", det.CachePlateauRatio)
	daemonCfg.DetectorConfig = det

	fitter := governor.DefaultFitterConfig()
	fitter.AgentMode = getEnv("FITTER_AGENT_MODE", fitter.AgentMode)
	fitter.Model = getEnv("FITTER_FALLBACK_MODEL", fitter.Model)
	fitter.MaxTokenBudget = getEnvInt("FITTER_MAX_TOKEN_BUDGET", fitter.MaxTokenBudget)
	fitter.MSPerDollar = getEnvFloat("FITTER_MS_PER_DOLLAR", fitter.MSPerDollar)
	fitter.MinTimeoutMS = getEnvInt("FITTER_MIN_TIMEOUT_MS", fitter.MinTimeoutMS)
	fitter.MaxTimeoutMS = getEnvInt("FITTER_MAX_TIMEOUT_MS", fitter.MaxTimeoutMS)
	fitter.Host = hostname
	fitter.Port = port

	workers := governorworker.DefaultConfig()
	workers.WorkerCount = getEnvInt("GOVERNOR_WORKER_COUNT", workers.WorkerCount)
	workers.QueueSize = getEnvInt("GOVERNOR_QUEUE_SIZE", workers.QueueSize)

	retention := cleanup.DefaultConfig()
	retention.Enabled = getEnvBool("RETENTION_ENABLED", retention.Enabled)
	retention.SessionRetentionDays = getEnvInt("RETENTION_SESSION_DAYS", retention.SessionRetentionDays)
	retention.DetailTTL = getEnvDuration("RETENTION_DETAIL_TTL", retention.DetailTTL)
	retention.Interval = getEnvDuration("RETENTION_INTERVAL", retention.Interval)

	return &Config{
		Host:      HostConfig{Hostname: hostname, Port: port},
		Daemon:    daemonCfg,
		Fitter:    fitter,
		Workers:   workers,
		Retention: retention,
		HTTPPort:  getEnvInt("HTTP_PORT", 8080),
	}, nil
}

func splitHostAddr(addr string) (string, int, error) {
	host, portStr, ok := strings.Cut(addr, ":")
	if !ok || host == "" {
		return "", 0, fmt.Errorf("expected host:port, got %q", addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return "", 0, fmt.Errorf("invalid port in %q", addr)
	}
	return host, port, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
