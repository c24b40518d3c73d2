package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host.Hostname)
	assert.Equal(t, 4096, cfg.Host.Port)
	assert.Equal(t, 24*time.Hour, cfg.Daemon.CatchUpWindow)
	assert.False(t, cfg.Daemon.DetectionsDisabled)
	assert.Equal(t, "code", cfg.Fitter.AgentMode)
	assert.Equal(t, "openai/gpt-4o", cfg.Fitter.Model)
	assert.Equal(t, "localhost", cfg.Fitter.Host)
	assert.Equal(t, 4096, cfg.Fitter.Port)
	assert.Equal(t, 2, cfg.Workers.WorkerCount)
	assert.True(t, cfg.Retention.Enabled)
	assert.Equal(t, 90, cfg.Retention.SessionRetentionDays)
	assert.Equal(t, 8080, cfg.HTTPPort)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HOST_ADDR", "agent-host.internal:9100")
	t.Setenv("CATCH_UP_WINDOW", "6h")
	t.Setenv("GOVERNOR_DISABLED", "true")
	t.Setenv("GOVERNOR_MAX_STEPS", "42")
	t.Setenv("GOVERNOR_MAX_COST_USD", "3.5")
	t.Setenv("FITTER_AGENT_MODE", "architect")
	t.Setenv("FITTER_MAX_TOKEN_BUDGET", "50000")
	t.Setenv("GOVERNOR_WORKER_COUNT", "4")
	t.Setenv("RETENTION_ENABLED", "false")
	t.Setenv("RETENTION_SESSION_DAYS", "30")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "agent-host.internal", cfg.Host.Hostname)
	assert.Equal(t, 9100, cfg.Host.Port)
	assert.Equal(t, 6*time.Hour, cfg.Daemon.CatchUpWindow)
	assert.True(t, cfg.Daemon.DetectionsDisabled)
	assert.Equal(t, 42, cfg.Daemon.DetectorConfig.MaxSteps)
	assert.InDelta(t, 3.5, cfg.Daemon.DetectorConfig.MaxCostUSD, 1e-9)
	assert.Equal(t, "architect", cfg.Fitter.AgentMode)
	assert.Equal(t, 50000, cfg.Fitter.MaxTokenBudget)
	assert.Equal(t, "agent-host.internal", cfg.Fitter.Host)
	assert.Equal(t, 4, cfg.Workers.WorkerCount)
	assert.False(t, cfg.Retention.Enabled)
	assert.Equal(t, 30, cfg.Retention.SessionRetentionDays)
	assert.Equal(t, 9090, cfg.HTTPPort)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("GOVERNOR_MAX_STEPS", "lots")
	t.Setenv("CATCH_UP_WINDOW", "yesterday")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Daemon.DetectorConfig.MaxSteps)
	assert.Equal(t, 24*time.Hour, cfg.Daemon.CatchUpWindow)
}

func TestLoad_InvalidHostAddr(t *testing.T) {
	for _, addr := range []string{"no-port", ":4096", "host:", "host:zero", "host:-1"} {
		t.Setenv("HOST_ADDR", addr)
		_, err := Load()
		assert.Error(t, err, "addr %q", addr)
	}
}

func TestSplitHostAddr(t *testing.T) {
	host, port, err := splitHostAddr("127.0.0.1:4096")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)
	assert.Equal(t, 4096, port)
}
