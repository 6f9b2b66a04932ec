package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 60*time.Minute, cfg.Poller.PollInterval)
	assert.Equal(t, 25, cfg.Poller.FetchLimit)
	assert.Equal(t, 90, cfg.Retention.RetentionDays)
	assert.Equal(t, 3, cfg.Retention.CleanupHour)
	assert.Equal(t, 3, cfg.Dispatcher.BatchThreshold)
	assert.Equal(t, 120*time.Second, cfg.Dispatcher.BatchWindow)
	require.Len(t, cfg.Dispatcher.RetryBackoffs, cfg.Dispatcher.MaxAttempts-1)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("POLL_INTERVAL_MINUTES", "15")
	t.Setenv("RETENTION_DAYS", "30")
	t.Setenv("PORT", "9090")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Poller.PollInterval)
	assert.Equal(t, 30, cfg.Retention.RetentionDays)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadFromEnvRejectsInvalid(t *testing.T) {
	t.Setenv("POLL_INTERVAL_MINUTES", "0")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL_MINUTES")
}

func TestLoadFromEnvRejectsNonNumeric(t *testing.T) {
	t.Setenv("RETENTION_DAYS", "never")

	_, err := LoadFromEnv()
	require.Error(t, err)
}
