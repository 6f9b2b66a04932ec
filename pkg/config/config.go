// Package config holds application configuration with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates all application-level settings.
type Config struct {
	Server     ServerConfig
	Poller     PollerConfig
	Dispatcher DispatcherConfig
	Retention  RetentionConfig
}

// ServerConfig contains HTTP API server settings.
type ServerConfig struct {
	// Port the API server listens on.
	Port int

	// ShutdownTimeout is the max time to wait for in-flight requests
	// during graceful shutdown.
	ShutdownTimeout time.Duration
}

// PollerConfig controls the ingestion loop.
type PollerConfig struct {
	// PollInterval is how often the full pipeline runs.
	PollInterval time.Duration

	// FetchLimit is the number of items requested per upstream listing.
	FetchLimit int

	// RequestInterval is the minimum spacing between upstream requests.
	RequestInterval time.Duration

	// RequestTimeout bounds a single upstream request.
	RequestTimeout time.Duration

	// BaseURL of the upstream JSON feeds. Overridable for tests.
	BaseURL string
}

// DispatcherConfig controls alert delivery.
type DispatcherConfig struct {
	// BatchThreshold is the minimum number of pending matches for a
	// tenant that get collapsed into a single digest notification.
	BatchThreshold int

	// BatchWindow is the maximum detection-time spread of a batch.
	BatchWindow time.Duration

	// MaxAttempts is how many times a webhook delivery is tried.
	MaxAttempts int

	// RetryBackoffs are the sleeps between attempts. Length must be
	// MaxAttempts-1.
	RetryBackoffs []time.Duration
}

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RetentionDays is how many days ingested content is kept before
	// the daily cleanup deletes it along with its matches.
	RetentionDays int

	// CleanupHour is the local hour of day the cleanup runs at.
	CleanupHour int
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Poller: PollerConfig{
			PollInterval:    60 * time.Minute,
			FetchLimit:      25,
			RequestInterval: 1 * time.Second,
			RequestTimeout:  30 * time.Second,
			BaseURL:         "https://www.reddit.com",
		},
		Dispatcher: DispatcherConfig{
			BatchThreshold: 3,
			BatchWindow:    120 * time.Second,
			MaxAttempts:    3,
			RetryBackoffs:  []time.Duration{1 * time.Second, 2 * time.Second},
		},
		Retention: RetentionConfig{
			RetentionDays: 90,
			CleanupHour:   3,
		},
	}
}

// LoadFromEnv returns the defaults with environment variable overrides
// applied.
func LoadFromEnv() (*Config, error) {
	cfg := Default()

	if err := overrideInt("PORT", &cfg.Server.Port); err != nil {
		return nil, err
	}

	pollMinutes := int(cfg.Poller.PollInterval / time.Minute)
	if err := overrideInt("POLL_INTERVAL_MINUTES", &pollMinutes); err != nil {
		return nil, err
	}
	if pollMinutes < 1 {
		return nil, fmt.Errorf("POLL_INTERVAL_MINUTES must be at least 1, got %d", pollMinutes)
	}
	cfg.Poller.PollInterval = time.Duration(pollMinutes) * time.Minute

	if err := overrideInt("POLL_FETCH_LIMIT", &cfg.Poller.FetchLimit); err != nil {
		return nil, err
	}
	if v := os.Getenv("REDDIT_BASE_URL"); v != "" {
		cfg.Poller.BaseURL = v
	}

	if err := overrideInt("RETENTION_DAYS", &cfg.Retention.RetentionDays); err != nil {
		return nil, err
	}
	if cfg.Retention.RetentionDays < 1 {
		return nil, fmt.Errorf("RETENTION_DAYS must be at least 1, got %d", cfg.Retention.RetentionDays)
	}

	return cfg, nil
}

func overrideInt(key string, target *int) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = parsed
	return nil
}
