// Package config defines service configuration structures and loading hooks.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory session queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of scoring workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the session deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// ShardCount configures the number of shards in the report store.
	ShardCount int `koanf:"shard_count"`

	// SpamThresholdMS is the minimum inter-event gap; closer events are
	// dropped as accidental double-taps.
	SpamThresholdMS int64 `koanf:"spam_threshold_ms"`

	// HesitationThresholdMS is the response-time gap above which an
	// attempt counts as a hesitation.
	HesitationThresholdMS int64 `koanf:"hesitation_threshold_ms"`

	// MinEvents is the minimum denoised event count for a scorable session.
	MinEvents int `koanf:"min_events"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and currently
// unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":9080",
		QueueSize:             100_000,
		WorkerCount:           runtime.NumCPU() * 2,
		DedupeSize:            50_000,
		ShardCount:            8,
		SpamThresholdMS:       100,
		HesitationThresholdMS: 1500,
		MinEvents:             5,
	}
}
