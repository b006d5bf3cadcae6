// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package session

import (
	"errors"
	"fmt"
	"time"
)

// Config configures the Badger session store.
type Config struct {
	// Path is the Badger directory. Ignored when InMemory is set.
	Path string `koanf:"path"`

	// InMemory keeps all data in memory; used by tests and the CLI.
	InMemory bool `koanf:"in_memory"`

	// SyncWrites fsyncs every commit.
	SyncWrites bool `koanf:"sync_writes"`

	// MaxConflictRetries bounds retries of an update that lost an
	// optimistic-transaction race.
	MaxConflictRetries int `koanf:"max_conflict_retries"`

	// GCInterval is how often the value log GC service runs.
	GCInterval time.Duration `koanf:"gc_interval"`

	// GCDiscardRatio is passed to RunValueLogGC.
	GCDiscardRatio float64 `koanf:"gc_discard_ratio"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		Path:               "/data/sessions",
		SyncWrites:         true,
		MaxConflictRetries: 5,
		GCInterval:         10 * time.Minute,
		GCDiscardRatio:     0.5,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error
	if !c.InMemory && c.Path == "" {
		errs = append(errs, errors.New("path is required unless in_memory is set"))
	}
	if c.MaxConflictRetries < 1 {
		errs = append(errs, fmt.Errorf("max_conflict_retries must be at least 1, got %d", c.MaxConflictRetries))
	}
	if c.GCDiscardRatio <= 0 || c.GCDiscardRatio >= 1 {
		errs = append(errs, fmt.Errorf("gc_discard_ratio must be in (0, 1), got %v", c.GCDiscardRatio))
	}
	if c.GCInterval <= 0 {
		errs = append(errs, fmt.Errorf("gc_interval must be positive, got %v", c.GCInterval))
	}
	return errors.Join(errs...)
}
