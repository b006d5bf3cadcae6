// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/lutem/internal/recommend"
	"github.com/tomtom215/lutem/internal/session"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Database   DatabaseConfig   `koanf:"database"`
	Sessions   session.Config   `koanf:"sessions"`
	NATS       NATSConfig       `koanf:"nats"`
	Recommend  recommend.Config `koanf:"recommend"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8080)
//   - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	CORSOrigins  []string      `koanf:"cors_origins"`
	Environment  string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address in host:port form.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// DatabaseConfig holds DuckDB catalog settings.
type DatabaseConfig struct {
	Path      string `koanf:"path"`       // ":memory:" or empty for an in-memory catalog
	MaxMemory string `koanf:"max_memory"` // DuckDB memory limit, e.g. "1GB"
	Threads   int    `koanf:"threads"`    // 0 = use NumCPU
	SeedPath  string `koanf:"seed_path"`  // Optional YAML catalog loaded into an empty database at startup
}

// NATSConfig holds event transport settings. When Enabled is false,
// session events travel over an in-process channel.
type NATSConfig struct {
	// Enabled switches the event bus from the in-process channel to NATS.
	Enabled bool `koanf:"enabled"`

	// URL is the NATS server connection URL. Ignored with EmbeddedServer.
	URL string `koanf:"url"`

	// EmbeddedServer starts a NATS server inside the process.
	EmbeddedServer bool `koanf:"embedded_server"`

	// Host and Port are the embedded server's listen address.
	// Port -1 picks a random free port.
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// SubscribersCount is the number of concurrent message processors.
	SubscribersCount int `koanf:"subscribers_count"`

	// QueueGroup load-balances consumers across instances.
	QueueGroup string `koanf:"queue_group"`

	// RouterRetryCount is the maximum number of retries for failed messages.
	RouterRetryCount int `koanf:"router_retry_count"`

	// RouterRetryInitialInterval is the initial backoff between retries.
	RouterRetryInitialInterval time.Duration `koanf:"router_retry_initial_interval"`

	// RouterCloseTimeout bounds router shutdown.
	RouterCloseTimeout time.Duration `koanf:"router_close_timeout"`

	// PublishTimeout bounds a single event publish.
	PublishTimeout time.Duration `koanf:"publish_timeout"`
}

// SupervisorConfig configures the suture supervisor tree.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// String returns a short summary suitable for a startup log line.
func (c *Config) String() string {
	return fmt.Sprintf("server=%s database=%s sessions=%s nats=%t",
		c.Server.Addr(), c.Database.Path, c.sessionsLocation(), c.NATS.Enabled)
}

func (c *Config) sessionsLocation() string {
	if c.Sessions.InMemory {
		return ":memory:"
	}
	return c.Sessions.Path
}
