// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"fmt"
	"time"

	"github.com/tomtom215/lutem/internal/resilience"
)

// ServerConfig holds embedded NATS server configuration.
// Port -1 picks a random free port.
type ServerConfig struct {
	Host       string
	Port       int
	MaxPayload int32
}

// DefaultServerConfig returns defaults for the embedded NATS server.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:       "127.0.0.1",
		Port:       4222,
		MaxPayload: 1024 * 1024, // 1MB
	}
}

// NATSConfig describes a NATS transport. When Embedded is set the URL is
// taken from the embedded server once it is ready.
type NATSConfig struct {
	URL              string
	Embedded         bool
	Server           ServerConfig
	QueueGroup       string
	SubscribersCount int
	MaxReconnects    int
	ReconnectWait    time.Duration
	ReconnectBuffer  int
	WriteTimeout     time.Duration
	CloseTimeout     time.Duration
}

// DefaultNATSConfig returns defaults for a NATS transport.
func DefaultNATSConfig() NATSConfig {
	return NATSConfig{
		URL:              "nats://127.0.0.1:4222",
		Embedded:         true,
		Server:           DefaultServerConfig(),
		QueueGroup:       "lutem",
		SubscribersCount: 2,
		MaxReconnects:    -1, // Unlimited
		ReconnectWait:    2 * time.Second,
		ReconnectBuffer:  8 * 1024 * 1024, // 8MB
		WriteTimeout:     5 * time.Second,
		CloseTimeout:     30 * time.Second,
	}
}

// Validate checks the NATS transport settings.
func (c *NATSConfig) Validate() error {
	if !c.Embedded && c.URL == "" {
		return fmt.Errorf("%w: url is required without an embedded server", ErrInvalidConfig)
	}
	if c.SubscribersCount < 1 {
		return fmt.Errorf("%w: subscribers_count must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// RouterConfig holds configuration for the Watermill router.
type RouterConfig struct {
	// CloseTimeout is how long to wait for handlers to finish when closing.
	CloseTimeout time.Duration

	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64

	// DeduplicationTTL is how long an event ID is remembered. Zero disables it.
	DeduplicationTTL time.Duration

	// PoisonQueueTopic receives messages that exhaust their retries.
	// Empty disables the poison queue.
	PoisonQueueTopic string
}

// DefaultRouterConfig returns production defaults for the router.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CloseTimeout:         30 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     5 * time.Second,
		RetryMultiplier:      2.0,
		DeduplicationTTL:     10 * time.Minute,
	}
}

// CircuitBreakerConfig holds the publish breaker settings.
type CircuitBreakerConfig = resilience.BreakerConfig

// DefaultCircuitBreakerConfig returns production defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          10 * time.Second,
		FailureThreshold: 5,
	}
}
