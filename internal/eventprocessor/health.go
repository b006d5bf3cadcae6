// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"context"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// ComponentHealth represents the health status of a single component.
type ComponentHealth struct {
	// Healthy indicates whether the component is functioning.
	Healthy bool `json:"healthy"`
	// Degraded indicates the component is operational but experiencing issues.
	Degraded bool `json:"degraded,omitempty"`
	// Name is the component identifier.
	Name string `json:"name"`
	// Message provides additional context about the health status.
	Message string `json:"message,omitempty"`
	// Error contains error details if unhealthy.
	Error string `json:"error,omitempty"`
	// LastCheck is when the health check was performed.
	LastCheck time.Time `json:"last_check"`
	// Details contains component-specific health information.
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthCheckable is implemented by components that support health checking.
type HealthCheckable interface {
	HealthCheck(ctx context.Context) ComponentHealth
}

// HealthCheck implements HealthCheckable for Publisher.
func (p *Publisher) HealthCheck(_ context.Context) ComponentHealth {
	health := ComponentHealth{
		Name:      "event_publisher",
		LastCheck: time.Now(),
		Details:   map[string]interface{}{},
	}

	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		health.Error = "publisher is closed"
		return health
	}

	if p.circuitBreaker != nil {
		state := p.circuitBreaker.State()
		health.Details["circuit_breaker_state"] = state.String()

		switch state {
		case gobreaker.StateOpen:
			health.Error = "circuit breaker is open"
			return health
		case gobreaker.StateHalfOpen:
			health.Healthy = true
			health.Degraded = true
			health.Message = "circuit breaker is half-open"
			return health
		}
	}

	health.Healthy = true
	health.Message = "publisher is operational"
	return health
}

// HealthCheck implements HealthCheckable for Processor.
func (p *Processor) HealthCheck(_ context.Context) ComponentHealth {
	health := ComponentHealth{
		Name:      "event_processor",
		LastCheck: time.Now(),
		Details: map[string]interface{}{
			"handlers": p.HandlerCount(),
		},
	}

	if !p.IsRunning() {
		health.Error = "router is not running"
		return health
	}
	health.Healthy = true
	health.Message = "router is running"
	return health
}

// HealthCheck implements HealthCheckable for Transport.
func (t *Transport) HealthCheck(_ context.Context) ComponentHealth {
	health := ComponentHealth{
		Name:      "event_transport",
		LastCheck: time.Now(),
		Details: map[string]interface{}{
			"transport": t.name,
			"embedded":  t.server != nil,
		},
	}

	if !t.Connected() {
		health.Error = "broker connection is down"
		return health
	}
	health.Healthy = true
	health.Message = t.name + " transport is connected"
	return health
}
