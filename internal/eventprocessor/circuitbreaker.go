// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"github.com/ThreeDotsLabs/watermill"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/lutem/internal/resilience"
)

// NewCircuitBreaker creates the publish breaker. Transitions are logged
// through the Watermill logger so they sit next to the router's own output.
func NewCircuitBreaker(cfg CircuitBreakerConfig, logger watermill.LoggerAdapter) *gobreaker.CircuitBreaker[interface{}] {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return resilience.NewBreaker[interface{}](cfg, func(name string, from, to gobreaker.State) {
		logger.Info("Circuit breaker state transition", watermill.LogFields{
			"breaker": name,
			"from":    from.String(),
			"to":      to.String(),
		})
	})
}
