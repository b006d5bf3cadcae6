// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/lutem/internal/resilience"
)

// newBreaker wraps a collaborator call site. Calls go through
// resilience.Execute so a request abandoned by its caller is not counted
// against the collaborator.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func newBreaker[T any](name string, cfg BreakerConfig, logger zerolog.Logger) *gobreaker.CircuitBreaker[T] {
	return resilience.NewBreaker[T](resilience.BreakerConfig{
		Name:             name,
		MaxRequests:      cfg.MaxRequests,
		Interval:         cfg.Interval,
		Timeout:          cfg.Timeout,
		FailureThreshold: cfg.FailureThreshold,
	}, func(name string, from, to gobreaker.State) {
		logger.Warn().
			Str("breaker", name).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("circuit breaker state transition")
	})
}
