// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package main

import (
	"context"
	"time"

	"github.com/tomtom215/lutem/internal/eventprocessor"
	"github.com/tomtom215/lutem/internal/recommend"
)

// engineHealth reports engine counters and breaker states on the readiness
// probe. An open breaker degrades the engine without failing readiness;
// the catalog ping already decides that.
type engineHealth struct {
	engine *recommend.Engine
}

func (h engineHealth) HealthCheck(_ context.Context) eventprocessor.ComponentHealth {
	m := h.engine.GetMetrics()
	health := eventprocessor.ComponentHealth{
		Name:      "recommend_engine",
		Healthy:   true,
		LastCheck: time.Now(),
		Details: map[string]interface{}{
			"total_requests":   m.TotalRequests,
			"recommended":      m.Recommended,
			"no_match":         m.NoMatch,
			"invalid_requests": m.InvalidRequests,
			"errors":           m.Errors,
			"scoring_failures": m.ScoringFailures,
			"last_latency_ms":  m.LastLatency.Milliseconds(),
			"catalog_breaker":  m.CatalogBreaker,
			"profile_breaker":  m.ProfileBreaker,
		},
	}

	switch {
	case m.CatalogBreaker != "closed":
		health.Degraded = true
		health.Message = "catalog circuit breaker is " + m.CatalogBreaker
	case m.ProfileBreaker != "closed":
		health.Degraded = true
		health.Message = "profile circuit breaker is " + m.ProfileBreaker
	}
	return health
}
