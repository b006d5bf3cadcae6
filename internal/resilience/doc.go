// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

// Package resilience wraps sony/gobreaker for the collaborator calls that
// Lutem makes on a request's behalf: catalog and profile fetches in the
// recommendation engine, and session event publishing.
//
// Breakers open after a configured number of consecutive failures, export
// their state and results as Prometheus metrics, and report transitions
// through a caller-supplied hook so each package logs them with its own
// logger.
//
// Execute is context-aware. A call that fails after the caller's context
// has ended (client disconnect, request deadline) is counted as a success:
// it says nothing about the collaborator's health, and counting it would let
// a burst of abandoned requests open a breaker in front of a healthy
// dependency. Timeouts the callee applies on its own derived context still
// count as failures.
//
//	cb := resilience.NewBreaker[[]models.Item](resilience.BreakerConfig{
//	    Name:             "catalog",
//	    MaxRequests:      1,
//	    Interval:         time.Minute,
//	    Timeout:          30 * time.Second,
//	    FailureThreshold: 5,
//	}, nil)
//
//	items, err := resilience.Execute(ctx, cb, func() ([]models.Item, error) {
//	    return db.FetchEligibleCatalog(ctx)
//	})
package resilience
