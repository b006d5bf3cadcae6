// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/lutem/internal/models"
)

// ScoredItem is an item with its final score and rule breakdown.
type ScoredItem struct {
	// Item is a copy of the catalog entry.
	Item models.Item `json:"item"`

	// Score is the folded rule total, never negative.
	Score float64 `json:"score"`

	// Scores maps rule name to its contribution; rules that did not fire
	// are absent.
	Scores map[string]float64 `json:"scores,omitempty"`

	// Reasons lists every reason in rule order.
	Reasons []string `json:"reasons,omitempty"`

	// Reason is the display sentence built from the leading reasons.
	Reason string `json:"reason"`

	// Rejected is true when a hard gate excluded the item.
	Rejected bool `json:"rejected,omitempty"`
}

// CatalogSource supplies the items eligible for recommendation.
// Implementations must exclude items that are not fully classified.
type CatalogSource interface {
	FetchEligibleCatalog(ctx context.Context) ([]models.Item, error)
}

// ProfileSource builds a user's satisfaction profile.
type ProfileSource interface {
	Profile(ctx context.Context, userID string) (*models.SatisfactionProfile, error)
}

// SessionRecorder persists the chosen recommendation.
type SessionRecorder interface {
	Create(ctx context.Context, item *models.Item, snapshot models.ContextSnapshot) (*models.Session, error)
}

// Metrics contains engine counters.
type Metrics struct {
	TotalRequests   int64         `json:"total_requests"`
	Recommended     int64         `json:"recommended"`
	NoMatch         int64         `json:"no_match"`
	InvalidRequests int64         `json:"invalid_requests"`
	Errors          int64         `json:"errors"`
	ScoringFailures int64         `json:"scoring_failures"`
	LastLatency     time.Duration `json:"last_latency"`
	CatalogBreaker  string        `json:"catalog_breaker"`
	ProfileBreaker  string        `json:"profile_breaker"`
}
