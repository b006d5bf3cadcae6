// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lutem/internal/eventprocessor"
	"github.com/tomtom215/lutem/internal/models"
)

// Recommender produces ranked recommendations. Implemented by
// *recommend.Engine.
type Recommender interface {
	Recommend(ctx context.Context, req models.ContextRequest) (*models.RecommendationResult, error)
}

// SessionService manages the session lifecycle. Implemented by
// *session.Recorder.
type SessionService interface {
	Create(ctx context.Context, item *models.Item, snapshot models.ContextSnapshot) (*models.Session, error)
	SelectAlternative(ctx context.Context, item *models.Item, snapshot models.ContextSnapshot) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Start(ctx context.Context, id string) (*models.Session, error)
	End(ctx context.Context, id string) (*models.Session, error)
	Skip(ctx context.Context, id string) (*models.Session, error)
	RecordFeedback(ctx context.Context, id string, score int) (*models.Session, error)
}

// SatisfactionService serves per-user aggregates. Implemented by
// *satisfaction.Service.
type SatisfactionService interface {
	Profile(ctx context.Context, userID string) (*models.SatisfactionProfile, error)
	Stats(ctx context.Context, userID string) (*models.SatisfactionStats, error)
	Weekly(ctx context.Context, userID string) (*models.WeeklySummary, error)
}

// Catalog reads games. Implemented by *database.DB.
type Catalog interface {
	FetchEligibleCatalog(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	Ping(ctx context.Context) error
}

// Dependencies are the collaborators of Handler. Checkers are optional
// components reported by the readiness probe.
type Dependencies struct {
	Engine       Recommender
	Sessions     SessionService
	Satisfaction SatisfactionService
	Catalog      Catalog
	Checkers     []eventprocessor.HealthCheckable
	Version      string
	Logger       zerolog.Logger
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: body decoding and validation helpers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_recommend.go: recommendations and catalog
//   - handlers_sessions.go: session lifecycle and feedback
//   - handlers_satisfaction.go: per-user profile, stats and weekly summary
type Handler struct {
	engine       Recommender
	sessions     SessionService
	satisfaction SatisfactionService
	catalog      Catalog
	checkers     []eventprocessor.HealthCheckable
	version      string
	logger       zerolog.Logger
	startTime    time.Time
}

// NewHandler creates a new API handler.
//
//nolint:gocritic // Dependencies is copied once at startup
func NewHandler(deps Dependencies) *Handler {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		engine:       deps.Engine,
		sessions:     deps.Sessions,
		satisfaction: deps.Satisfaction,
		catalog:      deps.Catalog,
		checkers:     deps.Checkers,
		version:      version,
		logger:       deps.Logger.With().Str("component", "api").Logger(),
		startTime:    time.Now(),
	}
}
