// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/lutem/internal/metrics"
	"github.com/tomtom215/lutem/internal/models"
	"github.com/tomtom215/lutem/internal/resilience"
	"github.com/tomtom215/lutem/internal/validation"
)

// ErrNoCatalog is returned by NewEngine when no catalog source is given.
var ErrNoCatalog = errors.New("recommend: catalog source is required")

// Engine turns a context request into a ranked recommendation.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	scorer *Scorer

	catalog  CatalogSource
	profiles ProfileSource
	sessions SessionRecorder

	catalogBreaker *gobreaker.CircuitBreaker[[]models.Item]
	profileBreaker *gobreaker.CircuitBreaker[*models.SatisfactionProfile]

	// Metrics
	requestCount    atomic.Int64
	recommended     atomic.Int64
	noMatch         atomic.Int64
	invalidRequests atomic.Int64
	errorCount      atomic.Int64
	scoringFailures atomic.Int64
	lastLatency     atomic.Int64
}

// NewEngine creates a recommendation engine reading items from catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, catalog CatalogSource, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		return nil, ErrNoCatalog
	}

	log := logger.With().Str("component", "recommend").Logger()

	return &Engine{
		config:         cfg,
		logger:         log,
		scorer:         NewScorer(cfg.Weights, cfg.MaxReasons),
		catalog:        catalog,
		catalogBreaker: newBreaker[[]models.Item]("catalog", cfg.Breaker, log),
		profileBreaker: newBreaker[*models.SatisfactionProfile]("profile", cfg.Breaker, log),
	}, nil
}

// SetProfileSource enables personalization. Without it every request is
// scored as if the user had no history.
func (e *Engine) SetProfileSource(ps ProfileSource) {
	e.profiles = ps
}

// SetSessionRecorder enables session creation for the top pick.
func (e *Engine) SetSessionRecorder(sr SessionRecorder) {
	e.sessions = sr
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend validates req, scores the eligible catalog and returns the top
// pick with alternatives. Invalid requests and empty rankings are reported
// through the result's Outcome; the error is reserved for collaborator
// failures.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req models.ContextRequest) (*models.RecommendationResult, error) {
	start := time.Now()
	e.requestCount.Add(1)

	logger := e.createRequestLogger(&req)
	logger.Debug().Msg("processing recommendation request")

	if violations := validateRequest(&req); len(violations) > 0 {
		e.invalidRequests.Add(1)
		e.finish(models.OutcomeInvalidRequest, 0, start)
		logger.Debug().Int("violations", len(violations)).Msg("invalid recommendation request")
		return invalidResult(violations), nil
	}

	items, err := e.fetchCatalog(ctx)
	if err != nil {
		e.errorCount.Add(1)
		e.finish("error", 0, start)
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	eligible := Filter(items, ConstraintsFor(&req))
	profile := e.loadProfile(ctx, req.UserID, logger)

	scored := e.scoreAll(eligible, &req, profile, logger)
	ranking := Rank(scored, e.config.MaxAlternatives)

	if ranking.Empty() {
		e.noMatch.Add(1)
		e.finish(models.OutcomeNoMatch, len(eligible), start)
		logger.Debug().
			Int("catalog", len(items)).
			Int("eligible", len(eligible)).
			Msg("no item matched")
		return noMatchResult(len(items), len(eligible)), nil
	}

	result := buildResult(ranking, len(items), len(eligible))

	if e.sessions != nil {
		session, err := e.sessions.Create(ctx, &ranking.Top.Item, req.Snapshot())
		if err != nil {
			e.errorCount.Add(1)
			e.finish("error", len(eligible), start)
			return nil, fmt.Errorf("create session: %w", err)
		}
		result.SessionID = session.ID
	}

	e.recommended.Add(1)
	e.finish(models.OutcomeRecommended, len(eligible), start)

	logger.Debug().
		Int64("item_id", ranking.Top.Item.ID).
		Float64("score", ranking.Top.Score).
		Int("alternatives", len(ranking.Alternatives)).
		Int("eligible", len(eligible)).
		Str("session_id", result.SessionID).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return result, nil
}

// createRequestLogger creates a logger with request-specific fields.
func (e *Engine) createRequestLogger(req *models.ContextRequest) zerolog.Logger {
	return e.logger.With().
		Str("user_id", req.UserID).
		Int("available_minutes", req.AvailableMinutes).
		Logger()
}

func (e *Engine) finish(outcome models.Outcome, candidates int, start time.Time) {
	elapsed := time.Since(start)
	e.lastLatency.Store(int64(elapsed))
	metrics.RecordRecommendation(string(outcome), candidates, elapsed)
}

func (e *Engine) fetchCatalog(ctx context.Context) ([]models.Item, error) {
	return resilience.Execute(ctx, e.catalogBreaker, func() ([]models.Item, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, e.config.CatalogTimeout)
		defer cancel()
		return e.catalog.FetchEligibleCatalog(fetchCtx)
	})
}

// loadProfile returns nil when personalization is off or the lookup fails;
// a missing profile degrades scoring rather than failing the request.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) loadProfile(ctx context.Context, userID string, logger zerolog.Logger) *models.SatisfactionProfile {
	if userID == "" || e.profiles == nil {
		return nil
	}

	profile, err := resilience.Execute(ctx, e.profileBreaker, func() (*models.SatisfactionProfile, error) {
		profileCtx, cancel := context.WithTimeout(ctx, e.config.ProfileTimeout)
		defer cancel()
		return e.profiles.Profile(profileCtx, userID)
	})
	if err != nil {
		logger.Warn().Err(err).Msg("satisfaction profile unavailable, scoring without personalization")
		return nil
	}
	return profile
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) scoreAll(items []models.Item, req *models.ContextRequest, profile *models.SatisfactionProfile, logger zerolog.Logger) []ScoredItem {
	scored := make([]ScoredItem, 0, len(items))
	for i := range items {
		s, ok := e.scoreOne(&items[i], req, profile, logger)
		if ok {
			scored = append(scored, s)
		}
	}
	return scored
}

// scoreOne isolates a single item: a panicking rule drops that item only.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) scoreOne(item *models.Item, req *models.ContextRequest, profile *models.SatisfactionProfile, logger zerolog.Logger) (s ScoredItem, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.scoringFailures.Add(1)
			metrics.RecordScoringFailure()
			logger.Error().
				Int64("item_id", item.ID).
				Interface("panic", r).
				Msg("scoring failed, item dropped")
			s, ok = ScoredItem{}, false
		}
	}()
	return e.scorer.Score(item, req, profile), true
}

// GetMetrics returns a snapshot of engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		TotalRequests:   e.requestCount.Load(),
		Recommended:     e.recommended.Load(),
		NoMatch:         e.noMatch.Load(),
		InvalidRequests: e.invalidRequests.Load(),
		Errors:          e.errorCount.Load(),
		ScoringFailures: e.scoringFailures.Load(),
		LastLatency:     time.Duration(e.lastLatency.Load()),
		CatalogBreaker:  e.catalogBreaker.State().String(),
		ProfileBreaker:  e.profileBreaker.State().String(),
	}
}

// legacyMessages keeps the messages clients already display for the three
// required fields.
var legacyMessages = map[string]string{
	"available_minutes":         "availableMinutes must be positive",
	"desired_emotional_goals":   "at least one emotional goal required",
	"required_interruptibility": "interruptibility level required",
}

func validateRequest(req *models.ContextRequest) []models.FieldViolation {
	verr := validation.ValidateStruct(req)
	if verr == nil {
		return nil
	}

	errs := verr.Errors()
	violations := make([]models.FieldViolation, 0, len(errs))
	for i := range errs {
		field := errs[i].Field()
		msg, ok := legacyMessages[field]
		if !ok {
			msg = errs[i].Error()
		}
		violations = append(violations, models.FieldViolation{Field: field, Message: msg})
	}
	return violations
}

func invalidResult(violations []models.FieldViolation) *models.RecommendationResult {
	msgs := make([]string, len(violations))
	for i := range violations {
		msgs[i] = violations[i].Message
	}
	return &models.RecommendationResult{
		Outcome:      models.OutcomeInvalidRequest,
		Alternatives: []models.Recommendation{},
		Title:        models.InvalidTitle,
		Message:      fmt.Sprintf(models.InvalidMessageFmt, strings.Join(msgs, ", ")),
		Violations:   violations,
	}
}

func noMatchResult(total, eligible int) *models.RecommendationResult {
	return &models.RecommendationResult{
		Outcome:            models.OutcomeNoMatch,
		Alternatives:       []models.Recommendation{},
		Title:              models.NoMatchTitle,
		Message:            models.NoMatchMessage,
		TotalCandidates:    total,
		EligibleCandidates: eligible,
	}
}

func buildResult(r Ranking, total, eligible int) *models.RecommendationResult {
	top := toRecommendation(r.Top)
	alts := make([]models.Recommendation, len(r.Alternatives))
	for i := range r.Alternatives {
		alts[i] = toRecommendation(&r.Alternatives[i])
	}
	return &models.RecommendationResult{
		Outcome:            models.OutcomeRecommended,
		Top:                &top,
		Alternatives:       alts,
		TotalCandidates:    total,
		EligibleCandidates: eligible,
	}
}

func toRecommendation(r *RankedItem) models.Recommendation {
	return models.Recommendation{
		Item:            r.Item,
		Reason:          r.Reason,
		MatchPercentage: r.MatchPercentage,
		Score:           r.Score,
	}
}
