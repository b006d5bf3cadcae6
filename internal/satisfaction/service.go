// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package satisfaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lutem/internal/models"
)

// ErrEmptyUserID is returned when a query names no user.
var ErrEmptyUserID = errors.New("satisfaction: user id is required")

// HistorySource supplies a user's raw session history.
type HistorySource interface {
	FetchUserHistory(ctx context.Context, userID string) ([]models.RawSessionRecord, error)
}

// Service answers profile and statistics queries. Profiles are rebuilt on
// every call and never cached.
type Service struct {
	history HistorySource
	logger  zerolog.Logger
	now     func() time.Time
}

// NewService creates a satisfaction service over history.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(history HistorySource, logger zerolog.Logger) *Service {
	return &Service{
		history: history,
		logger:  logger.With().Str("component", "satisfaction").Logger(),
		now:     time.Now,
	}
}

// SetClock overrides the time source used for weekly summaries.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Profile builds the scoring profile for userID.
func (s *Service) Profile(ctx context.Context, userID string) (*models.SatisfactionProfile, error) {
	agg, err := s.aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return agg.Profile(), nil
}

// Stats builds full satisfaction statistics for userID.
func (s *Service) Stats(ctx context.Context, userID string) (*models.SatisfactionStats, error) {
	agg, err := s.aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return agg.Stats(), nil
}

// Weekly summarizes userID's last seven days.
func (s *Service) Weekly(ctx context.Context, userID string) (*models.WeeklySummary, error) {
	history, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildWeeklySummary(history, s.now()), nil
}

func (s *Service) aggregate(ctx context.Context, userID string) (*Aggregator, error) {
	history, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	agg := NewAggregator(userID)
	for i := range history {
		agg.Add(&history[i])
	}
	return agg, nil
}

func (s *Service) fetch(ctx context.Context, userID string) ([]models.RawSessionRecord, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	start := time.Now()
	history, err := s.history.FetchUserHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", userID, err)
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("records", len(history)).
		Dur("duration", time.Since(start)).
		Msg("fetched session history")

	return history, nil
}
