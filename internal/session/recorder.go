// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/lutem/internal/metrics"
	"github.com/tomtom215/lutem/internal/models"
)

// Score bounds for satisfaction feedback.
const (
	MinScore = 1
	MaxScore = 5
)

// EventPublisher receives committed session transitions.
type EventPublisher interface {
	PublishSessionEvent(ctx context.Context, event *models.SessionEvent) error
}

// Recorder drives the session lifecycle on top of a Store.
// It is safe for concurrent use.
type Recorder struct {
	store  Store
	events EventPublisher
	logger zerolog.Logger
	now    func() time.Time
}

// NewRecorder creates a recorder over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecorder(store Store, logger zerolog.Logger) *Recorder {
	return &Recorder{
		store:  store,
		logger: logger.With().Str("component", "session").Logger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetEventPublisher enables lifecycle events.
func (r *Recorder) SetEventPublisher(p EventPublisher) {
	r.events = p
}

// SetClock overrides the time source.
func (r *Recorder) SetClock(now func() time.Time) {
	r.now = now
}

// Create records that item was recommended under snapshot.
func (r *Recorder) Create(ctx context.Context, item *models.Item, snapshot models.ContextSnapshot) (*models.Session, error) {
	sess, err := r.newSession(item, snapshot)
	if err != nil {
		return nil, err
	}
	if err := r.store.Insert(ctx, sess); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	r.committed(ctx, sess, models.EventSessionCreated)
	return sess, nil
}

// SelectAlternative records that the user picked item instead of the top
// recommendation and started playing it. The session is created already
// started in a single write.
func (r *Recorder) SelectAlternative(ctx context.Context, item *models.Item, snapshot models.ContextSnapshot) (*models.Session, error) {
	sess, err := r.newSession(item, snapshot)
	if err != nil {
		return nil, err
	}
	started := sess.RecommendedAt
	sess.StartedAt = &started

	if err := r.store.Insert(ctx, sess); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	r.committed(ctx, sess, models.EventSessionCreated)
	r.committed(ctx, sess, models.EventSessionStarted)
	return sess, nil
}

func (r *Recorder) newSession(item *models.Item, snapshot models.ContextSnapshot) (*models.Session, error) {
	if item == nil {
		return nil, ErrNilItem
	}
	return &models.Session{
		ID:               uuid.New().String(),
		ItemID:           item.ID,
		ItemName:         item.Name,
		UserID:           snapshot.UserID,
		AvailableMinutes: snapshot.AvailableMinutes,
		DesiredMood:      snapshot.DesiredMood,
		TimeOfDay:        snapshot.TimeOfDay,
		RecommendedAt:    r.now(),
	}, nil
}

// Start stamps the start time. Repeating it keeps the first stamp.
func (r *Recorder) Start(ctx context.Context, id string) (*models.Session, error) {
	changed := false
	sess, err := r.store.Update(ctx, id, func(s *models.Session) error {
		changed = false
		if s.StartedAt != nil {
			return nil
		}
		now := r.now()
		s.StartedAt = &now
		changed = true
		return nil
	})
	if err != nil {
		return nil, r.wrap("start", id, err)
	}
	if changed {
		r.committed(ctx, sess, models.EventSessionStarted)
	}
	return sess, nil
}

// End stamps the end time. Repeating it keeps the first stamp.
func (r *Recorder) End(ctx context.Context, id string) (*models.Session, error) {
	changed := false
	sess, err := r.store.Update(ctx, id, func(s *models.Session) error {
		changed = false
		if s.EndedAt != nil {
			return nil
		}
		now := r.now()
		s.EndedAt = &now
		changed = true
		return nil
	})
	if err != nil {
		return nil, r.wrap("end", id, err)
	}
	if changed {
		r.committed(ctx, sess, models.EventSessionEnded)
	}
	return sess, nil
}

// Skip marks the session as skipped. An ended session cannot be skipped.
func (r *Recorder) Skip(ctx context.Context, id string) (*models.Session, error) {
	changed := false
	sess, err := r.store.Update(ctx, id, func(s *models.Session) error {
		changed = false
		if s.EndedAt != nil {
			return ErrSessionEnded
		}
		if s.SkippedAt != nil {
			return nil
		}
		now := r.now()
		s.SkippedAt = &now
		changed = true
		return nil
	})
	if err != nil {
		return nil, r.wrap("skip", id, err)
	}
	if changed {
		r.committed(ctx, sess, models.EventSessionSkipped)
	}
	return sess, nil
}

// RecordFeedback stores a 1-5 satisfaction score. The score and its
// timestamp are written together; a session accepts feedback once.
func (r *Recorder) RecordFeedback(ctx context.Context, id string, score int) (*models.Session, error) {
	if score < MinScore || score > MaxScore {
		metrics.RecordFeedbackRejected("invalid_score")
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}

	sess, err := r.store.Update(ctx, id, func(s *models.Session) error {
		if s.SatisfactionScore != nil {
			return ErrFeedbackExists
		}
		now := r.now()
		v := score
		s.SatisfactionScore = &v
		s.FeedbackAt = &now
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrFeedbackExists):
			metrics.RecordFeedbackRejected("already_recorded")
		case errors.Is(err, ErrSessionNotFound):
			metrics.RecordFeedbackRejected("not_found")
		}
		return nil, r.wrap("record feedback", id, err)
	}

	metrics.RecordFeedback(score)
	r.committed(ctx, sess, models.EventSessionFeedback)
	return sess, nil
}

// Get returns the session with id.
func (r *Recorder) Get(ctx context.Context, id string) (*models.Session, error) {
	sess, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, r.wrap("get", id, err)
	}
	return sess, nil
}

// ListByUser returns a user's sessions oldest first.
func (r *Recorder) ListByUser(ctx context.Context, userID string) ([]models.Session, error) {
	return r.store.ListByUser(ctx, userID)
}

func (r *Recorder) wrap(op, id string, err error) error {
	return fmt.Errorf("%s session %s: %w", op, id, err)
}

// committed counts the transition and publishes its event.
func (r *Recorder) committed(ctx context.Context, sess *models.Session, kind models.SessionEventType) {
	metrics.RecordSessionTransition(string(kind))

	if r.events == nil {
		return
	}

	event := &models.SessionEvent{
		EventID:    uuid.New().String(),
		Type:       kind,
		SessionID:  sess.ID,
		ItemID:     sess.ItemID,
		UserID:     sess.UserID,
		OccurredAt: r.now(),
	}
	if kind == models.EventSessionFeedback {
		event.Score = sess.SatisfactionScore
	}

	if err := r.events.PublishSessionEvent(ctx, event); err != nil {
		r.logger.Warn().
			Err(err).
			Str("session_id", sess.ID).
			Str("event", string(kind)).
			Msg("failed to publish session event")
	}
}
