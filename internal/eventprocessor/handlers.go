// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/lutem/internal/database"
	"github.com/tomtom215/lutem/internal/models"
)

// AggregateStore folds accepted ratings into an item's lifetime aggregate.
// Satisfied by *database.DB.
type AggregateStore interface {
	RecordSatisfaction(ctx context.Context, itemID int64, score int) error
}

// SatisfactionHandler consumes session.feedback events and updates the
// catalog's per-item satisfaction sum and count.
//
// Error handling:
//   - Malformed or invalid payloads return ErrInvalidEvent (no retry)
//   - Unknown items are acknowledged and logged; the catalog may have been
//     reseeded since the session was created
//   - Store errors are returned and retried by the router
type SatisfactionHandler struct {
	store  AggregateStore
	logger zerolog.Logger

	applied atomic.Int64
	skipped atomic.Int64
}

// NewSatisfactionHandler creates a handler writing to store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSatisfactionHandler(store AggregateStore, logger zerolog.Logger) *SatisfactionHandler {
	return &SatisfactionHandler{
		store:  store,
		logger: logger.With().Str("component", "satisfaction_aggregate").Logger(),
	}
}

// Handle processes a single feedback message.
func (h *SatisfactionHandler) Handle(msg *message.Message) error {
	event, err := DeserializeEvent(msg.Payload)
	if err != nil {
		h.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("dropping malformed feedback event")
		return err
	}
	if event.Type != models.EventSessionFeedback {
		return fmt.Errorf("%w: expected feedback event, got %q", ErrInvalidEvent, event.Type)
	}

	ctx := msg.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = h.store.RecordSatisfaction(ctx, event.ItemID, *event.Score)
	switch {
	case err == nil:
		h.applied.Add(1)
		h.logger.Debug().
			Str("session_id", event.SessionID).
			Int64("item_id", event.ItemID).
			Int("score", *event.Score).
			Msg("satisfaction aggregate updated")
		return nil
	case errors.Is(err, database.ErrItemNotFound):
		h.skipped.Add(1)
		h.logger.Warn().
			Str("session_id", event.SessionID).
			Int64("item_id", event.ItemID).
			Msg("feedback for unknown item ignored")
		return nil
	default:
		return fmt.Errorf("record satisfaction for session %s: %w", event.SessionID, err)
	}
}

// HandlerStats reports handler counters.
type HandlerStats struct {
	Applied int64 `json:"applied"`
	Skipped int64 `json:"skipped"`
}

// Stats returns the handler counters.
func (h *SatisfactionHandler) Stats() HandlerStats {
	return HandlerStats{
		Applied: h.applied.Load(),
		Skipped: h.skipped.Load(),
	}
}
