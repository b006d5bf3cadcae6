// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package satisfaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/lutem/internal/models"
)

// SessionLister lists a user's sessions in recommendation order.
type SessionLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.Session, error)
}

// ItemLookup resolves catalog items by id. Missing ids are absent from the
// result rather than an error.
type ItemLookup interface {
	GetItems(ctx context.Context, ids []int64) (map[int64]models.Item, error)
}

// SessionHistory is a HistorySource joining stored sessions with catalog
// metadata (genres and emotional tags).
type SessionHistory struct {
	sessions SessionLister
	items    ItemLookup
}

// NewSessionHistory creates a history source. items may be nil, in which
// case records carry no genres or tags.
func NewSessionHistory(sessions SessionLister, items ItemLookup) *SessionHistory {
	return &SessionHistory{sessions: sessions, items: items}
}

// FetchUserHistory implements HistorySource.
func (h *SessionHistory) FetchUserHistory(ctx context.Context, userID string) ([]models.RawSessionRecord, error) {
	sessions, err := h.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		return []models.RawSessionRecord{}, nil
	}

	var catalog map[int64]models.Item
	if h.items != nil {
		catalog, err = h.items.GetItems(ctx, distinctItemIDs(sessions))
		if err != nil {
			return nil, fmt.Errorf("lookup items: %w", err)
		}
	}

	records := make([]models.RawSessionRecord, 0, len(sessions))
	for i := range sessions {
		var item *models.Item
		if it, ok := catalog[sessions[i].ItemID]; ok {
			item = &it
		}
		records = append(records, RecordFromSession(&sessions[i], item))
	}
	return records, nil
}

// RecordFromSession converts a stored session into a history record. A
// session is COMPLETED once it ended or received feedback, SKIPPED once
// skipped, and ACTIVE otherwise. The time-of-day slot is the one the user
// reported when asking; without it the slot, like the weekday, comes from
// the start time, falling back to the recommendation time.
func RecordFromSession(s *models.Session, item *models.Item) models.RawSessionRecord {
	rec := models.RawSessionRecord{
		SessionID:   s.ID,
		Status:      historyStatus(s),
		ItemID:      s.ItemID,
		ItemName:    s.ItemName,
		Rating:      s.SatisfactionScore,
		DesiredMood: s.DesiredMood,
		RecordedAt:  s.RecommendedAt,
	}

	if mins, ok := s.DurationMinutes(); ok {
		rec.DurationMinutes = &mins
	}

	at := s.RecommendedAt
	if s.StartedAt != nil {
		at = *s.StartedAt
	}
	rec.TimeOfDay = s.TimeOfDay
	if !rec.TimeOfDay.Valid() {
		rec.TimeOfDay = models.TimeOfDayAt(at)
	}
	rec.DayOfWeek = strings.ToUpper(at.Weekday().String())

	if item != nil {
		rec.Genres = item.Genres
		rec.EmotionalTags = item.EmotionalGoals
		if rec.ItemName == "" {
			rec.ItemName = item.Name
		}
	}

	return rec
}

func historyStatus(s *models.Session) models.HistoryStatus {
	switch {
	case s.SkippedAt != nil:
		return models.HistorySkipped
	case s.EndedAt != nil, s.SatisfactionScore != nil:
		return models.HistoryCompleted
	default:
		return models.HistoryActive
	}
}

func distinctItemIDs(sessions []models.Session) []int64 {
	seen := make(map[int64]struct{}, len(sessions))
	ids := make([]int64, 0, len(sessions))
	for i := range sessions {
		id := sessions[i].ItemID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
