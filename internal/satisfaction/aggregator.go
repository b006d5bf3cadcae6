// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package satisfaction

import (
	"sort"

	"github.com/tomtom215/lutem/internal/models"
)

// Number of entries kept in the top lists.
const (
	TopTagCount   = 3
	TopItemsCount = 5
)

// Aggregator folds a user's session history into a profile in one pass.
// Memory is bounded by the number of distinct items, genres, slots and tags
// seen, not by history length. An Aggregator is not safe for concurrent use.
type Aggregator struct {
	userID string

	total     int
	completed int
	skipped   int

	ratingSum   float64
	ratingCount int
	playtime    int

	items     *meanTable[int64]
	itemNames map[int64]string
	genres    *meanTable[string]
	slots     *meanTable[models.TimeOfDay]
	tags      *countTable[models.EmotionalGoal]
	lengths   *countTable[string]
	weekdays  *countTable[string]
}

// NewAggregator creates an empty aggregator for userID.
func NewAggregator(userID string) *Aggregator {
	return &Aggregator{
		userID:    userID,
		items:     newMeanTable[int64](),
		itemNames: make(map[int64]string),
		genres:    newMeanTable[string](),
		slots:     newMeanTable[models.TimeOfDay](),
		tags:      newCountTable[models.EmotionalGoal](),
		lengths:   newCountTable[string](),
		weekdays:  newCountTable[string](),
	}
}

// Add folds one history record. Only completed sessions contribute ratings,
// tags, lengths and weekdays; skipped sessions are counted.
func (a *Aggregator) Add(rec *models.RawSessionRecord) {
	a.total++

	switch rec.Status {
	case models.HistorySkipped:
		a.skipped++
		return
	case models.HistoryCompleted:
		a.completed++
	default:
		return
	}

	if rec.ItemName != "" {
		a.itemNames[rec.ItemID] = rec.ItemName
	}

	if rec.Rating != nil {
		r := float64(*rec.Rating)
		a.ratingSum += r
		a.ratingCount++

		a.items.add(rec.ItemID, r)
		for _, g := range rec.Genres {
			a.genres.add(g, r)
		}
		if rec.TimeOfDay != "" {
			a.slots.add(rec.TimeOfDay, r)
		}
	}

	for _, tag := range rec.EmotionalTags {
		a.tags.inc(tag)
	}

	if rec.DurationMinutes != nil {
		a.playtime += *rec.DurationMinutes
		a.lengths.inc(models.LengthBucket(*rec.DurationMinutes))
	}

	if rec.DayOfWeek != "" {
		a.weekdays.inc(rec.DayOfWeek)
	}
}

// Profile returns the scoring view of everything added so far.
func (a *Aggregator) Profile() *models.SatisfactionProfile {
	p := models.NewSatisfactionProfile(a.userID)

	p.CompletedSessions = a.completed
	p.SkippedSessions = a.skipped
	p.ItemRatings = a.items.averages()
	p.GenreRatings = a.genres.averages()
	p.TimeOfDayRatings = a.slots.averages()
	p.TopEmotionalTags = a.tags.top(TopTagCount)

	if slot, ok := a.slots.best(); ok {
		p.BestTimeOfDay = slot
	}
	if bucket, ok := a.lengths.best(); ok {
		p.PreferredSessionLength = bucket
	}

	return p
}

// Stats returns the full statistics view of everything added so far.
func (a *Aggregator) Stats() *models.SatisfactionStats {
	s := &models.SatisfactionStats{
		SatisfactionProfile:  *a.Profile(),
		TotalSessions:        a.total,
		TotalPlaytimeMinutes: a.playtime,
		EmotionalTagCounts:   a.tags.asMap(),
		SessionLengths:       a.lengths.asMap(),
		SessionsByDayOfWeek:  a.weekdays.asMap(),
		TopRatedItems:        a.topRated(TopItemsCount),
	}
	if a.ratingCount > 0 {
		s.AverageRating = a.ratingSum / float64(a.ratingCount)
	}
	return s
}

// topRated orders rated items by average, then session count, then
// first-seen position.
func (a *Aggregator) topRated(n int) []models.ItemRatingSummary {
	out := make([]models.ItemRatingSummary, len(a.items.keys))
	for i, id := range a.items.keys {
		name, ok := a.itemNames[id]
		if !ok {
			name = "Unknown"
		}
		out[i] = models.ItemRatingSummary{
			ItemID:        id,
			ItemName:      name,
			AverageRating: a.items.mean(i),
			SessionCount:  a.items.counts[i],
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AverageRating != out[j].AverageRating {
			return out[i].AverageRating > out[j].AverageRating
		}
		return out[i].SessionCount > out[j].SessionCount
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// BuildProfile aggregates history into a profile. An empty history yields a
// zeroed profile with non-nil maps and slices.
func BuildProfile(userID string, history []models.RawSessionRecord) *models.SatisfactionProfile {
	agg := NewAggregator(userID)
	for i := range history {
		agg.Add(&history[i])
	}
	return agg.Profile()
}

// BuildStats aggregates history into full statistics.
func BuildStats(userID string, history []models.RawSessionRecord) *models.SatisfactionStats {
	agg := NewAggregator(userID)
	for i := range history {
		agg.Add(&history[i])
	}
	return agg.Stats()
}
