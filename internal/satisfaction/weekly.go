// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package satisfaction

import (
	"strings"
	"time"

	"github.com/tomtom215/lutem/internal/models"
)

// WeekWindow is the span covered by a weekly summary.
const WeekWindow = 7 * 24 * time.Hour

// BuildWeeklySummary summarizes every session recorded in the seven days
// ending at now, regardless of status.
func BuildWeeklySummary(history []models.RawSessionRecord, now time.Time) *models.WeeklySummary {
	start := now.Add(-WeekWindow)
	summary := &models.WeeklySummary{
		WeekStart:        start,
		WeekEnd:          now,
		MoodDistribution: map[string]int{},
	}

	var ratingSum float64
	plays := newCountTable[int64]()
	names := make(map[int64]string)

	for i := range history {
		rec := &history[i]
		if rec.RecordedAt.Before(start) || rec.RecordedAt.After(now) {
			continue
		}
		summary.SessionsThisWeek++

		if rec.Rating != nil {
			summary.SessionsWithFeedback++
			ratingSum += float64(*rec.Rating)
		}
		if rec.DurationMinutes != nil {
			summary.TotalPlaytimeMinutes += *rec.DurationMinutes
		}
		if rec.DesiredMood != "" {
			summary.MoodDistribution[strings.ToLower(rec.DesiredMood)]++
		}

		plays.inc(rec.ItemID)
		if rec.ItemName != "" {
			names[rec.ItemID] = rec.ItemName
		}
	}

	if summary.SessionsWithFeedback > 0 {
		summary.AverageSatisfaction = ratingSum / float64(summary.SessionsWithFeedback)
	}

	if id, ok := plays.best(); ok {
		summary.MostPlayedItemID = id
		summary.MostPlayedItem = names[id]
		summary.MostPlayedCount = plays.get(id)
	}

	return summary
}
