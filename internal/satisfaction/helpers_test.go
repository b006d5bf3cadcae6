// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package satisfaction

import (
	"time"

	"github.com/tomtom215/lutem/internal/models"
)

func intPtr(v int) *int { return &v }

// completed builds a rated, completed record.
func completed(itemID int64, name string, rating int, genres ...string) models.RawSessionRecord {
	return models.RawSessionRecord{
		SessionID: name,
		Status:    models.HistoryCompleted,
		ItemID:    itemID,
		ItemName:  name,
		Genres:    genres,
		Rating:    intPtr(rating),
	}
}

func withSlot(rec models.RawSessionRecord, slot models.TimeOfDay) models.RawSessionRecord {
	rec.TimeOfDay = slot
	return rec
}

func withDuration(rec models.RawSessionRecord, minutes int) models.RawSessionRecord {
	rec.DurationMinutes = intPtr(minutes)
	return rec
}

func withTags(rec models.RawSessionRecord, tags ...models.EmotionalGoal) models.RawSessionRecord {
	rec.EmotionalTags = tags
	return rec
}

func at(rec models.RawSessionRecord, t time.Time) models.RawSessionRecord {
	rec.RecordedAt = t
	return rec
}

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
