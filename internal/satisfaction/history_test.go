// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package satisfaction

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/lutem/internal/models"
)

type mockLister struct {
	sessions []models.Session
	err      error
}

func (m *mockLister) ListByUser(_ context.Context, _ string) ([]models.Session, error) {
	return m.sessions, m.err
}

type mockItems struct {
	items map[int64]models.Item
	asked []int64
	err   error
}

func (m *mockItems) GetItems(_ context.Context, ids []int64) (map[int64]models.Item, error) {
	m.asked = ids
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[int64]models.Item)
	for _, id := range ids {
		if it, ok := m.items[id]; ok {
			out[id] = it
		}
	}
	return out, nil
}

func timePtr(t time.Time) *time.Time { return &t }

func TestRecordFromSession(t *testing.T) {
	t.Parallel()

	// 2026-03-06 is a Friday.
	recommended := time.Date(2026, 3, 6, 19, 0, 0, 0, time.UTC)
	started := recommended.Add(5 * time.Minute)
	ended := started.Add(42 * time.Minute)

	item := &models.Item{
		ID:             7,
		Name:           "Hades",
		Genres:         []string{"Roguelike"},
		EmotionalGoals: []models.EmotionalGoal{models.GoalChallenge},
	}

	tests := []struct {
		name       string
		session    models.Session
		wantStatus models.HistoryStatus
		wantDur    *int
	}{
		{
			name:       "created only",
			session:    models.Session{ID: "s1", ItemID: 7, RecommendedAt: recommended},
			wantStatus: models.HistoryActive,
		},
		{
			name:       "started not ended",
			session:    models.Session{ID: "s2", ItemID: 7, RecommendedAt: recommended, StartedAt: &started},
			wantStatus: models.HistoryActive,
		},
		{
			name: "ended",
			session: models.Session{
				ID: "s3", ItemID: 7, RecommendedAt: recommended,
				StartedAt: &started, EndedAt: &ended,
			},
			wantStatus: models.HistoryCompleted,
			wantDur:    intPtr(42),
		},
		{
			name: "feedback without end",
			session: models.Session{
				ID: "s4", ItemID: 7, RecommendedAt: recommended,
				SatisfactionScore: intPtr(4), FeedbackAt: timePtr(recommended),
			},
			wantStatus: models.HistoryCompleted,
		},
		{
			name: "skipped",
			session: models.Session{
				ID: "s5", ItemID: 7, RecommendedAt: recommended, SkippedAt: &started,
			},
			wantStatus: models.HistorySkipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := RecordFromSession(&tt.session, item)

			if rec.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", rec.Status, tt.wantStatus)
			}
			if !reflect.DeepEqual(rec.DurationMinutes, tt.wantDur) {
				t.Errorf("DurationMinutes = %v, want %v", rec.DurationMinutes, tt.wantDur)
			}
			if rec.TimeOfDay != models.TimeOfDayEvening {
				t.Errorf("TimeOfDay = %q, want EVENING", rec.TimeOfDay)
			}
			if rec.DayOfWeek != "FRIDAY" {
				t.Errorf("DayOfWeek = %q, want FRIDAY", rec.DayOfWeek)
			}
			if rec.ItemName != "Hades" {
				t.Errorf("ItemName = %q, want Hades", rec.ItemName)
			}
			if !reflect.DeepEqual(rec.Genres, item.Genres) {
				t.Errorf("Genres = %v, want %v", rec.Genres, item.Genres)
			}
		})
	}
}

func TestRecordFromSession_ReportedTimeOfDay(t *testing.T) {
	t.Parallel()

	// 03:00 UTC is LATE_NIGHT on the server clock, but the user said evening.
	at := time.Date(2026, 3, 6, 3, 0, 0, 0, time.UTC)
	ended := at.Add(30 * time.Minute)
	sess := models.Session{
		ID: "s1", ItemID: 7, TimeOfDay: models.TimeOfDayEvening,
		RecommendedAt: at, StartedAt: &at, EndedAt: &ended,
		SatisfactionScore: intPtr(5), FeedbackAt: &ended,
	}

	rec := RecordFromSession(&sess, nil)
	if rec.TimeOfDay != models.TimeOfDayEvening {
		t.Fatalf("TimeOfDay = %q, want EVENING", rec.TimeOfDay)
	}

	profile := BuildProfile("u1", []models.RawSessionRecord{rec})
	if profile.BestTimeOfDay != models.TimeOfDayEvening {
		t.Errorf("BestTimeOfDay = %q, want EVENING", profile.BestTimeOfDay)
	}

	t.Run("unreported slot falls back to the clock", func(t *testing.T) {
		t.Parallel()
		unreported := sess
		unreported.TimeOfDay = ""
		if got := RecordFromSession(&unreported, nil).TimeOfDay; got != models.TimeOfDayLateNight {
			t.Errorf("TimeOfDay = %q, want LATE_NIGHT", got)
		}
	})
}

func TestSessionHistory_FetchUserHistory(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	lister := &mockLister{sessions: []models.Session{
		{ID: "a", ItemID: 1, ItemName: "Hades", RecommendedAt: now, SatisfactionScore: intPtr(5)},
		{ID: "b", ItemID: 2, RecommendedAt: now},
		{ID: "c", ItemID: 1, RecommendedAt: now},
	}}
	items := &mockItems{items: map[int64]models.Item{
		1: {ID: 1, Name: "Hades", Genres: []string{"Roguelike"}},
	}}

	h := NewSessionHistory(lister, items)
	records, err := h.FetchUserHistory(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FetchUserHistory() error = %v", err)
	}

	if !reflect.DeepEqual(items.asked, []int64{1, 2}) {
		t.Errorf("looked up ids %v, want [1 2]", items.asked)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[1].Genres != nil {
		t.Errorf("unknown item should carry no genres, got %v", records[1].Genres)
	}
	if records[0].Status != models.HistoryCompleted || records[0].TimeOfDay != models.TimeOfDayMorning {
		t.Errorf("record[0] = %+v", records[0])
	}
}

func TestSessionHistory_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	h := NewSessionHistory(&mockLister{err: boom}, nil)
	if _, err := h.FetchUserHistory(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Errorf("list error = %v, want %v", err, boom)
	}

	h = NewSessionHistory(
		&mockLister{sessions: []models.Session{{ID: "a", ItemID: 1}}},
		&mockItems{err: boom},
	)
	if _, err := h.FetchUserHistory(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Errorf("lookup error = %v, want %v", err, boom)
	}

	h = NewSessionHistory(&mockLister{}, nil)
	records, err := h.FetchUserHistory(context.Background(), "u1")
	if err != nil || records == nil || len(records) != 0 {
		t.Errorf("empty history = %v, %v; want empty non-nil slice", records, err)
	}
}
