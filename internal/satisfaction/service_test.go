// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package satisfaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lutem/internal/models"
)

type mockHistory struct {
	records map[string][]models.RawSessionRecord
	err     error
	calls   int
}

func (m *mockHistory) FetchUserHistory(_ context.Context, userID string) ([]models.RawSessionRecord, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.records[userID], nil
}

func TestService_Profile(t *testing.T) {
	t.Parallel()

	src := &mockHistory{records: map[string][]models.RawSessionRecord{
		"u1": {completed(1, "Hades", 5, "Roguelike")},
	}}
	svc := NewService(src, zerolog.Nop())

	p, err := svc.Profile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if p.ItemRatings[1] != 5 {
		t.Errorf("ItemRatings[1] = %v, want 5", p.ItemRatings[1])
	}

	// Profiles are rebuilt on every call.
	if _, err := svc.Profile(context.Background(), "u1"); err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if src.calls != 2 {
		t.Errorf("history fetched %d times, want 2", src.calls)
	}
}

func TestService_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewService(&mockHistory{}, zerolog.Nop())

	s, err := svc.Stats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if s.TotalSessions != 0 || len(s.TopRatedItems) != 0 {
		t.Errorf("expected empty stats, got %+v", s)
	}
}

func TestService_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	svc := NewService(&mockHistory{err: boom}, zerolog.Nop())

	if _, err := svc.Profile(context.Background(), ""); !errors.Is(err, ErrEmptyUserID) {
		t.Errorf("Profile(\"\") error = %v, want ErrEmptyUserID", err)
	}
	if _, err := svc.Stats(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Errorf("Stats() error = %v, want wrapped %v", err, boom)
	}
	if _, err := svc.Weekly(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Errorf("Weekly() error = %v, want wrapped %v", err, boom)
	}
}

func TestService_WeeklyUsesClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	src := &mockHistory{records: map[string][]models.RawSessionRecord{
		"u1": {
			at(completed(1, "Hades", 4), now.Add(-time.Hour)),
			at(completed(1, "Hades", 4), now.Add(-10*24*time.Hour)),
		},
	}}
	svc := NewService(src, zerolog.Nop())
	svc.SetClock(func() time.Time { return now })

	w, err := svc.Weekly(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Weekly() error = %v", err)
	}
	if w.SessionsThisWeek != 1 {
		t.Errorf("SessionsThisWeek = %d, want 1", w.SessionsThisWeek)
	}
	if !w.WeekEnd.Equal(now) {
		t.Errorf("WeekEnd = %v, want %v", w.WeekEnd, now)
	}
}
