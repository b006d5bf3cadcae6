// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

import (
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestParseRankedEnums(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parse   func(string) (int, error)
		input   string
		want    int
		wantErr bool
	}{
		{"interruptibility lower", wrapParse(ParseInterruptibility), "high", 3, false},
		{"interruptibility padded", wrapParse(ParseInterruptibility), " Low ", 1, false},
		{"interruptibility bad", wrapParse(ParseInterruptibility), "sometimes", 0, true},
		{"energy", wrapParse(ParseEnergyLevel), "MEDIUM", 2, false},
		{"energy empty", wrapParse(ParseEnergyLevel), "", 0, true},
		{"rating adult", wrapParse(ParseContentRating), "adult", 4, false},
		{"rating bad", wrapParse(ParseContentRating), "PG-13", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEnum) {
					t.Errorf("error = %v, want ErrUnknownEnum", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("rank = %d, want %d", got, tt.want)
			}
		})
	}
}

func wrapParse[T interface{ Rank() int }](fn func(string) (T, error)) func(string) (int, error) {
	return func(s string) (int, error) {
		v, err := fn(s)
		return v.Rank(), err
	}
}

func TestItemJSON(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 7,
		"name": "Hades",
		"min_minutes": 20,
		"max_minutes": 45,
		"emotional_goals": ["CHALLENGE"],
		"interruptibility": "medium",
		"energy_required": "HIGH",
		"content_rating": "TEEN",
		"tagging_source": "MANUAL"
	}`

	var item Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if item.Interruptibility != InterruptibilityMedium || item.EnergyRequired != EnergyHigh {
		t.Errorf("enums = %v/%v", item.Interruptibility, item.EnergyRequired)
	}
	if item.ContentRating != ContentRatingTeen {
		t.Errorf("ContentRating = %v", item.ContentRating)
	}

	out, err := json.Marshal(&item)
	if err != nil {
		t.Fatal(err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back["interruptibility"] != "MEDIUM" || back["energy_required"] != "HIGH" {
		t.Errorf("marshaled enums = %v / %v", back["interruptibility"], back["energy_required"])
	}

	if err := json.Unmarshal([]byte(`{"energy_required":"EXTREME"}`), &item); err == nil {
		t.Error("expected error for unknown energy level")
	}
}

func TestItem_ValidDurations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		min, max int
		want     bool
	}{
		{10, 30, true},
		{30, 30, true},
		{0, 30, false},
		{40, 30, false},
	}
	for _, tt := range tests {
		it := Item{MinMinutes: tt.min, MaxMinutes: tt.max}
		if got := it.ValidDurations(); got != tt.want {
			t.Errorf("ValidDurations(%d,%d) = %v, want %v", tt.min, tt.max, got, tt.want)
		}
	}
}

func TestStringEnumsValid(t *testing.T) {
	t.Parallel()

	if !GoalLockingIn.Valid() || EmotionalGoal("BORED").Valid() {
		t.Error("EmotionalGoal.Valid mismatch")
	}
	if !TimeOfDayAny.Valid() || TimeOfDay("NOON").Valid() {
		t.Error("TimeOfDay.Valid mismatch")
	}
	if !SocialBoth.Valid() || SocialPreference("PARTY").Valid() {
		t.Error("SocialPreference.Valid mismatch")
	}
	if GoalUnwind.DisplayName() != "Unwind and relax" || EmotionalGoal("X").DisplayName() != "X" {
		t.Error("DisplayName mismatch")
	}
	if TaggingPending.Classified() || !TaggingAIGenerated.Classified() {
		t.Error("Classified mismatch")
	}
}

func TestSession_State(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	later := now.Add(42 * time.Minute)

	s := &Session{}
	if s.State() != SessionCreated {
		t.Errorf("State() = %s", s.State())
	}
	if _, ok := s.DurationMinutes(); ok {
		t.Error("DurationMinutes() ok without timestamps")
	}

	s.StartedAt = &now
	if s.State() != SessionStarted {
		t.Errorf("State() = %s", s.State())
	}

	s.EndedAt = &later
	if s.State() != SessionEnded {
		t.Errorf("State() = %s", s.State())
	}
	if d, ok := s.DurationMinutes(); !ok || d != 42 {
		t.Errorf("DurationMinutes() = %d, %v", d, ok)
	}

	s.SkippedAt = &now
	if s.State() != SessionSkipped {
		t.Errorf("State() = %s, skip wins", s.State())
	}
}

func TestTimeOfDayAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour int
		want TimeOfDay
	}{
		{0, TimeOfDayLateNight},
		{5, TimeOfDayLateNight},
		{6, TimeOfDayMorning},
		{12, TimeOfDayMidday},
		{15, TimeOfDayAfternoon},
		{18, TimeOfDayEvening},
		{23, TimeOfDayEvening},
	}
	for _, tt := range tests {
		at := time.Date(2026, 1, 1, tt.hour, 30, 0, 0, time.UTC)
		if got := TimeOfDayAt(at); got != tt.want {
			t.Errorf("TimeOfDayAt(%02d:30) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestLengthBucket(t *testing.T) {
	t.Parallel()

	for minutes, want := range map[int]string{5: LengthShort, 29: LengthShort, 30: LengthMedium, 59: LengthMedium, 60: LengthLong} {
		if got := LengthBucket(minutes); got != want {
			t.Errorf("LengthBucket(%d) = %s, want %s", minutes, got, want)
		}
	}
}

func TestContextRequest_Helpers(t *testing.T) {
	t.Parallel()

	r := &ContextRequest{AvailableMinutes: 30, DesiredGoals: []EmotionalGoal{GoalAdventureTime, GoalUnwind}, UserID: "u1"}
	if r.PrimaryMood() != "adventure_time" {
		t.Errorf("PrimaryMood() = %q", r.PrimaryMood())
	}
	if !r.ExplicitAllowed() {
		t.Error("ExplicitAllowed() defaults to true")
	}
	no := false
	r.AllowExplicit = &no
	if r.ExplicitAllowed() {
		t.Error("ExplicitAllowed() = true with explicit opt-out")
	}

	snap := r.Snapshot()
	if snap != (ContextSnapshot{UserID: "u1", AvailableMinutes: 30, DesiredMood: "adventure_time"}) {
		t.Errorf("Snapshot() = %+v", snap)
	}

	r.TimeOfDay = TimeOfDayEvening
	if got := r.Snapshot().TimeOfDay; got != TimeOfDayEvening {
		t.Errorf("Snapshot().TimeOfDay = %q, want EVENING", got)
	}
}

func TestSessionEvent_Topic(t *testing.T) {
	t.Parallel()

	ev := &SessionEvent{Type: EventSessionFeedback}
	if ev.Topic() != "session.feedback" {
		t.Errorf("Topic() = %q", ev.Topic())
	}
}
