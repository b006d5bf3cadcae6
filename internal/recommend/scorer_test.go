// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"reflect"
	"testing"

	"github.com/tomtom215/lutem/internal/models"
)

func TestScorer_ScenarioA(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultWeights(), 3)
	item, req := itemA(), unwindRequest()

	got := scorer.Score(&item, &req, nil)

	if got.Rejected {
		t.Fatal("item A should not be rejected")
	}
	if got.Score != 90 {
		t.Errorf("Score = %v, want 90", got.Score)
	}

	wantScores := map[string]float64{
		RuleTimeFit:        30,
		RuleEmotionalGoals: 25,
		RuleInterrupt:      20,
		RuleEnergy:         15,
	}
	if !reflect.DeepEqual(got.Scores, wantScores) {
		t.Errorf("Scores = %v, want %v", got.Scores, wantScores)
	}

	wantReason := "Fits your 30-minute window • Great for unwind and relax • Very Flexible - Pause anytime"
	if got.Reason != wantReason {
		t.Errorf("Reason = %q, want %q", got.Reason, wantReason)
	}
	if len(got.Reasons) != 4 {
		t.Errorf("len(Reasons) = %d, want 4", len(got.Reasons))
	}
}

func TestScorer_SocialPreferenceOnUntaggedItem(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultWeights(), 3)
	item, req := itemA(), unwindRequest()
	req.SocialPreference = models.SocialSolo

	got := scorer.Score(&item, &req, nil)
	if got.Score != 85 {
		t.Errorf("Score = %v, want 85", got.Score)
	}
	if got.Scores[RuleSocial] != -5 {
		t.Errorf("Scores[social] = %v, want -5", got.Scores[RuleSocial])
	}

	item.SocialPreferences = []models.SocialPreference{models.SocialSolo}
	if got := scorer.Score(&item, &req, nil); got.Score != 95 {
		t.Errorf("tagged solo Score = %v, want 95", got.Score)
	}
}

func TestScorer_ScenarioChallenge(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultWeights(), 3)
	item, req := itemA(), unwindRequest()
	req.DesiredGoals = []models.EmotionalGoal{models.GoalChallenge}

	got := scorer.Score(&item, &req, nil)

	if got.Score != 65 {
		t.Errorf("Score = %v, want 65 (30 time + 20 interrupt + 15 energy)", got.Score)
	}
	if _, ok := got.Scores[RuleEmotionalGoals]; ok {
		t.Errorf("emotional goal rule should not contribute, got %v", got.Scores)
	}
}

func TestScorer_TimeGate(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultWeights(), 3)
	req := unwindRequest()

	tests := []struct {
		name       string
		item       models.Item
		wantReason string
	}{
		{"too long", itemB(), ReasonTooLong},
		{"malformed durations", models.Item{ID: 3, MinMinutes: 20, MaxMinutes: 5}, ReasonInvalidDurations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(&tt.item, &req, nil)
			if !got.Rejected || got.Score != 0 {
				t.Errorf("Score() = %v rejected=%v, want 0 rejected", got.Score, got.Rejected)
			}
			if got.Reason != tt.wantReason || len(got.Reasons) != 1 {
				t.Errorf("Reasons = %v, want only %q", got.Reasons, tt.wantReason)
			}
		})
	}
}

func TestScorer_ClampsAtZero(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	w.InterruptPenalty = -100
	scorer := NewScorer(w, 3)

	item := models.Item{ID: 1, MinMinutes: 10, MaxMinutes: 60, Interruptibility: models.InterruptibilityLow}
	req := models.ContextRequest{AvailableMinutes: 30, RequiredInterruptibility: models.InterruptibilityHigh}

	got := scorer.Score(&item, &req, nil)
	if got.Score != 0 {
		t.Errorf("Score = %v, want 0", got.Score)
	}
	if got.Rejected {
		t.Error("negative totals are clamped, not rejected")
	}
}

func TestScorer_GoalMonotonicity(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultWeights(), 3)
	req := unwindRequest()

	without := itemA()
	without.EmotionalGoals = []models.EmotionalGoal{models.GoalChallenge}
	with := itemA()

	s1 := scorer.Score(&without, &req, nil).Score
	s2 := scorer.Score(&with, &req, nil).Score
	if s2 <= s1 {
		t.Errorf("adding a requested goal should raise the score: %v -> %v", s1, s2)
	}
}

func TestScorer_Deterministic(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultWeights(), 3)
	item := itemA()
	item.Genres = []string{"Puzzle", "Cozy"}
	item.Popularity = float64Ptr(110)
	req := unwindRequest()
	req.PreferredGenres = []string{"cozy"}
	profile := models.NewSatisfactionProfile("u1")
	profile.GenreRatings["Puzzle"] = 4.6

	first := scorer.Score(&item, &req, profile)
	for i := 0; i < 20; i++ {
		if got := scorer.Score(&item, &req, profile); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestScorer_FallbackReason(t *testing.T) {
	t.Parallel()

	noReasons := []Rule{{Name: "flat", Apply: func(*Candidate) Outcome { return Outcome{Points: 1} }}}
	scorer := NewScorerWithRules(noReasons, 3)
	item, req := itemA(), unwindRequest()

	got := scorer.Score(&item, &req, nil)
	if got.Reason != ReasonFallback {
		t.Errorf("Reason = %q, want fallback", got.Reason)
	}
}

func TestFormatReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reasons []string
		limit   int
		want    string
	}{
		{"empty", nil, 3, ReasonFallback},
		{"single", []string{"a"}, 3, "a"},
		{"truncated", []string{"a", "b", "c", "d"}, 3, "a • b • c"},
		{"no limit", []string{"a", "b"}, 0, "a • b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatReason(tt.reasons, tt.limit); got != tt.want {
				t.Errorf("FormatReason() = %q, want %q", got, tt.want)
			}
		})
	}
}
