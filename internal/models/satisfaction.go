// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

import "time"

// Session length buckets.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// LengthBucket classifies a played duration in minutes.
func LengthBucket(minutes int) string {
	switch {
	case minutes < 30:
		return LengthShort
	case minutes < 60:
		return LengthMedium
	default:
		return LengthLong
	}
}

// SatisfactionProfile is a user's aggregated feedback, rebuilt per query.
// Maps and slices are never nil.
type SatisfactionProfile struct {
	UserID string `json:"user_id"`

	// ItemRatings is the average rating per item.
	ItemRatings map[int64]float64 `json:"item_ratings"`

	// GenreRatings is the average rating per genre label.
	GenreRatings map[string]float64 `json:"genre_ratings"`

	// TimeOfDayRatings is the average rating per slot.
	TimeOfDayRatings map[TimeOfDay]float64 `json:"time_of_day_ratings"`

	// BestTimeOfDay is the slot with the highest average rating; empty when
	// no rated session carries a slot.
	BestTimeOfDay TimeOfDay `json:"best_time_of_day,omitempty"`

	CompletedSessions int `json:"completed_sessions"`
	SkippedSessions   int `json:"skipped_sessions"`

	// TopEmotionalTags holds up to three most frequent tags.
	TopEmotionalTags []EmotionalGoal `json:"top_emotional_tags"`

	// PreferredSessionLength is short, medium, long or empty.
	PreferredSessionLength string `json:"preferred_session_length,omitempty"`
}

// NewSatisfactionProfile returns a zeroed profile for userID.
func NewSatisfactionProfile(userID string) *SatisfactionProfile {
	return &SatisfactionProfile{
		UserID:           userID,
		ItemRatings:      map[int64]float64{},
		GenreRatings:     map[string]float64{},
		TimeOfDayRatings: map[TimeOfDay]float64{},
		TopEmotionalTags: []EmotionalGoal{},
	}
}

// ItemRatingSummary is one entry of the top-rated list.
type ItemRatingSummary struct {
	ItemID        int64   `json:"item_id"`
	ItemName      string  `json:"item_name"`
	AverageRating float64 `json:"average_rating"`
	SessionCount  int     `json:"session_count"`
}

// SatisfactionStats is the full statistics view over a user's history.
type SatisfactionStats struct {
	SatisfactionProfile

	TotalSessions        int                   `json:"total_sessions"`
	AverageRating        float64               `json:"average_rating"`
	TotalPlaytimeMinutes int                   `json:"total_playtime_minutes"`
	EmotionalTagCounts   map[EmotionalGoal]int `json:"emotional_tag_counts"`
	SessionLengths       map[string]int        `json:"session_length_distribution"`
	SessionsByDayOfWeek  map[string]int        `json:"sessions_by_day_of_week"`
	TopRatedItems        []ItemRatingSummary   `json:"top_rated_items"`
}

// WeeklySummary covers the seven days ending at WeekEnd.
type WeeklySummary struct {
	WeekStart            time.Time      `json:"week_start"`
	WeekEnd              time.Time      `json:"week_end"`
	SessionsThisWeek     int            `json:"sessions_this_week"`
	SessionsWithFeedback int            `json:"sessions_with_feedback"`
	AverageSatisfaction  float64        `json:"average_satisfaction"`
	TotalPlaytimeMinutes int            `json:"total_playtime_minutes"`
	MoodDistribution     map[string]int `json:"mood_distribution"`
	MostPlayedItemID     int64          `json:"most_played_item_id,omitempty"`
	MostPlayedItem       string         `json:"most_played_item,omitempty"`
	MostPlayedCount      int            `json:"most_played_count,omitempty"`
}
