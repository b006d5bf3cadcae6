// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

import "errors"

// ErrUnknownEnum is returned when parsing an unrecognized enumeration value.
var ErrUnknownEnum = errors.New("unknown enum value")

// MaxPopularity is the ceiling of the external popularity scale.
const MaxPopularity = 125.0

// Item is a recommendable catalog entry.
//
// Items are owned by the catalog and treated as immutable for the
// duration of a recommendation request.
type Item struct {
	// ID is the catalog identifier.
	ID int64 `json:"id" koanf:"id"`

	// Name is the display title.
	Name string `json:"name" koanf:"name"`

	// MinMinutes is the shortest meaningful session length.
	MinMinutes int `json:"min_minutes" koanf:"min_minutes"`

	// MaxMinutes is the length of a comfortable full session.
	MaxMinutes int `json:"max_minutes" koanf:"max_minutes"`

	// EmotionalGoals the item serves.
	EmotionalGoals []EmotionalGoal `json:"emotional_goals" koanf:"emotional_goals"`

	// Interruptibility is how freely the item can be paused.
	Interruptibility Interruptibility `json:"interruptibility" koanf:"interruptibility"`

	// EnergyRequired is the energy the item demands.
	EnergyRequired EnergyLevel `json:"energy_required" koanf:"energy_required"`

	// BestTimeOfDay lists suitable slots; may contain ANY.
	BestTimeOfDay []TimeOfDay `json:"best_time_of_day" koanf:"best_time_of_day"`

	// SocialPreferences lists supported modes; may contain BOTH.
	SocialPreferences []SocialPreference `json:"social_preferences" koanf:"social_preferences"`

	// Genres are free-text genre labels.
	Genres []string `json:"genres" koanf:"genres"`

	// AudioDependency is empty when untagged.
	AudioDependency AudioDependency `json:"audio_dependency,omitempty" koanf:"audio_dependency"`

	// ContentRating is unknown when untagged.
	ContentRating ContentRating `json:"content_rating,omitempty" koanf:"content_rating"`

	// ExplicitContent is empty when untagged.
	ExplicitContent ExplicitContent `json:"explicit_content,omitempty" koanf:"explicit_content"`

	// Popularity is an external review score on a 0-125 scale.
	Popularity *float64 `json:"popularity,omitempty" koanf:"popularity"`

	// SatisfactionAverage is the lifetime average rating across all users.
	SatisfactionAverage float64 `json:"satisfaction_average" koanf:"-"`

	// SatisfactionCount is the number of ratings behind SatisfactionAverage.
	SatisfactionCount int `json:"satisfaction_count" koanf:"-"`

	// TaggingSource records how the context tags were produced.
	TaggingSource TaggingSource `json:"tagging_source" koanf:"tagging_source"`

	Description string `json:"description,omitempty" koanf:"description"`
	ImageURL    string `json:"image_url,omitempty" koanf:"image_url"`
	StoreURL    string `json:"store_url,omitempty" koanf:"store_url"`
}

// ValidDurations reports whether the duration window is usable for scoring.
func (it *Item) ValidDurations() bool {
	return it.MinMinutes > 0 && it.MaxMinutes > 0 && it.MinMinutes <= it.MaxMinutes
}

// HasGoal reports whether the item serves goal g.
func (it *Item) HasGoal(g EmotionalGoal) bool {
	for _, v := range it.EmotionalGoals {
		if v == g {
			return true
		}
	}
	return false
}

// SuitsTimeOfDay reports whether the item is tagged for t or for any time.
func (it *Item) SuitsTimeOfDay(t TimeOfDay) bool {
	for _, v := range it.BestTimeOfDay {
		if v == t || v == TimeOfDayAny {
			return true
		}
	}
	return false
}

// SupportsSocial reports whether the item supports mode s or both modes.
func (it *Item) SupportsSocial(s SocialPreference) bool {
	for _, v := range it.SocialPreferences {
		if v == s || v == SocialBoth {
			return true
		}
	}
	return false
}
