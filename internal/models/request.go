// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

import "strings"

// ContextRequest is the caller's current situation.
// It is built per call and never persisted as-is.
type ContextRequest struct {
	// AvailableMinutes is the time the user has right now. Required, > 0.
	AvailableMinutes int `json:"available_minutes" validate:"gt=0"`

	// DesiredGoals is the non-empty set of emotional goals.
	DesiredGoals []EmotionalGoal `json:"desired_emotional_goals" validate:"min=1,dive,emotional_goal"`

	// RequiredInterruptibility is the minimum flexibility the user needs.
	RequiredInterruptibility Interruptibility `json:"required_interruptibility" validate:"interruptibility"`

	// EnergyLevel is the user's current energy. Optional.
	EnergyLevel EnergyLevel `json:"current_energy_level,omitempty" validate:"omitempty,energy_level"`

	// TimeOfDay is the current slot. Optional.
	TimeOfDay TimeOfDay `json:"time_of_day,omitempty" validate:"omitempty,time_of_day"`

	// SocialPreference is the desired play mode. Optional.
	SocialPreference SocialPreference `json:"social_preference,omitempty" validate:"omitempty,social_preference"`

	// AudioMode is full, low or muted. Empty means full.
	AudioMode AudioMode `json:"audio_availability,omitempty" validate:"omitempty,audio_mode"`

	// MaxContentRating is the rating ceiling. Unknown disables the filter.
	MaxContentRating ContentRating `json:"max_content_rating,omitempty" validate:"omitempty,content_rating"`

	// AllowExplicit is nil when the caller expressed no preference.
	AllowExplicit *bool `json:"allow_explicit,omitempty"`

	// PreferredGenres are matched case-insensitively against item genres.
	PreferredGenres []string `json:"preferred_genres,omitempty"`

	// UserID identifies the requester. Empty disables personalization.
	UserID string `json:"user_id,omitempty"`
}

// ExplicitAllowed reports whether explicit items may be recommended.
func (r *ContextRequest) ExplicitAllowed() bool {
	return r.AllowExplicit == nil || *r.AllowExplicit
}

// PrimaryMood is the first desired goal, lower-cased, used as the
// session's mood label.
func (r *ContextRequest) PrimaryMood() string {
	if len(r.DesiredGoals) == 0 {
		return ""
	}
	return strings.ToLower(string(r.DesiredGoals[0]))
}

// Snapshot captures the context stored with a session.
func (r *ContextRequest) Snapshot() ContextSnapshot {
	return ContextSnapshot{
		UserID:           r.UserID,
		AvailableMinutes: r.AvailableMinutes,
		DesiredMood:      r.PrimaryMood(),
		TimeOfDay:        r.TimeOfDay,
	}
}

// ContextSnapshot is the subset of a request persisted with a session.
type ContextSnapshot struct {
	UserID           string    `json:"user_id,omitempty"`
	AvailableMinutes int       `json:"available_minutes"`
	DesiredMood      string    `json:"desired_mood,omitempty"`
	TimeOfDay        TimeOfDay `json:"time_of_day,omitempty"`
}
