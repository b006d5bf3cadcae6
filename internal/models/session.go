// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

import "time"

// Session is one recommendation event, later annotated with start, end,
// skip and feedback.
//
// FeedbackAt is set if and only if SatisfactionScore is set.
type Session struct {
	ID               string     `json:"id"`
	ItemID           int64      `json:"item_id"`
	ItemName         string     `json:"item_name"`
	UserID           string     `json:"user_id,omitempty"`
	AvailableMinutes int        `json:"available_minutes"`
	DesiredMood      string     `json:"desired_mood,omitempty"`
	TimeOfDay        TimeOfDay  `json:"time_of_day,omitempty"`
	RecommendedAt    time.Time  `json:"recommended_at"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
	SkippedAt        *time.Time `json:"skipped_at,omitempty"`

	SatisfactionScore *int       `json:"satisfaction_score,omitempty"`
	FeedbackAt        *time.Time `json:"feedback_at,omitempty"`
}

// SessionState is the lifecycle position of a session.
type SessionState string

const (
	SessionCreated SessionState = "CREATED"
	SessionStarted SessionState = "STARTED"
	SessionEnded   SessionState = "ENDED"
	SessionSkipped SessionState = "SKIPPED"
)

// State derives the lifecycle position from the timestamps.
func (s *Session) State() SessionState {
	switch {
	case s.SkippedAt != nil:
		return SessionSkipped
	case s.EndedAt != nil:
		return SessionEnded
	case s.StartedAt != nil:
		return SessionStarted
	default:
		return SessionCreated
	}
}

// HasFeedback reports whether a satisfaction score was recorded.
func (s *Session) HasFeedback() bool {
	return s.SatisfactionScore != nil
}

// DurationMinutes returns the played length when both start and end are
// known.
func (s *Session) DurationMinutes() (int, bool) {
	if s.StartedAt == nil || s.EndedAt == nil || s.EndedAt.Before(*s.StartedAt) {
		return 0, false
	}
	return int(s.EndedAt.Sub(*s.StartedAt).Round(time.Minute) / time.Minute), true
}

// HistoryStatus classifies a session for satisfaction aggregation.
type HistoryStatus string

const (
	HistoryCompleted HistoryStatus = "COMPLETED"
	HistorySkipped   HistoryStatus = "SKIPPED"
	HistoryActive    HistoryStatus = "ACTIVE"
)

// RawSessionRecord is one row of a user's history as consumed by the
// satisfaction aggregator.
type RawSessionRecord struct {
	SessionID       string          `json:"session_id"`
	Status          HistoryStatus   `json:"status"`
	ItemID          int64           `json:"item_id"`
	ItemName        string          `json:"item_name,omitempty"`
	Genres          []string        `json:"genres,omitempty"`
	Rating          *int            `json:"rating,omitempty"`
	DurationMinutes *int            `json:"duration_minutes,omitempty"`
	EmotionalTags   []EmotionalGoal `json:"emotional_tags,omitempty"`
	DesiredMood     string          `json:"desired_mood,omitempty"`
	TimeOfDay       TimeOfDay       `json:"time_of_day,omitempty"`
	DayOfWeek       string          `json:"day_of_week,omitempty"`
	RecordedAt      time.Time       `json:"recorded_at"`
}

// TimeOfDayAt maps a wall-clock time to its slot.
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h < 6:
		return TimeOfDayLateNight
	case h < 12:
		return TimeOfDayMorning
	case h < 15:
		return TimeOfDayMidday
	case h < 18:
		return TimeOfDayAfternoon
	default:
		return TimeOfDayEvening
	}
}
