// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import "github.com/tomtom215/lutem/internal/models"

// Request bodies validated with go-playground/validator tags. Field names in
// validation errors use the json tag.
//
// The recommendation request itself (models.ContextRequest) is validated by
// the engine so that violations come back as an invalid_request outcome
// rather than a 400.

// FeedbackRequest is the body of POST /api/v1/sessions/{id}/feedback.
// The score range is checked by the session recorder.
type FeedbackRequest struct {
	Score int `json:"score"`
}

// AlternativeRequest is the body of POST /api/v1/sessions/alternative.
type AlternativeRequest struct {
	ItemID  int64              `json:"item_id" validate:"gt=0"`
	Context AlternativeContext `json:"context"`
}

// AlternativeContext is the part of the original request stored with the
// session.
type AlternativeContext struct {
	UserID           string                 `json:"user_id,omitempty"`
	AvailableMinutes int                    `json:"available_minutes" validate:"gte=0"`
	DesiredGoals     []models.EmotionalGoal `json:"desired_emotional_goals,omitempty" validate:"omitempty,dive,emotional_goal"`
	TimeOfDay        models.TimeOfDay       `json:"time_of_day,omitempty" validate:"omitempty,time_of_day"`
}

// Snapshot converts the context into the form persisted with a session.
func (c *AlternativeContext) Snapshot() models.ContextSnapshot {
	req := models.ContextRequest{
		UserID:           c.UserID,
		AvailableMinutes: c.AvailableMinutes,
		DesiredGoals:     c.DesiredGoals,
		TimeOfDay:        c.TimeOfDay,
	}
	return req.Snapshot()
}

// LegacyFeedbackRequest is the body of POST /api/v1/feedback.
//
// With session_id it rates that session. Without one, item_id names the
// game and a session is created, started, ended and rated in one call for
// clients that predate session tracking.
type LegacyFeedbackRequest struct {
	SessionID string `json:"session_id,omitempty" validate:"required_without=ItemID"`
	ItemID    int64  `json:"item_id,omitempty" validate:"omitempty,gt=0"`
	UserID    string `json:"user_id,omitempty" validate:"omitempty,max=128"`
	Score     int    `json:"score" validate:"gte=1,lte=5"`
}
