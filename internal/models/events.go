// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

import "time"

// SessionEventType names a session lifecycle transition.
type SessionEventType string

const (
	EventSessionCreated  SessionEventType = "created"
	EventSessionStarted  SessionEventType = "started"
	EventSessionEnded    SessionEventType = "ended"
	EventSessionSkipped  SessionEventType = "skipped"
	EventSessionFeedback SessionEventType = "feedback"
)

// SessionEvent is published after every successful session transition.
type SessionEvent struct {
	EventID    string           `json:"event_id"`
	Type       SessionEventType `json:"type"`
	SessionID  string           `json:"session_id"`
	ItemID     int64            `json:"item_id"`
	UserID     string           `json:"user_id,omitempty"`
	Score      *int             `json:"score,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// Topic returns the message topic for the event, e.g. "session.feedback".
func (e *SessionEvent) Topic() string {
	return "session." + string(e.Type)
}
