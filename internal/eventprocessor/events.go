// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"fmt"

	"github.com/tomtom215/lutem/internal/models"
)

// Session topics, one per lifecycle transition.
const (
	TopicCreated  = "session.created"
	TopicStarted  = "session.started"
	TopicEnded    = "session.ended"
	TopicSkipped  = "session.skipped"
	TopicFeedback = "session.feedback"
)

// Metadata keys set on every published message.
const (
	MetadataSessionID = "session_id"
	MetadataEventType = "event_type"
	MetadataUserID    = "user_id"
)

var knownEventTypes = map[models.SessionEventType]bool{
	models.EventSessionCreated:  true,
	models.EventSessionStarted:  true,
	models.EventSessionEnded:    true,
	models.EventSessionSkipped:  true,
	models.EventSessionFeedback: true,
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets callers match any validation failure with ErrInvalidEvent.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidEvent
}

// ValidateSessionEvent checks required fields.
func ValidateSessionEvent(e *models.SessionEvent) error {
	if e == nil {
		return &ValidationError{Field: "event", Message: "required"}
	}
	if e.EventID == "" {
		return &ValidationError{Field: "event_id", Message: "required"}
	}
	if !knownEventTypes[e.Type] {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown type %q", e.Type)}
	}
	if e.SessionID == "" {
		return &ValidationError{Field: "session_id", Message: "required"}
	}
	if e.OccurredAt.IsZero() {
		return &ValidationError{Field: "occurred_at", Message: "required"}
	}
	if e.Type == models.EventSessionFeedback {
		if e.Score == nil {
			return &ValidationError{Field: "score", Message: "required for feedback"}
		}
		if *e.Score < 1 || *e.Score > 5 {
			return &ValidationError{Field: "score", Message: fmt.Sprintf("must be 1-5, got %d", *e.Score)}
		}
	}
	return nil
}
