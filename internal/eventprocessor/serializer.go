// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/lutem/internal/models"
)

// SerializeEvent validates an event and encodes it as JSON.
func SerializeEvent(event *models.SessionEvent) ([]byte, error) {
	if err := ValidateSessionEvent(event); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// DeserializeEvent decodes and validates a JSON payload. Both failure modes
// wrap ErrInvalidEvent.
func DeserializeEvent(data []byte) (*models.SessionEvent, error) {
	var event models.SessionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrInvalidEvent, err)
	}
	if err := ValidateSessionEvent(&event); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	return &event, nil
}

// NewEventMessage builds the Watermill message for an event. The event ID
// doubles as the message UUID.
func NewEventMessage(event *models.SessionEvent) (*message.Message, error) {
	data, err := SerializeEvent(event)
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(event.EventID, data)
	msg.Metadata.Set(MetadataSessionID, event.SessionID)
	msg.Metadata.Set(MetadataEventType, string(event.Type))
	if event.UserID != "" {
		msg.Metadata.Set(MetadataUserID, event.UserID)
	}
	return msg, nil
}
