// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package session

import "errors"

// Sentinel errors. Callers match them with errors.Is.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
	ErrInvalidScore    = errors.New("satisfaction score must be between 1 and 5")
	ErrFeedbackExists  = errors.New("feedback already recorded for session")
	ErrSessionEnded    = errors.New("session already ended")
	ErrStoreClosed     = errors.New("session store is closed")
	ErrEmptySessionID  = errors.New("session id is required")
	ErrNilItem         = errors.New("item is required")
)
