// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

import (
	"time"
)

// APIResponse is the envelope used by every HTTP endpoint.
//
// Status field values:
//   - "success": Request completed, see Data
//   - "error": Request failed, see Error
//
// Recommendation calls that fail request validation or find no match are
// still "success" envelopes; the Data payload carries the outcome.
//
// Example:
//
//	{
//	  "status": "success",
//	  "data": {"outcome": "recommended", "top": {...}, "session_id": "..."},
//	  "metadata": {"timestamp": "2026-03-01T18:00:00Z", "query_time_ms": 4}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response timing information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the structured error body.
//
// Common codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NOT_FOUND: Session or item does not exist
//   - CONFLICT: Session already has feedback
//   - SERVICE_UNAVAILABLE: Catalog or history collaborator is failing
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
