// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

// Outcome distinguishes the three result shapes of a recommendation call.
type Outcome string

const (
	OutcomeRecommended    Outcome = "recommended"
	OutcomeNoMatch        Outcome = "no_match"
	OutcomeInvalidRequest Outcome = "invalid_request"
)

// Result messages.
const (
	NoMatchTitle      = "No Match Found"
	NoMatchMessage    = "Try adjusting your preferences - no games fit your current criteria"
	InvalidTitle      = "Validation Error"
	InvalidMessageFmt = "Please check: %s"
)

// Recommendation is one ranked item with its justification.
type Recommendation struct {
	Item            Item    `json:"item"`
	Reason          string  `json:"reason"`
	MatchPercentage int     `json:"match_percentage"`
	Score           float64 `json:"score"`
}

// FieldViolation names a request field that failed validation.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RecommendationResult is returned by the engine for every call.
//
// Outcome selects which fields are populated:
//   - recommended: Top, Alternatives, SessionID
//   - no_match: Title, Message
//   - invalid_request: Title, Message, Violations
type RecommendationResult struct {
	Outcome      Outcome          `json:"outcome"`
	Top          *Recommendation  `json:"top,omitempty"`
	Alternatives []Recommendation `json:"alternatives"`
	SessionID    string           `json:"session_id,omitempty"`

	Title      string           `json:"title,omitempty"`
	Message    string           `json:"message,omitempty"`
	Violations []FieldViolation `json:"violations,omitempty"`

	// TotalCandidates is the catalog size before filtering.
	TotalCandidates int `json:"total_candidates"`

	// EligibleCandidates is the number of items left after filtering.
	EligibleCandidates int `json:"eligible_candidates"`
}
