// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once with WithRequiredStructEnabled,
// a json tag name function (so errors name the wire field) and the domain
// tags below.
//
// # Domain Tags
//
//   - emotional_goal: UNWIND, RECHARGE, LOCKING_IN, CHALLENGE, ADVENTURE_TIME, PROGRESS_ORIENTED
//   - interruptibility: a known HIGH/MEDIUM/LOW level (the zero value fails)
//   - energy_level: a known HIGH/MEDIUM/LOW level
//   - time_of_day: MORNING, MIDDAY, AFTERNOON, EVENING, LATE_NIGHT, ANY
//   - social_preference: SOLO, COOP, COMPETITIVE, BOTH
//   - audio_mode: full, low, muted
//   - content_rating: EVERYONE, TEEN, MATURE, ADULT
//
// # Usage
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// The recommendation engine does not fail on invalid requests; it reads
// RequestValidationError.Fields() and returns an invalid_request result
// instead.
package validation
