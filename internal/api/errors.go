// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import (
	"context"
	"errors"
	"net/http"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/lutem/internal/database"
	"github.com/tomtom215/lutem/internal/satisfaction"
	"github.com/tomtom215/lutem/internal/session"
)

// errBodyTooLarge is reported when a request body exceeds maxBodyBytes.
var errBodyTooLarge = errors.New("request body too large")

// apiErrorFor maps a domain error to its HTTP status, error code and client
// message. Unknown errors become 500 INTERNAL_ERROR with a generic message.
func apiErrorFor(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound, ErrCodeNotFound, "Session not found"
	case errors.Is(err, database.ErrItemNotFound):
		return http.StatusNotFound, ErrCodeNotFound, "Game not found"
	case errors.Is(err, session.ErrInvalidScore):
		return http.StatusBadRequest, ErrCodeValidation, session.ErrInvalidScore.Error()
	case errors.Is(err, session.ErrEmptySessionID), errors.Is(err, satisfaction.ErrEmptyUserID):
		return http.StatusBadRequest, ErrCodeValidation, err.Error()
	case errors.Is(err, session.ErrFeedbackExists):
		return http.StatusConflict, ErrCodeConflict, "Feedback already recorded for this session"
	case errors.Is(err, session.ErrSessionEnded):
		return http.StatusConflict, ErrCodeConflict, "Session already ended"
	case errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, session.ErrStoreClosed):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, "An internal error occurred"
	}
}

// respondDomainError writes the envelope for err using apiErrorFor.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := apiErrorFor(err)
	respondError(w, r, status, code, message, err)
}
