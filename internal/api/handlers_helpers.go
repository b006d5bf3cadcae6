// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/lutem/internal/models"
	"github.com/tomtom215/lutem/internal/validation"
)

// maxBodyBytes caps request bodies. The largest legitimate body is a
// recommendation request, well under 1 KiB.
const maxBodyBytes = 64 << 10

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// decodeJSON reads a single JSON object from the request body into dst.
// An empty body is an error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return errBodyTooLarge
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		default:
			return fmt.Errorf("invalid JSON body: %w", err)
		}
	}
	return nil
}

// decodeBody decodes the request body and writes a 400 envelope on failure.
// It reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "Request body too large", err)
			return false
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), err)
		return false
	}
	return true
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// validateBody runs validateRequest and writes a 400 VALIDATION_ERROR
// envelope on failure. It reports whether the handler should continue.
func validateBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	apiErr := validateRequest(v)
	if apiErr == nil {
		return true
	}
	respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
	return false
}

// pathParam returns a trimmed chi URL parameter.
func pathParam(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}
