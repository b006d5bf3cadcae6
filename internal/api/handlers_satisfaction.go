// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import (
	"net/http"
	"time"
)

// UserProfile handles GET /api/v1/users/{userID}/satisfaction.
func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	profile, err := h.satisfaction.Profile(r.Context(), pathParam(r, "userID"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, profile, start)
}

// UserStats handles GET /api/v1/users/{userID}/stats.
func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats, err := h.satisfaction.Stats(r.Context(), pathParam(r, "userID"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, stats, start)
}

// UserWeekly handles GET /api/v1/users/{userID}/weekly.
func (h *Handler) UserWeekly(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	summary, err := h.satisfaction.Weekly(r.Context(), pathParam(r, "userID"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, summary, start)
}
