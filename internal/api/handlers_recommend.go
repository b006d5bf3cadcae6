// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/lutem/internal/logging"
	"github.com/tomtom215/lutem/internal/models"
)

// Recommend handles POST /api/v1/recommendations.
//
// Invalid requests and empty rankings are successful calls: the result's
// outcome is invalid_request or no_match. Only collaborator failures (catalog
// or history unavailable) produce an error envelope.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ContextRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx := logging.ContextWithUserID(r.Context(), req.UserID)
	result, err := h.engine.Recommend(ctx, req)
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Recommendations are temporarily unavailable", err)
		return
	}

	logging.Ctx(ctx).Debug().
		Str("outcome", string(result.Outcome)).
		Str("session_id", result.SessionID).
		Int("eligible", result.EligibleCandidates).
		Msg("recommendation served")

	respondSuccess(w, http.StatusOK, result, start)
}

// CatalogResponse is the payload of GET /api/v1/catalog.
type CatalogResponse struct {
	Items []models.Item `json:"items"`
	Count int           `json:"count"`
}

// Catalog handles GET /api/v1/catalog and returns the games currently
// eligible for recommendation.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	items, err := h.catalog.FetchEligibleCatalog(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	respondSuccess(w, http.StatusOK, CatalogResponse{Items: items, Count: len(items)}, start)
}
