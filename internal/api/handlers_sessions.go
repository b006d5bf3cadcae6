// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/lutem/internal/models"
)

// GetSession handles GET /api/v1/sessions/{id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.sessionTransition(w, r, h.sessions.Get)
}

// StartSession handles POST /api/v1/sessions/{id}/start.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	h.sessionTransition(w, r, h.sessions.Start)
}

// EndSession handles POST /api/v1/sessions/{id}/end.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.sessionTransition(w, r, h.sessions.End)
}

// SkipSession handles POST /api/v1/sessions/{id}/skip.
func (h *Handler) SkipSession(w http.ResponseWriter, r *http.Request) {
	h.sessionTransition(w, r, h.sessions.Skip)
}

func (h *Handler) sessionTransition(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (*models.Session, error)) {
	start := time.Now()

	sess, err := op(r.Context(), pathParam(r, "id"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, sess, start)
}

// SessionFeedback handles POST /api/v1/sessions/{id}/feedback.
//
// A score outside 1-5 is rejected with 400 and a second rating with 409; in
// both cases the stored session is unchanged.
func (h *Handler) SessionFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req FeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.sessions.RecordFeedback(r.Context(), pathParam(r, "id"), req.Score)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, sess, start)
}

// SelectAlternative handles POST /api/v1/sessions/alternative: the user
// picked one of the alternatives instead of the top recommendation, so a new
// session is created and started in one step.
func (h *Handler) SelectAlternative(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req AlternativeRequest
	if !decodeBody(w, r, &req) || !validateBody(w, r, &req) {
		return
	}

	item, err := h.catalog.GetItem(r.Context(), req.ItemID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	sess, err := h.sessions.SelectAlternative(r.Context(), item, req.Context.Snapshot())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusCreated, sess, start)
}

// LegacyFeedback handles POST /api/v1/feedback.
//
// Session-keyed feedback is the canonical path. Item-keyed feedback from
// older clients is adapted here by creating, starting, ending and rating a
// session for the item, so every score still lives on exactly one session.
func (h *Handler) LegacyFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req LegacyFeedbackRequest
	if !decodeBody(w, r, &req) || !validateBody(w, r, &req) {
		return
	}

	var (
		sess *models.Session
		err  error
	)
	if req.SessionID != "" {
		sess, err = h.sessions.RecordFeedback(r.Context(), req.SessionID, req.Score)
	} else {
		sess, err = h.rateItem(r.Context(), &req)
	}
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, sess, start)
}

// rateItem records item-keyed feedback as a completed session.
func (h *Handler) rateItem(ctx context.Context, req *LegacyFeedbackRequest) (*models.Session, error) {
	item, err := h.catalog.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	sess, err := h.sessions.Create(ctx, item, models.ContextSnapshot{UserID: req.UserID})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if _, err := h.sessions.Start(ctx, sess.ID); err != nil {
		return nil, fmt.Errorf("start session %s: %w", sess.ID, err)
	}
	if _, err := h.sessions.End(ctx, sess.ID); err != nil {
		return nil, fmt.Errorf("end session %s: %w", sess.ID, err)
	}

	h.logger.Debug().
		Int64("item_id", item.ID).
		Str("session_id", sess.ID).
		Msg("adapting item-keyed feedback to a session")

	return h.sessions.RecordFeedback(ctx, sess.ID, req.Score)
}
