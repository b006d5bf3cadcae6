// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/lutem/internal/models"
)

// readinessTimeout bounds the dependency checks of one readiness probe.
const readinessTimeout = 2 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, models.LivenessStatus{
		Alive:   true,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// HealthReady handles readiness probe requests (Kubernetes-style)
//
// The service is ready when the catalog database answers and every
// registered component is healthy. A degraded component (for example an
// event publisher whose breaker is half-open) does not fail readiness.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := models.ReadinessStatus{
		Components: make([]models.ComponentStatus, 0, len(h.checkers)),
	}
	status.DatabaseConnected = h.catalog != nil && h.catalog.Ping(ctx) == nil
	status.Ready = status.DatabaseConnected

	for _, c := range h.checkers {
		health := c.HealthCheck(ctx)
		status.Components = append(status.Components, models.ComponentStatus{
			Name:     health.Name,
			Healthy:  health.Healthy,
			Degraded: health.Degraded,
			Message:  health.Message,
			Error:    health.Error,
			Details:  health.Details,
		})
		if !health.Healthy {
			status.Ready = false
		}
	}
	status.Uptime = time.Since(h.startTime).Seconds()

	if !status.Ready {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   StatusError,
			Data:     status,
			Metadata: metadataSince(start),
			Error: &models.APIError{
				Code:    ErrCodeServiceUnavailable,
				Message: "Service is not ready",
			},
		})
		return
	}

	respondSuccess(w, http.StatusOK, status, start)
}
