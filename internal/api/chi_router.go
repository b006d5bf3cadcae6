// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/lutem/internal/middleware"
)

// RouterConfig holds HTTP-layer settings.
type RouterConfig struct {
	CORS                 middleware.CORSConfig
	RequestTimeout       time.Duration
	SlowRequestThreshold time.Duration
	CompressionLevel     int
}

// DefaultRouterConfig returns the router defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CORS:                 middleware.DefaultCORSConfig(),
		RequestTimeout:       30 * time.Second,
		SlowRequestThreshold: middleware.DefaultSlowRequestThreshold,
		CompressionLevel:     5,
	}
}

// Router wires handlers to routes.
type Router struct {
	handler *Handler
	config  RouterConfig
}

// NewRouter creates a router for handler.
//
//nolint:gocritic // RouterConfig is copied once at startup
func NewRouter(handler *Handler, cfg RouterConfig) *Router {
	return &Router{handler: handler, config: cfg}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(router.config.SlowRequestThreshold))
	r.Use(middleware.CORS(router.config.CORS)) // global so OPTIONS preflight is answered

	r.NotFound(router.notFound)
	r.MethodNotAllowed(router.methodNotAllowed)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if router.config.RequestTimeout > 0 {
			r.Use(chimiddleware.Timeout(router.config.RequestTimeout))
		}
		if router.config.CompressionLevel > 0 {
			r.Use(chimiddleware.Compress(router.config.CompressionLevel, "application/json"))
		}

		r.Post("/recommendations", router.handler.Recommend)
		r.Get("/catalog", router.handler.Catalog)
		r.Post("/feedback", router.handler.LegacyFeedback)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/alternative", router.handler.SelectAlternative)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", router.handler.GetSession)
				r.Post("/start", router.handler.StartSession)
				r.Post("/end", router.handler.EndSession)
				r.Post("/skip", router.handler.SkipSession)
				r.Post("/feedback", router.handler.SessionFeedback)
			})
		})

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/satisfaction", router.handler.UserProfile)
			r.Get("/stats", router.handler.UserStats)
			r.Get("/weekly", router.handler.UserWeekly)
		})
	})

	return r
}

func (router *Router) notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
}

func (router *Router) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
