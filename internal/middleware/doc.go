// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

/*
Package middleware provides the chi-compatible HTTP middleware used by the
Lutem API.

Key Components:

  - RequestID: request and correlation IDs for logging.Ctx, echoed in the
    X-Request-ID response header
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by
    chi route pattern
  - AccessLog: one structured log line per request, warn on slow requests
  - CORS: go-chi/cors policy from server.cors_origins

Middleware Stack:

The API router applies the stack in this order (outermost first):

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(cfg.SlowRequestThreshold))
	r.Use(middleware.CORS(corsCfg))

RequestID runs first so every later log line carries request_id and
correlation_id. Route patterns are only known after routing completes, so
PrometheusMetrics and AccessLog read them after calling the next handler.
*/
package middleware
