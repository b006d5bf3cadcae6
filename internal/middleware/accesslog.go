// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/lutem/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which requests are logged
// at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs one line per request through the context logger, so the
// request and correlation IDs set by RequestID are included. Requests slower
// than slow are logged at warn, 5xx responses at error, everything else at
// debug. A non-positive slow uses DefaultSlowRequestThreshold.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	if slow <= 0 {
		slow = DefaultSlowRequestThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			switch {
			case status >= http.StatusInternalServerError:
				event = logger.Error()
			case duration > slow:
				event = logger.Warn().Dur("threshold", slow)
			}

			event.
				Str("method", r.Method).
				Str("route", RoutePattern(r)).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Int64("duration_ms", duration.Milliseconds()).
				Msg("http request")
		})
	}
}
