// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

/*
Package api provides the HTTP REST API layer for Lutem.

Key Components:

  - Router: chi route table and middleware stack (chi_router.go)
  - Handler: request handlers over narrow collaborator interfaces
  - Response formatting: every body is a models.APIResponse envelope
  - Error mapping: domain sentinel errors to status codes (errors.go)

Endpoints:

	POST /api/v1/recommendations            context request -> ranked result
	GET  /api/v1/catalog                    eligible catalog snapshot
	GET  /api/v1/sessions/{id}              session record
	POST /api/v1/sessions/{id}/start        set-once start stamp
	POST /api/v1/sessions/{id}/end          set-once end stamp
	POST /api/v1/sessions/{id}/skip         mark skipped
	POST /api/v1/sessions/{id}/feedback     {"score": 1-5}, once per session
	POST /api/v1/sessions/alternative       {"item_id", "context"}
	POST /api/v1/feedback                   legacy session- or item-keyed feedback
	GET  /api/v1/users/{userID}/satisfaction
	GET  /api/v1/users/{userID}/stats
	GET  /api/v1/users/{userID}/weekly
	GET  /health/live, /health/ready, /metrics

Error Mapping:

	session.ErrSessionNotFound, database.ErrItemNotFound  404 NOT_FOUND
	session.ErrInvalidScore, body validation              400 VALIDATION_ERROR
	session.ErrFeedbackExists, session.ErrSessionEnded    409 CONFLICT
	breaker open, deadline exceeded                       503 SERVICE_UNAVAILABLE

A recommendation request that fails validation is not an HTTP error: it
returns 200 with outcome "invalid_request" and the violated fields, and a
request nothing fits returns outcome "no_match".

Usage:

	handler := api.NewHandler(api.Dependencies{
	    Engine:       engine,
	    Sessions:     recorder,
	    Satisfaction: satisfactionSvc,
	    Catalog:      db,
	    Checkers:     []eventprocessor.HealthCheckable{publisher, processor},
	    Logger:       logging.Logger(),
	})
	srv := &http.Server{Handler: api.NewRouter(handler, api.DefaultRouterConfig()).SetupChi()}
*/
package api
