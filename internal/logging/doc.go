// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

// Package logging provides the zerolog-based structured logging used across Lutem.
//
// There is one global logger, configured once from main via Init. Packages
// that run per request or per session take an injected zerolog.Logger
// instead and tag it with a component field.
//
// # Quick Start
//
//	import "github.com/tomtom215/lutem/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("catalog_size", n).Msg("catalog seeded")
//	logging.Error().Err(err).Str("session_id", id).Msg("feedback rejected")
//
// # Output Formats
//
// JSON (production):
//
//	{"level":"info","time":"2026-10-19T10:30:00Z","message":"catalog seeded","catalog_size":42}
//
// Console (development):
//
//	10:30:00 INF catalog seeded catalog_size=42
//
// # Environment Variables
//
// LUTEM_LOG_LEVEL is read once at package init so tools and tests can quiet
// output before Init runs. The server itself takes its level and format from
// the logging section of the configuration (LOG_LEVEL, LOG_FORMAT,
// LOG_CALLER).
//
// # Request Context
//
// The HTTP layer stores request and correlation IDs on the context, and the
// recommendation handler adds the requesting user. Ctx and CtxWith return
// loggers that carry whichever of them are set:
//
//	ctx = logging.ContextWithUserID(ctx, req.UserID)
//	logging.Ctx(ctx).Info().Msg("recommendation served")
//	// {"level":"info","correlation_id":"1f3a9c0e","request_id":"...","user_id":"ana","message":"recommendation served"}
//
// The correlation ID also travels on session events as Watermill message
// metadata, so consumer logs can be joined to the request that caused them.
//
// # Adapters
//
// Two libraries log through their own interfaces and are bridged here:
//
//   - suture's sutureslog hook takes a *slog.Logger; use NewComponentSlogLogger.
//   - watermill takes a watermill.LoggerAdapter; use NewWatermillAdapter.
//
// # Testing
//
// NewTestLogger writes JSON to any io.Writer:
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
package logging
