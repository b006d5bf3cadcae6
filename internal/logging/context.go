// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	requestIDKey     contextKey = "request_id"
	userIDKey        contextKey = "user_id"
	loggerKey        contextKey = "logger"
)

// ctxFields are copied from the context onto every Ctx logger, in order.
var ctxFields = []contextKey{correlationIDKey, requestIDKey, userIDKey}

// GenerateCorrelationID returns a short id (8 hex characters) that follows
// one request through the session events it causes.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// GenerateRequestID returns a full UUID.
func GenerateRequestID() string {
	return uuid.New().String()
}

func withValue(ctx context.Context, key contextKey, v string) context.Context {
	if v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// ContextWithCorrelationID attaches a correlation id. Publishers copy it
// onto outgoing session events.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return withValue(ctx, correlationIDKey, id)
}

func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return ContextWithCorrelationID(ctx, GenerateCorrelationID())
}

// CorrelationIDFromContext returns "" when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, correlationIDKey)
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return withValue(ctx, requestIDKey, id)
}

func ContextWithNewRequestID(ctx context.Context) context.Context {
	return ContextWithRequestID(ctx, GenerateRequestID())
}

// RequestIDFromContext returns "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// ContextWithUserID tags log entries with the requesting user. An empty
// id (anonymous request) leaves ctx unchanged.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return withValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) string {
	return stringValue(ctx, userIDKey)
}

// ContextWithLogger stores a base logger for Ctx to build on.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the stored logger or the global one.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger carrying the correlation, request and user ids
// found in ctx.
//
//	logging.Ctx(ctx).Info().Str("session_id", id).Msg("Feedback recorded")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := CtxWith(ctx).Logger()
	return &logger
}

// CtxWith is Ctx for callers that add fields before building.
func CtxWith(ctx context.Context) zerolog.Context {
	logger := LoggerFromContext(ctx)
	logCtx := logger.With()
	for _, key := range ctxFields {
		if v := stringValue(ctx, key); v != "" {
			logCtx = logCtx.Str(string(key), v)
		}
	}
	return logCtx
}

// WithComponent returns a child of the global logger with a component
// field, e.g. WithComponent("seed").
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
