// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// SlogHandler implements slog.Handler on top of a zerolog logger so that
// slog-only libraries (sutureslog) end up in the same JSON stream.
//
// Attributes added through WithAttrs are rendered into the zerolog context
// once; groups become dotted key prefixes.
//
//	slogger := slog.New(logging.NewSlogHandler())
//	supervisor := suture.New("lutem", suture.Spec{
//	    EventHook: (&sutureslog.Handler{Logger: slogger}).MustHook(),
//	})
type SlogHandler struct {
	logger zerolog.Logger
	prefix string
}

// NewSlogHandler wraps the global zerolog logger.
func NewSlogHandler() *SlogHandler {
	return &SlogHandler{logger: Logger()}
}

// NewSlogHandlerWithLogger wraps a specific zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogHandlerWithLogger(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	zl := slogToZerologLevel(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// Handle writes the record through zerolog.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(slogToZerologLevel(record.Level))
	if event == nil {
		return nil
	}

	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(event, h.prefix, attr)
		return true
	})

	event.Msg(record.Message)
	return nil
}

// WithAttrs returns a handler whose logger carries attrs on every record.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	ctx := h.logger.With()
	for _, attr := range attrs {
		ctx = appendContextAttr(ctx, h.prefix, attr)
	}
	return &SlogHandler{logger: ctx.Logger(), prefix: h.prefix}
}

// WithGroup returns a handler that prefixes later keys with name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{logger: h.logger, prefix: h.prefix + name + "."}
}

func appendAttr(event *zerolog.Event, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := prefix + attr.Key
	v := attr.Value
	switch v.Kind() {
	case slog.KindGroup:
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = key + "."
		}
		for _, ga := range v.Group() {
			appendAttr(event, groupPrefix, ga)
		}
	case slog.KindString:
		event.Str(key, v.String())
	case slog.KindInt64:
		event.Int64(key, v.Int64())
	case slog.KindUint64:
		event.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		event.Float64(key, v.Float64())
	case slog.KindBool:
		event.Bool(key, v.Bool())
	case slog.KindDuration:
		event.Dur(key, v.Duration())
	case slog.KindTime:
		event.Time(key, v.Time())
	default:
		if err, ok := v.Any().(error); ok {
			event.AnErr(key, err)
			return
		}
		event.Interface(key, v.Any())
	}
}

func appendContextAttr(ctx zerolog.Context, prefix string, attr slog.Attr) zerolog.Context {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return ctx
	}

	key := prefix + attr.Key
	v := attr.Value
	switch v.Kind() {
	case slog.KindGroup:
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = key + "."
		}
		for _, ga := range v.Group() {
			ctx = appendContextAttr(ctx, groupPrefix, ga)
		}
		return ctx
	case slog.KindString:
		return ctx.Str(key, v.String())
	case slog.KindInt64:
		return ctx.Int64(key, v.Int64())
	case slog.KindBool:
		return ctx.Bool(key, v.Bool())
	case slog.KindDuration:
		return ctx.Dur(key, v.Duration())
	default:
		return ctx.Interface(key, v.Any())
	}
}

// slogToZerologLevel maps slog's open-ended integer levels onto zerolog's.
func slogToZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// NewSlogLogger creates an slog.Logger backed by the global zerolog logger.
func NewSlogLogger() *slog.Logger {
	return slog.New(NewSlogHandler())
}

// NewComponentSlogLogger creates an slog.Logger tagged with a component field.
func NewComponentSlogLogger(component string) *slog.Logger {
	return slog.New(NewSlogHandlerWithLogger(WithComponent(component)))
}
