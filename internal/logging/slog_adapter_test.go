// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("output is not a single JSON object: %v (%q)", err, buf.String())
	}
	return m
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelInfo + 2, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := slogToZerologLevel(tt.level); got != tt.want {
				t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewSlogHandlerWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be disabled on a warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled on a warn logger")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	withGlobalLevel(t, zerolog.InfoLevel)
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	logger.Warn("service restarted",
		slog.String("service", "http"),
		slog.Int("attempt", 3),
		slog.Bool("backoff", true),
		slog.Duration("wait", 2*time.Second),
		slog.Any("error", errors.New("listener closed")),
	)

	m := decodeLine(t, &buf)
	checks := map[string]interface{}{
		"level":   "warn",
		"message": "service restarted",
		"service": "http",
		"attempt": float64(3),
		"backoff": true,
		"error":   "listener closed",
	}
	for k, want := range checks {
		if m[k] != want {
			t.Errorf("%s = %v, want %v", k, m[k], want)
		}
	}
	if _, ok := m["wait"]; !ok {
		t.Error("duration attribute missing")
	}
}

func TestSlogHandler_WithAttrsAndGroups(t *testing.T) {
	withGlobalLevel(t, zerolog.InfoLevel)
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf))).
		With("supervisor", "lutem").
		WithGroup("event").
		With("kind", "backoff")

	logger.Info("supervisor event",
		slog.Group("detail", slog.Float64("failures", 5.5)),
		slog.String("service", "session-gc"),
	)

	m := decodeLine(t, &buf)
	checks := map[string]interface{}{
		"supervisor":            "lutem",
		"event.kind":            "backoff",
		"event.detail.failures": 5.5,
		"event.service":         "session-gc",
	}
	for k, want := range checks {
		if m[k] != want {
			t.Errorf("%s = %v, want %v (line %s)", k, m[k], want, buf.String())
		}
	}
}

func TestSlogHandler_EmptyGroupAndAttrs(t *testing.T) {
	h := NewSlogHandlerWithLogger(zerolog.Nop())

	if h.WithGroup("") != slog.Handler(h) {
		t.Error("WithGroup(\"\") should return the same handler")
	}
	if h.WithAttrs(nil) != slog.Handler(h) {
		t.Error("WithAttrs(nil) should return the same handler")
	}
}

func TestNewComponentSlogLogger(t *testing.T) {
	buf := captureGlobal(t)

	NewComponentSlogLogger("supervisor").Info("tree started")

	out := buf.String()
	if !strings.Contains(out, `"component":"supervisor"`) || !strings.Contains(out, "tree started") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestNewSlogLogger_RespectsGlobalLevel(t *testing.T) {
	buf := captureGlobal(t)
	SetLevel(zerolog.ErrorLevel)

	logger := NewSlogLogger()
	logger.Info("hidden")
	logger.Error("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output: %s", out)
	}
}
