// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the level of the logger used before Init runs.
// The CLI and tests set it to silence startup output.
const EnvLogLevel = "LUTEM_LOG_LEVEL"

// Config holds logging configuration.
type Config struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic or
	// disabled. Unknown values fall back to info.
	Level string

	// Format is json or console.
	Format string

	// Caller adds file:line to every entry.
	Caller bool

	// Timestamp adds the "time" field.
	Timestamp bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns JSON output at info level with timestamps.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // logging must work before main calls Init
func init() {
	cfg := DefaultConfig()
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Level = lvl
	}
	initLogger(cfg)
}

// Init reconfigures the global logger. Safe to call more than once.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

// initLogger must be called with mu held.
func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	var out io.Writer = cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	logCtx := zerolog.New(out).With()
	if cfg.Timestamp {
		logCtx = logCtx.Timestamp()
	}
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	log = logCtx.Logger()
}

func parseLevel(level string) zerolog.Level {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case "warning":
		return zerolog.WarnLevel
	case "disabled":
		return zerolog.Disabled
	case "":
		return zerolog.InfoLevel
	default:
		parsed, err := zerolog.ParseLevel(l)
		if err != nil || parsed == zerolog.NoLevel {
			return zerolog.InfoLevel
		}
		return parsed
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the global logger. Tests use it to capture output.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// With starts a child logger of the global one.
//
//	gcLogger := logging.With().Str("component", "session_gc").Logger()
func With() zerolog.Context {
	l := Logger()
	return l.With()
}

func Trace() *zerolog.Event { l := Logger(); return l.Trace() }

// Debug starts a debug entry on the global logger.
//
//	logging.Debug().Str("path", seedPath).Msg("Loading catalog seed")
func Debug() *zerolog.Event { l := Logger(); return l.Debug() }

func Info() *zerolog.Event { l := Logger(); return l.Info() }

// Warn starts a warn entry.
//
//	logging.Warn().Err(err).Str("topic", topic).Msg("Event publish failed")
func Warn() *zerolog.Event { l := Logger(); return l.Warn() }

func Error() *zerolog.Event { l := Logger(); return l.Error() }

// Fatal logs and then calls os.Exit(1).
func Fatal() *zerolog.Event { l := Logger(); return l.Fatal() }

// Err is Error().Err(err), or an info entry when err is nil.
func Err(err error) *zerolog.Event { l := Logger(); return l.Err(err) }

// GetLevel returns the zerolog global level.
func GetLevel() zerolog.Level { return zerolog.GlobalLevel() }

// SetLevel sets the zerolog global level.
func SetLevel(level zerolog.Level) { zerolog.SetGlobalLevel(level) }

// IsLevelEnabled reports whether entries at level are written.
func IsLevelEnabled(level zerolog.Level) bool {
	return zerolog.GlobalLevel() <= level
}

// NewTestLogger returns a timestamped logger writing to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
