// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package logging

import (
	"sort"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
)

// WatermillAdapter implements watermill.LoggerAdapter over zerolog.
// Watermill's Info level is chatty (one line per subscription and handler
// start), so Info is demoted to Debug unless verbose is set.
type WatermillAdapter struct {
	logger  zerolog.Logger
	verbose bool
}

var _ watermill.LoggerAdapter = (*WatermillAdapter)(nil)

// NewWatermillAdapter wraps logger for the event bus.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewWatermillAdapter(logger zerolog.Logger, verbose bool) *WatermillAdapter {
	return &WatermillAdapter{
		logger:  logger.With().Str("component", "watermill").Logger(),
		verbose: verbose,
	}
}

// Error logs msg at error level.
func (a *WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	withFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Info logs msg at info level, or debug when not verbose.
func (a *WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	ev := a.logger.Debug()
	if a.verbose {
		ev = a.logger.Info()
	}
	withFields(ev, fields).Msg(msg)
}

// Debug logs msg at debug level.
func (a *WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	withFields(a.logger.Debug(), fields).Msg(msg)
}

// Trace logs msg at trace level.
func (a *WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	withFields(a.logger.Trace(), fields).Msg(msg)
}

// With returns an adapter whose logger carries fields.
func (a *WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillAdapter{
		logger:  a.logger.With().Fields(map[string]interface{}(fields)).Logger(),
		verbose: a.verbose,
	}
}

// withFields adds fields in key order so output is stable.
func withFields(ev *zerolog.Event, fields watermill.LogFields) *zerolog.Event {
	if len(fields) == 0 {
		return ev
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ev = ev.Interface(k, fields[k])
	}
	return ev
}
