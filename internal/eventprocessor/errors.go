// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import "errors"

// ErrPublisherClosed is returned when publishing after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// ErrNilPublisher is returned when a publisher is constructed without a transport.
var ErrNilPublisher = errors.New("publisher cannot be nil")

// ErrInvalidEvent marks payloads that can never be processed. The processor
// does not retry them.
var ErrInvalidEvent = errors.New("invalid session event")

// ErrInvalidConfig is returned when configuration is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrProcessorRunning is returned when handlers are added while the router runs.
var ErrProcessorRunning = errors.New("processor is running")
