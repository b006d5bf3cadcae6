// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package services

import (
	"context"
	"time"

	"github.com/tomtom215/lutem/internal/logging"
)

// GarbageCollector reclaims storage space.
//
// Satisfied by *session.BadgerStore.
type GarbageCollector interface {
	RunGC() error
}

// DefaultGCInterval is used when NewSessionGCService gets a non-positive
// interval.
const DefaultGCInterval = 10 * time.Minute

// SessionGCService runs value log GC on the session store at a fixed
// interval. A failed run is logged and retried on the next tick; it never
// crashes the service, since the store stays usable without GC.
type SessionGCService struct {
	gc       GarbageCollector
	interval time.Duration
	name     string
}

// NewSessionGCService creates a GC service for gc.
func NewSessionGCService(gc GarbageCollector, interval time.Duration) *SessionGCService {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &SessionGCService{gc: gc, interval: interval, name: "session-gc"}
}

// Serve implements suture.Service.
func (s *SessionGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.gc.RunGC(); err != nil {
				logging.Warn().Err(err).Str("service", s.name).Msg("session store GC failed")
			}
		}
	}
}

// String implements fmt.Stringer for suture logging.
func (s *SessionGCService) String() string {
	return s.name
}
