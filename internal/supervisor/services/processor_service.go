// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package services

import (
	"context"
	"fmt"
)

// Runner is a component whose Run blocks until ctx is canceled.
//
// Satisfied by *eventprocessor.Processor.
type Runner interface {
	Run(ctx context.Context) error
}

// ProcessorService supervises the event processor. Run returning early is
// treated as a crash so suture restarts the router with a fresh
// subscription.
type ProcessorService struct {
	runner Runner
	name   string
}

// NewProcessorService wraps runner.
func NewProcessorService(runner Runner) *ProcessorService {
	return &ProcessorService{runner: runner, name: "event-processor"}
}

// Serve implements suture.Service.
func (s *ProcessorService) Serve(ctx context.Context) error {
	err := s.runner.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("event processor failed: %w", err)
	}
	return fmt.Errorf("event processor stopped unexpectedly")
}

// String implements fmt.Stringer for suture logging.
func (s *ProcessorService) String() string {
	return s.name
}
