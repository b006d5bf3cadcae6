// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package resilience

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/lutem/internal/metrics"
)

// Result labels recorded in lutem_circuit_breaker_requests_total.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
	ResultCanceled = "canceled"
)

// errCallerDone replaces a failure caused by the caller's context ending,
// so IsSuccessful can tell it apart. Callers never see it.
var errCallerDone = errors.New("caller context done")

// BreakerConfig holds circuit breaker settings.
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32        // allowed in half-open state
	Interval         time.Duration // reset interval for closed-state counts
	Timeout          time.Duration // time to stay open
	FailureThreshold uint32        // consecutive failures before opening
}

// TransitionFunc is called on every state change, after the metrics are
// updated.
type TransitionFunc func(name string, from, to gobreaker.State)

// NewBreaker creates a typed breaker. onTransition may be nil.
func NewBreaker[T any](cfg BreakerConfig, onTransition TransitionFunc) *gobreaker.CircuitBreaker[T] {
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCallerDone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordBreakerTransition(name, from.String(), to.String())
			if onTransition != nil {
				onTransition(name, from, to)
			}
		},
	})
}

// Execute runs fn through cb and records the result. When fn fails after
// ctx is done, the breaker does not count the failure and the original
// error is returned.
func Execute[T any](ctx context.Context, cb *gobreaker.CircuitBreaker[T], fn func() (T, error)) (T, error) {
	var callerErr error
	result, err := cb.Execute(func() (T, error) {
		v, err := fn()
		if err != nil && ctx.Err() != nil {
			callerErr = err
			return v, errCallerDone
		}
		return v, err
	})

	switch {
	case callerErr != nil:
		metrics.RecordBreakerResult(cb.Name(), ResultCanceled)
		return result, callerErr
	case err == nil:
		metrics.RecordBreakerResult(cb.Name(), ResultSuccess)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordBreakerResult(cb.Name(), ResultRejected)
	default:
		metrics.RecordBreakerResult(cb.Name(), ResultFailure)
	}
	return result, err
}
