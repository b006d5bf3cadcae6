// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/tomtom215/lutem/internal/logging"
)

// DefaultDrainTimeout bounds how long in-flight recommendation and
// feedback requests may take to finish once the API is asked to stop.
const DefaultDrainTimeout = 10 * time.Second

// HTTPServer is satisfied by *http.Server.
type HTTPServer interface {
	Serve(l net.Listener) error
	Shutdown(ctx context.Context) error
}

// APIServerService serves the Lutem API under suture.
//
// Every Serve call binds its own listener, so a restart after a crash
// rebinds the port and a bind failure is returned before anything is
// logged as listening. On cancellation the server stops accepting
// connections and in-flight requests get drainTimeout to complete; session
// events they publish still reach the bus because the publisher is closed
// only after the tree stops.
//
//	server := &http.Server{Handler: router}
//	tree.AddAPIService(services.NewAPIServerService(server, ":8080", 10*time.Second))
type APIServerService struct {
	server       HTTPServer
	addr         string
	drainTimeout time.Duration
	listen       func(network, address string) (net.Listener, error)

	mu    sync.Mutex
	bound net.Addr
}

// NewAPIServerService serves server on addr. A non-positive drainTimeout
// becomes DefaultDrainTimeout.
func NewAPIServerService(server HTTPServer, addr string, drainTimeout time.Duration) *APIServerService {
	if drainTimeout <= 0 {
		drainTimeout = DefaultDrainTimeout
	}
	return &APIServerService{
		server:       server,
		addr:         addr,
		drainTimeout: drainTimeout,
		listen:       net.Listen,
	}
}

// Addr returns the bound address, or nil while not listening. With port 0
// this is where the kernel-chosen port shows up.
func (s *APIServerService) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bound
}

func (s *APIServerService) setBound(a net.Addr) {
	s.mu.Lock()
	s.bound = a
	s.mu.Unlock()
}

// Serve implements suture.Service.
func (s *APIServerService) Serve(ctx context.Context) error {
	ln, err := s.listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("api listen on %s: %w", s.addr, err)
	}
	s.setBound(ln.Addr())
	defer s.setBound(nil)

	logger := logging.With().Str("component", "api").Str("addr", ln.Addr().String()).Logger()

	errCh := make(chan error, 1)
	go func() {
		// Serve closes ln when it returns.
		errCh <- s.server.Serve(ln)
	}()
	logger.Info().Msg("API server listening")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("API server failed")
			return fmt.Errorf("api server: %w", err)
		}
		return nil

	case <-ctx.Done():
		start := time.Now()
		drainCtx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
		defer cancel()

		if err := s.server.Shutdown(drainCtx); err != nil {
			logger.Warn().Err(err).Dur("drain_timeout", s.drainTimeout).Msg("API server did not drain in time")
			return fmt.Errorf("api server drain: %w", err)
		}
		<-errCh
		logger.Info().Dur("drained_in", time.Since(start)).Msg("API server stopped")
		return ctx.Err()
	}
}

func (s *APIServerService) String() string {
	return "api-server"
}
