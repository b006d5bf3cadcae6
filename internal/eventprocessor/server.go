// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/rs/zerolog"
)

// serverReadyTimeout bounds how long NewEmbeddedServer waits for the listener.
const serverReadyTimeout = 30 * time.Second

// EmbeddedServer runs a core NATS broker inside the process so a single
// Lutem binary can use the NATS transport without external infrastructure.
type EmbeddedServer struct {
	server    *server.Server
	clientURL string
}

// NewEmbeddedServer creates and starts an embedded NATS server.
// Returns an error if the server is not accepting connections within 30 seconds.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEmbeddedServer(cfg *ServerConfig, logger zerolog.Logger) (*EmbeddedServer, error) {
	opts := &server.Options{
		ServerName: "lutem-events",
		Host:       cfg.Host,
		Port:       cfg.Port,
		MaxPayload: cfg.MaxPayload,
		// The process installs its own SIGINT/SIGTERM handling.
		NoSigs: true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return nil, fmt.Errorf("create NATS server: %w", err)
	}
	ns.SetLogger(&natsLogger{logger: logger.With().Str("component", "nats-server").Logger()}, false, false)

	go ns.Start()

	if !ns.ReadyForConnections(serverReadyTimeout) {
		ns.Shutdown()
		return nil, errors.New("NATS server not ready within timeout")
	}

	return &EmbeddedServer{
		server:    ns,
		clientURL: ns.ClientURL(),
	}, nil
}

// ClientURL returns the connection URL for clients.
func (s *EmbeddedServer) ClientURL() string {
	return s.clientURL
}

// Shutdown stops the server, waiting for it to exit or ctx to end.
func (s *EmbeddedServer) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.server.Shutdown()
		s.server.WaitForShutdown()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// IsRunning returns server health status.
func (s *EmbeddedServer) IsRunning() bool {
	return s.server.Running()
}

// natsLogger routes nats-server log lines into zerolog.
type natsLogger struct {
	logger zerolog.Logger
}

func (l *natsLogger) Noticef(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *natsLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

// Fatalf logs at error level; the server shuts itself down after fatal conditions.
func (l *natsLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error().Bool("fatal", true).Msgf(format, v...)
}

func (l *natsLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

func (l *natsLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *natsLogger) Tracef(format string, v ...interface{}) {
	l.logger.Trace().Msgf(format, v...)
}
