// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/tomtom215/lutem/internal/api"
	"github.com/tomtom215/lutem/internal/config"
	"github.com/tomtom215/lutem/internal/database"
	"github.com/tomtom215/lutem/internal/eventprocessor"
	"github.com/tomtom215/lutem/internal/logging"
	"github.com/tomtom215/lutem/internal/recommend"
	"github.com/tomtom215/lutem/internal/satisfaction"
	"github.com/tomtom215/lutem/internal/session"
)

// app holds every component main owns. Fields are set in dependency order
// and Close releases them in reverse.
type app struct {
	db        *database.DB
	store     *session.BadgerStore
	transport *eventprocessor.Transport
	publisher *eventprocessor.Publisher
	processor *eventprocessor.Processor
	engine    *recommend.Engine
	handler   http.Handler
}

// newApp opens storage, builds the event bus and wires the HTTP handler.
// Anything opened before a failure is closed again.
func newApp(ctx context.Context, cfg *config.Config) (a *app, err error) {
	a = &app{}
	defer func() {
		if err != nil {
			a.Close()
			a = nil
		}
	}()

	a.db, err = database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if cfg.Database.SeedPath != "" {
		if _, err = a.db.SeedFromFile(ctx, cfg.Database.SeedPath, false); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	a.store, err = session.Open(&cfg.Sessions)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	wmLogger := logging.NewWatermillAdapter(logging.Logger(), false)
	a.transport, err = newTransport(cfg, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("event transport: %w", err)
	}

	a.publisher, err = eventprocessor.NewPublisher(a.transport.Publisher(), wmLogger)
	if err != nil {
		return nil, err
	}
	a.publisher.SetCircuitBreaker(eventprocessor.NewCircuitBreaker(
		eventprocessor.DefaultCircuitBreakerConfig("event_publisher"), wmLogger))

	routerCfg := routerConfig(&cfg.NATS)
	a.processor, err = eventprocessor.NewProcessor(&routerCfg, a.transport, wmLogger)
	if err != nil {
		return nil, err
	}
	aggregates := eventprocessor.NewSatisfactionHandler(a.db, logging.Logger())
	if err = a.processor.AddConsumerHandler("satisfaction-aggregate", eventprocessor.TopicFeedback, aggregates.Handle); err != nil {
		return nil, err
	}

	recorder := session.NewRecorder(a.store, logging.Logger())
	recorder.SetEventPublisher(a.publisher)

	profiles := satisfaction.NewService(satisfaction.NewSessionHistory(a.store, a.db), logging.Logger())

	a.engine, err = recommend.NewEngine(&cfg.Recommend, a.db, logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("recommendation engine: %w", err)
	}
	a.engine.SetProfileSource(profiles)
	a.engine.SetSessionRecorder(recorder)

	handler := api.NewHandler(api.Dependencies{
		Engine:       a.engine,
		Sessions:     recorder,
		Satisfaction: profiles,
		Catalog:      a.db,
		Checkers:     []eventprocessor.HealthCheckable{a.transport, a.publisher, a.processor, engineHealth{a.engine}},
		Version:      version,
		Logger:       logging.Logger(),
	})

	routerOpts := api.DefaultRouterConfig()
	routerOpts.CORS.AllowedOrigins = cfg.Server.CORSOrigins
	a.handler = api.NewRouter(handler, routerOpts).SetupChi()

	logging.Info().
		Str("transport", a.transport.Name()).
		Str("catalog", cfg.Database.Path).
		Msg("Components initialized")
	return a, nil
}

// Close releases components in reverse dependency order. Safe on a
// partially built app.
func (a *app) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event publisher")
		}
	}
	if a.transport != nil {
		if err := a.transport.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event transport")
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}
}

// newTransport picks the in-process channel or NATS.
func newTransport(cfg *config.Config, wmLogger watermill.LoggerAdapter) (*eventprocessor.Transport, error) {
	if !cfg.NATS.Enabled {
		return eventprocessor.NewGoChannelTransport(wmLogger), nil
	}
	natsCfg := natsConfig(&cfg.NATS)
	return eventprocessor.NewNATSTransport(&natsCfg, wmLogger, logging.Logger())
}

func natsConfig(c *config.NATSConfig) eventprocessor.NATSConfig {
	out := eventprocessor.DefaultNATSConfig()
	out.URL = c.URL
	out.Embedded = c.EmbeddedServer
	out.Server.Host = c.Host
	out.Server.Port = c.Port
	out.QueueGroup = c.QueueGroup
	out.SubscribersCount = c.SubscribersCount
	if c.PublishTimeout > 0 {
		out.WriteTimeout = c.PublishTimeout
	}
	if c.RouterCloseTimeout > 0 {
		out.CloseTimeout = c.RouterCloseTimeout
	}
	return out
}

func routerConfig(c *config.NATSConfig) eventprocessor.RouterConfig {
	out := eventprocessor.DefaultRouterConfig()
	out.RetryMaxRetries = c.RouterRetryCount
	if c.RouterRetryInitialInterval > 0 {
		out.RetryInitialInterval = c.RouterRetryInitialInterval
	}
	if c.RouterCloseTimeout > 0 {
		out.CloseTimeout = c.RouterCloseTimeout
	}
	return out
}
