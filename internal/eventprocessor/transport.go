// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Transport pairs a Watermill publisher and subscriber that talk to the same
// broker, plus the embedded NATS server when one was started for them.
type Transport struct {
	name       string
	publisher  message.Publisher
	subscriber message.Subscriber
	server     *EmbeddedServer

	// disconnected counts broker connections currently down.
	disconnected atomic.Int32
}

// NewGoChannelTransport creates an in-process transport. The same GoChannel
// instance serves as publisher and subscriber.
func NewGoChannelTransport(logger watermill.LoggerAdapter) *Transport {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, logger)

	return &Transport{
		name:       "gochannel",
		publisher:  ch,
		subscriber: ch,
	}
}

// NewNATSTransport connects a publisher and subscriber to NATS, starting an
// embedded server first when cfg.Embedded is set. JetStream is not used:
// session events are fire-and-forget and the session store is the record.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewNATSTransport(cfg *NATSConfig, wmLogger watermill.LoggerAdapter, logger zerolog.Logger) (*Transport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if wmLogger == nil {
		wmLogger = watermill.NopLogger{}
	}

	t := &Transport{name: "nats"}
	url := cfg.URL

	if cfg.Embedded {
		srv, err := NewEmbeddedServer(&cfg.Server, logger)
		if err != nil {
			return nil, fmt.Errorf("start embedded NATS: %w", err)
		}
		t.server = srv
		url = srv.ClientURL()
	}

	natsOpts := func(role string) []natsgo.Option {
		return []natsgo.Option{
			natsgo.Name("lutem-" + role),
			natsgo.RetryOnFailedConnect(true),
			natsgo.MaxReconnects(cfg.MaxReconnects),
			natsgo.ReconnectWait(cfg.ReconnectWait),
			natsgo.ReconnectBufSize(cfg.ReconnectBuffer),
			natsgo.FlusherTimeout(cfg.WriteTimeout),
			natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
				t.disconnected.Add(1)
				if err != nil {
					wmLogger.Error("NATS disconnected", err, watermill.LogFields{"role": role})
				}
			}),
			natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
				t.disconnected.Add(-1)
				wmLogger.Info("NATS reconnected", watermill.LogFields{
					"role": role,
					"url":  nc.ConnectedUrl(),
				})
			}),
		}
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         url,
		NatsOptions: natsOpts("publisher"),
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   wmNats.JetStreamConfig{Disabled: true},
	}, wmLogger)
	if err != nil {
		t.shutdownServer()
		return nil, fmt.Errorf("create watermill publisher: %w", err)
	}
	t.publisher = pub

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              url,
		QueueGroupPrefix: cfg.QueueGroup,
		SubscribersCount: cfg.SubscribersCount,
		CloseTimeout:     cfg.CloseTimeout,
		NatsOptions:      natsOpts("subscriber"),
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream:        wmNats.JetStreamConfig{Disabled: true},
	}, wmLogger)
	if err != nil {
		_ = pub.Close()
		t.shutdownServer()
		return nil, fmt.Errorf("create watermill subscriber: %w", err)
	}
	t.subscriber = sub

	return t, nil
}

// Name reports the transport kind ("gochannel" or "nats").
func (t *Transport) Name() string {
	return t.name
}

// Publisher returns the raw Watermill publisher.
func (t *Transport) Publisher() message.Publisher {
	return t.publisher
}

// Subscriber returns the raw Watermill subscriber.
func (t *Transport) Subscriber() message.Subscriber {
	return t.subscriber
}

// Connected reports whether the broker connections are up.
func (t *Transport) Connected() bool {
	if t.server != nil && !t.server.IsRunning() {
		return false
	}
	return t.disconnected.Load() <= 0
}

// Close closes the publisher and subscriber, then stops any embedded server.
func (t *Transport) Close() error {
	var errs []error
	if err := t.publisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close publisher: %w", err))
	}
	// GoChannel uses one instance for both sides.
	if t.name != "gochannel" {
		if err := t.subscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close subscriber: %w", err))
		}
	}
	t.shutdownServer()
	return errors.Join(errs...)
}

func (t *Transport) shutdownServer() {
	if t.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = t.server.Shutdown(ctx) //nolint:errcheck // best effort during close
}
