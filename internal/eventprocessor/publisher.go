// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/lutem/internal/logging"
	"github.com/tomtom215/lutem/internal/metrics"
	"github.com/tomtom215/lutem/internal/models"
	"github.com/tomtom215/lutem/internal/resilience"
)

// Publisher wraps a Watermill publisher with circuit breaker protection and
// implements session.EventPublisher.
type Publisher struct {
	publisher      message.Publisher
	circuitBreaker *gobreaker.CircuitBreaker[interface{}]
	mu             sync.RWMutex
	closed         bool
	logger         watermill.LoggerAdapter
}

// NewPublisher wraps pub. A nil logger discards output.
func NewPublisher(pub message.Publisher, logger watermill.LoggerAdapter) (*Publisher, error) {
	if pub == nil {
		return nil, ErrNilPublisher
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Publisher{
		publisher: pub,
		logger:    logger,
	}, nil
}

// SetCircuitBreaker configures the circuit breaker for publish operations.
func (p *Publisher) SetCircuitBreaker(cb *gobreaker.CircuitBreaker[interface{}]) {
	p.circuitBreaker = cb
}

// Publish sends msg to topic, through the circuit breaker when one is set.
func (p *Publisher) Publish(ctx context.Context, topic string, msg *message.Message) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		middleware.SetCorrelationID(id, msg)
	}
	msg.SetContext(ctx)

	var err error
	if p.circuitBreaker != nil {
		_, err = resilience.Execute(ctx, p.circuitBreaker, func() (interface{}, error) {
			return nil, p.publisher.Publish(topic, msg)
		})
	} else {
		err = p.publisher.Publish(topic, msg)
	}

	metrics.RecordEventPublish(topic, err)
	if err != nil {
		p.logger.Debug("Publish failed", watermill.LogFields{
			"topic":        topic,
			"message_uuid": msg.UUID,
			"error":        err.Error(),
		})
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// PublishSessionEvent serializes and publishes a session transition.
func (p *Publisher) PublishSessionEvent(ctx context.Context, event *models.SessionEvent) error {
	msg, err := NewEventMessage(event)
	if err != nil {
		return err
	}
	return p.Publish(ctx, event.Topic(), msg)
}

// Close marks the publisher closed. The underlying transport is owned and
// closed by its Transport.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
