// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/lutem/internal/metrics"
)

// consumerHandler is a registered handler, replayed into every new router.
type consumerHandler struct {
	name    string
	topic   string
	handler message.NoPublishHandlerFunc
}

// Processor owns the consumer side of the event bus. A Watermill router
// cannot be restarted once closed, so Run builds a fresh router from the
// registered handlers each time it is called; a supervisor can restart it.
type Processor struct {
	config     RouterConfig
	subscriber message.Subscriber
	poisonPub  message.Publisher
	logger     watermill.LoggerAdapter
	dedupRepo  middleware.ExpiringKeyRepository

	mu       sync.Mutex
	handlers []consumerHandler
	router   *message.Router
	running  atomic.Bool
	ready    chan struct{}
}

// NewProcessor creates a processor consuming from transport.
func NewProcessor(cfg *RouterConfig, transport *Transport, logger watermill.LoggerAdapter) (*Processor, error) {
	if transport == nil {
		return nil, fmt.Errorf("%w: transport is required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if cfg == nil {
		defaultCfg := DefaultRouterConfig()
		cfg = &defaultCfg
	}

	p := &Processor{
		config:     *cfg,
		subscriber: routerSubscriber{transport.Subscriber()},
		poisonPub:  transport.Publisher(),
		logger:     logger,
		ready:      make(chan struct{}),
	}

	if cfg.DeduplicationTTL > 0 {
		repo, err := middleware.NewMapExpiringKeyRepository(cfg.DeduplicationTTL)
		if err != nil {
			return nil, fmt.Errorf("create deduplication repository: %w", err)
		}
		p.dedupRepo = repo
	}

	return p, nil
}

// AddConsumerHandler registers a handler for topic. Handlers must be added
// before Run.
func (p *Processor) AddConsumerHandler(name, topic string, handler message.NoPublishHandlerFunc) error {
	if p.running.Load() {
		return ErrProcessorRunning
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, h := range p.handlers {
		if h.name == name {
			return fmt.Errorf("%w: duplicate handler %q", ErrInvalidConfig, name)
		}
	}
	p.handlers = append(p.handlers, consumerHandler{
		name:    name,
		topic:   topic,
		handler: instrument(name, handler),
	})
	return nil
}

// Run builds a router and blocks until ctx is canceled or the router stops.
func (p *Processor) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrProcessorRunning
	}
	defer p.running.Store(false)

	router, err := p.newRouter()
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.router = router
	ready := p.ready
	p.mu.Unlock()

	runDone := make(chan struct{})
	go func() {
		select {
		case <-router.Running():
			p.mu.Lock()
			if p.ready == ready {
				close(ready)
			}
			p.mu.Unlock()
		case <-runDone:
			return
		}

		// A router without handlers never notices cancellation on its own.
		select {
		case <-ctx.Done():
			_ = router.Close() //nolint:errcheck // Run reports the outcome
		case <-runDone:
		}
	}()

	err = router.Run(ctx)
	close(runDone)

	p.mu.Lock()
	p.router = nil
	select {
	case <-p.ready:
		p.ready = make(chan struct{})
	default:
	}
	p.mu.Unlock()

	if err != nil {
		return fmt.Errorf("run router: %w", err)
	}
	return nil
}

// Running returns a channel closed once the current router is consuming.
func (p *Processor) Running() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// IsRunning reports whether Run is active.
func (p *Processor) IsRunning() bool {
	return p.running.Load()
}

// Close stops the current router, if any.
func (p *Processor) Close() error {
	p.mu.Lock()
	router := p.router
	p.mu.Unlock()
	if router == nil {
		return nil
	}
	return router.Close()
}

// HandlerCount returns the number of registered handlers.
func (p *Processor) HandlerCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.handlers)
}

// String implements fmt.Stringer for supervisor logs.
func (p *Processor) String() string {
	return "event-processor"
}

func (p *Processor) newRouter() (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: p.config.CloseTimeout,
	}, p.logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	// Outer to inner.
	router.AddMiddleware(middleware.CorrelationID)

	if p.dedupRepo != nil {
		dedup := &middleware.Deduplicator{
			KeyFactory: func(msg *message.Message) (string, error) {
				return msg.UUID, nil
			},
			Repository: p.dedupRepo,
		}
		router.AddMiddleware(dedup.Middleware)
	}

	if p.config.PoisonQueueTopic != "" {
		poison, err := middleware.PoisonQueue(p.poisonPub, p.config.PoisonQueueTopic)
		if err != nil {
			return nil, fmt.Errorf("create poison queue middleware: %w", err)
		}
		router.AddMiddleware(poison)
	}

	retry := middleware.Retry{
		MaxRetries:      p.config.RetryMaxRetries,
		InitialInterval: p.config.RetryInitialInterval,
		MaxInterval:     p.config.RetryMaxInterval,
		Multiplier:      p.config.RetryMultiplier,
		Logger:          p.logger,
		ShouldRetry: func(params middleware.RetryParams) bool {
			return isRetryable(params.Err)
		},
	}
	router.AddMiddleware(retry.Middleware)
	router.AddMiddleware(middleware.Recoverer)

	p.mu.Lock()
	for _, h := range p.handlers {
		router.AddConsumerHandler(h.name, h.topic, p.subscriber, h.handler)
	}
	p.mu.Unlock()

	return router, nil
}

// routerSubscriber keeps the router from closing the transport's subscriber
// on shutdown. Subscriptions still end when the router cancels their
// context; the Transport closes the subscriber itself.
type routerSubscriber struct {
	message.Subscriber
}

func (routerSubscriber) Close() error { return nil }

// isRetryable reports whether a handler error is worth another attempt.
func isRetryable(err error) bool {
	return !errors.Is(err, ErrInvalidEvent)
}

// instrument records the outcome of every handler invocation.
func instrument(name string, h message.NoPublishHandlerFunc) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		err := h(msg)
		metrics.RecordEventConsumed(name, err)
		return err
	}
}
