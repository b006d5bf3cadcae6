// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

/*
Package eventprocessor carries session lifecycle events from the session
recorder to asynchronous consumers using Watermill.

# Architecture

	session.Recorder
	     |
	     v  PublishSessionEvent (circuit breaker)
	Publisher ──> Transport ──> Processor (watermill router)
	                 |               |
	          gochannel | NATS       v
	                          SatisfactionHandler ──> DuckDB games aggregate

Two transports are available:

  - gochannel: in-process pub/sub. Used when nats.enabled is false and in tests.
  - NATS: core NATS through watermill-nats/v2. With nats.embedded_server the
    broker runs inside the process (nats-server/v2), so a single binary needs
    no external infrastructure.

# Topics

Every transition publishes to "session.<type>":

	session.created
	session.started
	session.ended
	session.skipped
	session.feedback

Payloads are JSON-encoded models.SessionEvent values; the message UUID is the
event ID, which the processor uses to drop redeliveries.

# Processor Middleware

Outer to inner:

  - CorrelationID: propagates correlation IDs to produced messages
  - Deduplicator: drops messages whose event ID was seen recently
  - PoisonQueue: optional; routes exhausted messages to a topic
  - Retry: exponential backoff, skipped for ErrInvalidEvent
  - Recoverer: converts handler panics into errors

# Usage

	transport := eventprocessor.NewGoChannelTransport(wmLogger)
	publisher := eventprocessor.NewPublisher(transport.Publisher(), breakerCfg, wmLogger)
	recorder.SetEventPublisher(publisher)

	processor, _ := eventprocessor.NewProcessor(&routerCfg, transport, wmLogger)
	processor.AddConsumerHandler("satisfaction-aggregate",
	    eventprocessor.TopicFeedback,
	    eventprocessor.NewSatisfactionHandler(db, logger).Handle)
	go processor.Run(ctx)

# Delivery

Publishing is best effort from the recorder's point of view: the session
store is the system of record and a failed publish never fails a
transition. The only consumer that mutates state, SatisfactionHandler,
relies on the deduplicator for redeliveries within the window.
*/
package eventprocessor
