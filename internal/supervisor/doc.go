// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

/*
Package supervisor provides process supervision for Lutem using suture v4.

The tree groups long-running services into layers so a crash in one layer
is restarted there without touching the others:

	lutem
	├── data-layer
	│   └── SessionGCService      Badger value log GC on an interval
	├── messaging-layer
	│   └── ProcessorService      Watermill router (satisfaction aggregates)
	└── api-layer
	    └── APIServerService      chi router

Supervisor events (service start, failure, backoff, restart) are logged
through sutureslog. Pass a logger from logging.NewComponentSlogLogger so
they land in the same zerolog JSON stream as the rest of the process:

	tree, err := supervisor.NewSupervisorTree(
	    logging.NewComponentSlogLogger("supervisor"),
	    supervisor.TreeConfig{ShutdownTimeout: 10 * time.Second},
	)
	tree.AddDataService(services.NewSessionGCService(store, cfg.Sessions.GCInterval))
	tree.AddMessagingService(services.NewProcessorService(processor))
	tree.AddAPIService(services.NewAPIServerService(server, ":8080", 10*time.Second))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}

# Restart policy

Each failure increments a counter that decays over FailureDecay seconds.
Once the counter passes FailureThreshold the supervisor waits
FailureBackoff before the next restart. Defaults are suture's own
(5 failures, 30s decay, 15s backoff, 10s shutdown timeout).

A service returning nil is not restarted; one returning an error is.
Services return ctx.Err() when shutdown is requested.

# Not supervised

The DuckDB catalog and the Badger session store are libraries opened in
main and closed after the tree stops. Only their background work (GC) runs
as a service.
*/
package supervisor
