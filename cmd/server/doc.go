// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

// Package main is the Lutem recommendation server.
//
// Startup order:
//
//  1. Configuration: defaults, config.yaml, then environment (Koanf v2)
//  2. Logging: zerolog, JSON or console
//  3. Catalog: DuckDB, seeded from database.seed_path when empty
//  4. Sessions: Badger store
//  5. Event bus: in-process channel, or NATS when nats.enabled
//  6. Engine, session recorder, satisfaction service, HTTP router
//  7. Supervisor tree: session GC, event processor, HTTP server
//
// SIGINT or SIGTERM cancels the tree. The HTTP server drains for
// supervisor.shutdown_timeout, then the event bus, session store and
// catalog are closed in that order.
//
// # Example
//
//	export DUCKDB_PATH=/data/lutem.duckdb
//	export CATALOG_SEED_PATH=/etc/lutem/catalog.yaml
//	export SESSION_STORE_PATH=/data/sessions
//	export CORS_ORIGINS=https://lutem.example.com
//	./lutem-server
//
// Single binary with the embedded NATS broker:
//
//	export NATS_ENABLED=true
//	export NATS_EMBEDDED=true
//	./lutem-server
package main
