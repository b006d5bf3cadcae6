// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

/*
Package config provides centralized configuration management for Lutem.

Configuration is loaded with Koanf v2 in three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/lutem/config.yaml, /etc/lutem/config.yml
 3. Environment variables, through an explicit mapping table

Unmapped environment variables are ignored.

# Sections

  - server: HTTP listener, timeouts and CORS origins
  - logging: zerolog level, format and caller info
  - database: DuckDB catalog path, memory limit, threads and seed file
  - sessions: Badger session store path, durability and value-log GC
  - nats: event transport (in-process channel unless enabled) and router retry policy
  - recommend: scoring weights, alternatives, collaborator timeouts and breakers
  - supervisor: suture failure threshold, decay, backoff and shutdown timeout

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - CORS_ORIGINS: comma-separated (default: *)
  - ENVIRONMENT: development, staging or production

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Database:
  - DUCKDB_PATH (default: /data/lutem.duckdb), DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - CATALOG_SEED_PATH: YAML games file loaded when the catalog is empty

Sessions:
  - SESSION_STORE_PATH (default: /data/sessions), SESSION_STORE_IN_MEMORY
  - SESSION_STORE_SYNC_WRITES, SESSION_STORE_GC_INTERVAL, SESSION_STORE_GC_RATIO

NATS:
  - NATS_ENABLED, NATS_URL, NATS_EMBEDDED, NATS_HOST, NATS_PORT
  - NATS_SUBSCRIBERS, NATS_QUEUE_GROUP, NATS_PUBLISH_TIMEOUT
  - NATS_ROUTER_RETRY_COUNT, NATS_ROUTER_RETRY_INTERVAL, NATS_ROUTER_CLOSE_TIMEOUT

Recommendation engine:
  - RECOMMEND_MAX_ALTERNATIVES, RECOMMEND_MAX_REASONS
  - RECOMMEND_CATALOG_TIMEOUT, RECOMMEND_HISTORY_TIMEOUT
  - RECOMMEND_BREAKER_THRESHOLD, RECOMMEND_BREAKER_TIMEOUT

Scoring weights can only be overridden from the YAML file (recommend.weights).

# Usage Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("Starting server on %s\n", cfg.Server.Addr())

# Validation

Validate reports every problem at once, joined with errors.Join and prefixed
with the section name, e.g. "server: port must be between 1 and 65535, got 0".
*/
package config
