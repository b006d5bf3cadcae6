// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

/*
Package metrics provides Prometheus metrics for the recommendation service.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router.

# Available Metrics

Recommendation:
  - lutem_recommendations_total{outcome}
  - lutem_recommendation_duration_seconds
  - lutem_candidates_evaluated
  - lutem_scoring_failures_total

Sessions:
  - lutem_session_transitions_total{transition}
  - lutem_feedback_score
  - lutem_feedback_rejected_total{reason}
  - lutem_session_store_conflicts_total
  - lutem_session_store_gc_runs_total{result}

Catalog store:
  - lutem_duckdb_query_duration_seconds{operation,table}
  - lutem_duckdb_query_errors_total{operation,table}
  - lutem_catalog_eligible_items

HTTP, events and breakers:
  - lutem_api_requests_total{method,endpoint,status_code}
  - lutem_api_request_duration_seconds{method,endpoint}
  - lutem_api_active_requests
  - lutem_events_published_total{topic}, lutem_event_publish_errors_total{topic}
  - lutem_events_consumed_total{handler,result}
  - lutem_circuit_breaker_state{name}, lutem_circuit_breaker_requests_total{name,result}
  - lutem_circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
