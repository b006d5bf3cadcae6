// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // recommended, no_match, invalid_request, error
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lutem_recommendation_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	CandidatesEvaluated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lutem_candidates_evaluated",
			Help:    "Number of catalog items scored per request",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	ScoringFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lutem_scoring_failures_total",
			Help: "Items dropped from a ranking because scoring panicked",
		},
	)

	// Session Metrics
	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_session_transitions_total",
			Help: "Session lifecycle transitions",
		},
		[]string{"transition"}, // created, started, ended, skipped, feedback
	)

	FeedbackScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lutem_feedback_score",
			Help:    "Distribution of accepted satisfaction scores",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	FeedbackRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_feedback_rejected_total",
			Help: "Feedback submissions rejected",
		},
		[]string{"reason"}, // invalid_score, already_recorded, not_found
	)

	SessionStoreConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lutem_session_store_conflicts_total",
			Help: "Badger transaction conflicts retried by the session store",
		},
	)

	SessionStoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_session_store_gc_runs_total",
			Help: "Badger value log GC runs by result",
		},
		[]string{"result"}, // rewritten, nothing, error
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lutem_duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lutem_catalog_eligible_items",
			Help: "Number of items returned by the last eligible catalog fetch",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lutem_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lutem_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_events_published_total",
			Help: "Session events published",
		},
		[]string{"topic"},
	)

	EventPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_event_publish_errors_total",
			Help: "Session events that failed to publish",
		},
		[]string{"topic"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_events_consumed_total",
			Help: "Session events handled by consumers",
		},
		[]string{"handler", "result"}, // result: ok, error
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lutem_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lutem_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lutem_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lutem_app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordRecommendation records one engine call.
func RecordRecommendation(outcome string, candidates int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	CandidatesEvaluated.Observe(float64(candidates))
}

// RecordScoringFailure counts an item dropped after a scoring panic.
func RecordScoringFailure() {
	ScoringFailures.Inc()
}

// RecordSessionTransition counts a lifecycle transition.
func RecordSessionTransition(transition string) {
	SessionTransitions.WithLabelValues(transition).Inc()
}

// RecordFeedback records an accepted satisfaction score.
func RecordFeedback(score int) {
	FeedbackScores.Observe(float64(score))
}

// RecordFeedbackRejected counts a refused feedback submission.
func RecordFeedbackRejected(reason string) {
	FeedbackRejected.WithLabelValues(reason).Inc()
}

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEventPublish records a publish attempt for topic.
func RecordEventPublish(topic string, err error) {
	if err != nil {
		EventPublishErrors.WithLabelValues(topic).Inc()
		return
	}
	EventsPublished.WithLabelValues(topic).Inc()
}

// RecordEventConsumed records a handler invocation.
func RecordEventConsumed(handler string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsConsumed.WithLabelValues(handler, result).Inc()
}

// RecordBreakerResult records a call through a named breaker.
func RecordBreakerResult(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordBreakerTransition records a state change and updates the state gauge.
func RecordBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}
