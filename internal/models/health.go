// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

// LivenessStatus is returned by the liveness probe.
type LivenessStatus struct {
	Alive   bool    `json:"alive"`
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime_seconds"`
}

// ComponentStatus is the health of one dependency in the readiness probe.
type ComponentStatus struct {
	Name     string                 `json:"name"`
	Healthy  bool                   `json:"healthy"`
	Degraded bool                   `json:"degraded,omitempty"`
	Message  string                 `json:"message,omitempty"`
	Error    string                 `json:"error,omitempty"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// ReadinessStatus is returned by the readiness probe.
//
// Example response (event bus degraded, still ready):
//
//	{
//	  "ready": true,
//	  "database_connected": true,
//	  "components": [
//	    {"name": "event_publisher", "healthy": true, "degraded": true,
//	     "message": "circuit breaker half-open"}
//	  ],
//	  "uptime_seconds": 812.4
//	}
type ReadinessStatus struct {
	Ready             bool              `json:"ready"`
	DatabaseConnected bool              `json:"database_connected"`
	Components        []ComponentStatus `json:"components"`
	Uptime            float64           `json:"uptime_seconds"`
}
