// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

// Package satisfaction aggregates a user's session history into the
// profile consumed by the scorer and into dashboard statistics.
//
// Aggregation is a single-pass fold (Aggregator.Add) over RawSessionRecord
// values. Only COMPLETED sessions contribute ratings, tags, session lengths
// and weekdays; SKIPPED sessions are counted; ACTIVE sessions only count
// toward the total. Every "best" or "top" selection breaks ties by the
// order in which keys were first seen, so results do not depend on map
// iteration order.
//
// Service wraps a HistorySource and rebuilds the profile on every query.
// SessionHistory is the production HistorySource: it joins stored sessions
// with catalog metadata.
package satisfaction
