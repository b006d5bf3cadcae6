// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

/*
Package models defines the data structures shared by Lutem's packages.

Model Categories:

1. Catalog:
  - Item: a recommendable game with its context tags
  - Enumerations: Interruptibility, EnergyLevel, ContentRating (ranked ints
    serialized by name), EmotionalGoal, TimeOfDay, SocialPreference and the
    audio and explicit-content tags (string values)

2. Recommendation:
  - ContextRequest: the caller's current situation
  - RecommendationResult: outcome, ranked top pick, alternatives and the
    session created for the top pick

3. Sessions and Satisfaction:
  - Session: one recommendation event and its lifecycle timestamps
  - SessionEvent: published after each successful transition
  - RawSessionRecord: history row consumed by the satisfaction aggregator
  - SatisfactionProfile, SatisfactionStats, WeeklySummary: per-user views

4. API:
  - APIResponse, APIError, Metadata: the HTTP envelope
  - LivenessStatus, ReadinessStatus: health probe bodies

Ranked enumerations marshal to their wire names ("LOW", "TEEN", ...) and
parse case-insensitively. Unknown names fail with ErrUnknownEnum so the API
layer can reject the request instead of guessing.

Thread Safety:

Models are plain data with no internal locking. Items are treated as
immutable once loaded from the catalog.
*/
package models
