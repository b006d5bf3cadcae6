// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

// Package recommend turns a context request into a ranked game recommendation.
//
// # Architecture
//
// A request flows through four stages:
//
//   - Filter: hard eligibility (audio, content rating, explicit content)
//   - Scorer: an ordered pipeline of pure rules folded into one score
//   - Rank: stable descending sort, top pick plus alternatives
//   - Engine: validation, collaborator calls, session creation
//
// Rules read their points from a single Weights table in Config. The time
// fit rule is a hard gate: an item that cannot start in the available time
// scores 0 and is dropped by the ranker, as is anything whose total is not
// positive.
//
// Match percentages are relative to the top pick, which is always 100.
// Equal scores keep catalog order.
//
// # Collaborators
//
//   - CatalogSource: eligible catalog (DuckDB in production)
//   - ProfileSource: per-user satisfaction profile, optional
//   - SessionRecorder: persists the top pick, optional
//
// Catalog and profile calls run under per-call timeouts and circuit
// breakers. A failing profile lookup degrades to unpersonalized scoring; a
// failing catalog fetch fails the request.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cfg, catalogDB, logger)
//	engine.SetProfileSource(satisfactionService)
//	engine.SetSessionRecorder(recorder)
//
//	result, err := engine.Recommend(ctx, models.ContextRequest{
//	    AvailableMinutes:         30,
//	    DesiredGoals:             []models.EmotionalGoal{models.GoalUnwind},
//	    RequiredInterruptibility: models.InterruptibilityHigh,
//	})
//
// # Thread Safety
//
// Scoring and ranking hold no shared state. The engine is safe for
// concurrent use once its collaborators are set.
package recommend
