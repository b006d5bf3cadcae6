// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

// Package session records recommendation sessions and their lifecycle.
//
// A session is created when the engine picks a top item and is later
// annotated with start, end, skip and feedback timestamps. Timestamps are
// set once: repeating a transition leaves the first stamp in place.
// Feedback is the one transition that is rejected on repeat
// (ErrFeedbackExists), so the stored score never changes after it has been
// accepted.
//
// # Storage
//
// BadgerStore keeps sessions in BadgerDB as JSON values:
//
//	session:<id>                       -> models.Session
//	user:<user_id>:<recommended_ns>:<id> -> (empty, index only)
//
// Updates run as read-modify-write inside a Badger optimistic transaction.
// Two concurrent updates to the same session conflict at commit; the loser
// is retried against the fresh value, so a double-feedback race ends with
// exactly one accepted score.
//
// # Events
//
// Recorder publishes a models.SessionEvent after every committed
// transition. Publishing is best effort: a failed publish is logged and
// never rolls back the transition.
package session
