// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

// Package services adapts Lutem's long-running components to suture.Service.
//
// Each wrapper depends on a narrow interface rather than the concrete type,
// so the supervisor package never imports api, eventprocessor or session:
//
//   - APIServerService: binds the API listener, drains on Shutdown (*http.Server)
//   - ProcessorService: Run(ctx) (*eventprocessor.Processor)
//   - SessionGCService: RunGC() on a ticker (*session.BadgerStore)
package services
