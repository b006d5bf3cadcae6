// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/lutem/internal/models"
)

// testLogger returns a zerolog logger for testing.
func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func float64Ptr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

// itemA is a short, relaxing, pausable, low-energy game.
func itemA() models.Item {
	return models.Item{
		ID:               1,
		Name:             "Item A",
		MinMinutes:       10,
		MaxMinutes:       20,
		EmotionalGoals:   []models.EmotionalGoal{models.GoalUnwind},
		Interruptibility: models.InterruptibilityHigh,
		EnergyRequired:   models.EnergyLow,
		TaggingSource:    models.TaggingManual,
	}
}

// itemB is a long, demanding, committed game.
func itemB() models.Item {
	return models.Item{
		ID:               2,
		Name:             "Item B",
		MinMinutes:       60,
		MaxMinutes:       120,
		EmotionalGoals:   []models.EmotionalGoal{models.GoalChallenge},
		Interruptibility: models.InterruptibilityLow,
		EnergyRequired:   models.EnergyHigh,
		TaggingSource:    models.TaggingManual,
	}
}

// unwindRequest is the 30-minute relaxing request used across scenarios.
func unwindRequest() models.ContextRequest {
	return models.ContextRequest{
		AvailableMinutes:         30,
		DesiredGoals:             []models.EmotionalGoal{models.GoalUnwind},
		RequiredInterruptibility: models.InterruptibilityHigh,
		EnergyLevel:              models.EnergyLow,
	}
}
