// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import "github.com/tomtom215/lutem/internal/models"

// Constraints are the hard eligibility limits applied before scoring.
type Constraints struct {
	AudioMode        models.AudioMode
	MaxContentRating models.ContentRating
	AllowExplicit    bool
}

// ConstraintsFor extracts the filter constraints from a request.
func ConstraintsFor(req *models.ContextRequest) Constraints {
	return Constraints{
		AudioMode:        req.AudioMode,
		MaxContentRating: req.MaxContentRating,
		AllowExplicit:    req.ExplicitAllowed(),
	}
}

// Filter returns the items that satisfy c, preserving catalog order.
// Missing tags never exclude an item.
func Filter(items []models.Item, c Constraints) []models.Item {
	out := make([]models.Item, 0, len(items))
	for i := range items {
		if eligible(&items[i], c) {
			out = append(out, items[i])
		}
	}
	return out
}

func eligible(it *models.Item, c Constraints) bool {
	return audioAllowed(it.AudioDependency, c.AudioMode) &&
		ratingAllowed(it.ContentRating, c.MaxContentRating) &&
		(c.AllowExplicit || explicitAllowed(it.ExplicitContent))
}

func audioAllowed(dep models.AudioDependency, mode models.AudioMode) bool {
	if !dep.Valid() {
		return true
	}
	switch mode {
	case models.AudioModeMuted:
		return dep == models.AudioOptional
	case models.AudioModeLow:
		return dep != models.AudioRequired
	default:
		return true
	}
}

func ratingAllowed(rating, ceiling models.ContentRating) bool {
	if !ceiling.Known() || !rating.Known() {
		return true
	}
	return rating.Rank() <= ceiling.Rank()
}

// explicitAllowed is evaluated only when the caller opted out of explicit
// content.
func explicitAllowed(level models.ExplicitContent) bool {
	if !level.Valid() {
		return true
	}
	return level == models.ExplicitNone
}
