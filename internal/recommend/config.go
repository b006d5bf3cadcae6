// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights is the scoring table. Every rule reads its points from here.
	Weights Weights `json:"weights" koanf:"weights"`

	// MaxAlternatives is the number of runner-up items returned with the top pick.
	MaxAlternatives int `json:"max_alternatives" koanf:"max_alternatives"`

	// MaxReasons is how many rule reasons are joined into the reason string.
	MaxReasons int `json:"max_reasons" koanf:"max_reasons"`

	// CatalogTimeout bounds a single catalog fetch.
	CatalogTimeout time.Duration `json:"catalog_timeout" koanf:"catalog_timeout"`

	// ProfileTimeout bounds a single satisfaction profile lookup.
	ProfileTimeout time.Duration `json:"profile_timeout" koanf:"profile_timeout"`

	// Breaker configures the circuit breakers around collaborator calls.
	Breaker BreakerConfig `json:"breaker" koanf:"breaker"`
}

// Weights is the declarative scoring table. Penalties are negative.
type Weights struct {
	TimeFitFull    float64 `json:"time_fit_full" koanf:"time_fit_full"`
	TimeFitPartial float64 `json:"time_fit_partial" koanf:"time_fit_partial"`

	// EmotionalGoals is split evenly across the requested goals.
	EmotionalGoals float64 `json:"emotional_goals" koanf:"emotional_goals"`

	InterruptExact    float64 `json:"interrupt_exact" koanf:"interrupt_exact"`
	InterruptFlexible float64 `json:"interrupt_flexible" koanf:"interrupt_flexible"`
	InterruptPenalty  float64 `json:"interrupt_penalty" koanf:"interrupt_penalty"`

	EnergyExact   float64 `json:"energy_exact" koanf:"energy_exact"`
	EnergyLower   float64 `json:"energy_lower" koanf:"energy_lower"`
	EnergyPenalty float64 `json:"energy_penalty" koanf:"energy_penalty"`

	TimeOfDay float64 `json:"time_of_day" koanf:"time_of_day"`

	SocialMatch   float64 `json:"social_match" koanf:"social_match"`
	SocialPenalty float64 `json:"social_penalty" koanf:"social_penalty"`

	// PersonalRating scales a profile rating of 5 to this many points.
	PersonalRating float64 `json:"personal_rating" koanf:"personal_rating"`

	// GlobalRating scales a lifetime average of 5 to this many points.
	GlobalRating float64 `json:"global_rating" koanf:"global_rating"`

	GenrePreference float64 `json:"genre_preference" koanf:"genre_preference"`
	GenreAffinity   float64 `json:"genre_affinity" koanf:"genre_affinity"`
	BestTimeOfDay   float64 `json:"best_time_of_day" koanf:"best_time_of_day"`
	Popularity      float64 `json:"popularity" koanf:"popularity"`

	// AffinityThreshold is the minimum average rating that counts as affinity.
	AffinityThreshold float64 `json:"affinity_threshold" koanf:"affinity_threshold"`
}

// BreakerConfig configures gobreaker instances.
type BreakerConfig struct {
	MaxRequests      uint32        `json:"max_requests" koanf:"max_requests"`
	Interval         time.Duration `json:"interval" koanf:"interval"`
	Timeout          time.Duration `json:"timeout" koanf:"timeout"`
	FailureThreshold uint32        `json:"failure_threshold" koanf:"failure_threshold"`
}

// DefaultWeights returns the standard 100-point table plus bonuses.
func DefaultWeights() Weights {
	return Weights{
		TimeFitFull:       30,
		TimeFitPartial:    20,
		EmotionalGoals:    25,
		InterruptExact:    20,
		InterruptFlexible: 15,
		InterruptPenalty:  -10,
		EnergyExact:       15,
		EnergyLower:       12,
		EnergyPenalty:     -5,
		TimeOfDay:         5,
		SocialMatch:       5,
		SocialPenalty:     -5,
		PersonalRating:    15,
		GlobalRating:      10,
		GenrePreference:   15,
		GenreAffinity:     5,
		BestTimeOfDay:     3,
		Popularity:        10,
		AffinityThreshold: 4.0,
	}
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights:         DefaultWeights(),
		MaxAlternatives: 4,
		MaxReasons:      3,
		CatalogTimeout:  5 * time.Second,
		ProfileTimeout:  2 * time.Second,
		Breaker: BreakerConfig{
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          30 * time.Second,
			FailureThreshold: 5,
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	var errs []error

	if c.MaxAlternatives < 0 {
		errs = append(errs, fmt.Errorf("max_alternatives must be non-negative, got %d", c.MaxAlternatives))
	}
	if c.MaxReasons < 1 {
		errs = append(errs, fmt.Errorf("max_reasons must be positive, got %d", c.MaxReasons))
	}
	if c.CatalogTimeout <= 0 {
		errs = append(errs, fmt.Errorf("catalog_timeout must be positive, got %v", c.CatalogTimeout))
	}
	if c.ProfileTimeout <= 0 {
		errs = append(errs, fmt.Errorf("profile_timeout must be positive, got %v", c.ProfileTimeout))
	}
	if c.Breaker.FailureThreshold == 0 {
		errs = append(errs, errors.New("breaker.failure_threshold must be positive"))
	}

	w := c.Weights
	if w.TimeFitFull <= 0 || w.TimeFitPartial <= 0 {
		errs = append(errs, errors.New("weights.time_fit_* must be positive"))
	}
	if w.TimeFitPartial > w.TimeFitFull {
		errs = append(errs, fmt.Errorf("weights.time_fit_partial (%g) exceeds time_fit_full (%g)", w.TimeFitPartial, w.TimeFitFull))
	}
	if w.InterruptPenalty > 0 || w.EnergyPenalty > 0 || w.SocialPenalty > 0 {
		errs = append(errs, errors.New("weights.*_penalty must not be positive"))
	}
	if w.AffinityThreshold < 0 || w.AffinityThreshold > 5 {
		errs = append(errs, fmt.Errorf("weights.affinity_threshold must be in [0, 5], got %g", w.AffinityThreshold))
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
