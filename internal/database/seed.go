// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/lutem/internal/logging"
	"github.com/tomtom215/lutem/internal/models"
)

// ErrEmptySeed is returned when a seed file contains no games.
var ErrEmptySeed = errors.New("seed file contains no games")

// seedGame is the on-disk shape of a catalog entry. Ordinal fields are kept
// as strings so parse failures can name the offending game.
type seedGame struct {
	ID                int64    `koanf:"id"`
	Name              string   `koanf:"name"`
	MinMinutes        int      `koanf:"min_minutes"`
	MaxMinutes        int      `koanf:"max_minutes"`
	EmotionalGoals    []string `koanf:"emotional_goals"`
	Interruptibility  string   `koanf:"interruptibility"`
	EnergyRequired    string   `koanf:"energy_required"`
	BestTimeOfDay     []string `koanf:"best_time_of_day"`
	SocialPreferences []string `koanf:"social_preferences"`
	Genres            []string `koanf:"genres"`
	AudioDependency   string   `koanf:"audio_dependency"`
	ContentRating     string   `koanf:"content_rating"`
	ExplicitContent   string   `koanf:"explicit_content"`
	Popularity        *float64 `koanf:"popularity"`
	TaggingSource     string   `koanf:"tagging_source"`
	Description       string   `koanf:"description"`
	ImageURL          string   `koanf:"image_url"`
	StoreURL          string   `koanf:"store_url"`
}

// LoadSeedFile reads the games list from a YAML file. JSON documents are
// valid YAML and load the same way.
//
// Example:
//
//	games:
//	  - id: 1
//	    name: Slay the Spire
//	    min_minutes: 20
//	    max_minutes: 60
//	    emotional_goals: [CHALLENGE, LOCKING_IN]
//	    interruptibility: HIGH
func LoadSeedFile(path string) ([]models.Item, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load seed file %s: %w", path, err)
	}

	var games []seedGame
	if err := k.UnmarshalWithConf("games", &games, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptySeed)
	}

	items := make([]models.Item, 0, len(games))
	for i := range games {
		item, err := games[i].toItem()
		if err != nil {
			return nil, fmt.Errorf("%s: game %d (%q): %w", path, games[i].ID, games[i].Name, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// SeedFromFile loads path into the catalog. A catalog that already holds
// games is left alone unless force is set; the returned count is the number
// of games written.
func (db *DB) SeedFromFile(ctx context.Context, path string, force bool) (int, error) {
	if !force {
		n, err := db.CountItems(ctx)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			logging.Info().
				Int("existing", n).
				Str("path", path).
				Msg("Catalog already populated, skipping seed")
			return 0, nil
		}
	}

	items, err := LoadSeedFile(path)
	if err != nil {
		return 0, err
	}
	if err := db.UpsertItems(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}

	logging.Info().
		Int("games", len(items)).
		Str("path", path).
		Bool("forced", force).
		Msg("Catalog seeded")
	return len(items), nil
}

func (g *seedGame) toItem() (models.Item, error) {
	item := models.Item{
		ID:              g.ID,
		Name:            g.Name,
		MinMinutes:      g.MinMinutes,
		MaxMinutes:      g.MaxMinutes,
		Genres:          g.Genres,
		AudioDependency: models.AudioDependency(strings.ToUpper(g.AudioDependency)),
		ExplicitContent: models.ExplicitContent(strings.ToUpper(g.ExplicitContent)),
		Popularity:      g.Popularity,
		TaggingSource:   models.TaggingSource(strings.ToUpper(g.TaggingSource)),
		Description:     g.Description,
		ImageURL:        g.ImageURL,
		StoreURL:        g.StoreURL,
	}
	if item.Genres == nil {
		item.Genres = []string{}
	}
	if item.TaggingSource == "" {
		item.TaggingSource = models.TaggingManual
	}

	var err error
	if g.Interruptibility != "" {
		if item.Interruptibility, err = models.ParseInterruptibility(g.Interruptibility); err != nil {
			return item, err
		}
	}
	if g.EnergyRequired != "" {
		if item.EnergyRequired, err = models.ParseEnergyLevel(g.EnergyRequired); err != nil {
			return item, err
		}
	}
	if g.ContentRating != "" {
		if item.ContentRating, err = models.ParseContentRating(g.ContentRating); err != nil {
			return item, err
		}
	}

	item.EmotionalGoals = make([]models.EmotionalGoal, 0, len(g.EmotionalGoals))
	for _, s := range g.EmotionalGoals {
		goal := models.EmotionalGoal(strings.ToUpper(s))
		if !goal.Valid() {
			return item, fmt.Errorf("%w: emotional goal %q", models.ErrUnknownEnum, s)
		}
		item.EmotionalGoals = append(item.EmotionalGoals, goal)
	}

	item.BestTimeOfDay = make([]models.TimeOfDay, 0, len(g.BestTimeOfDay))
	for _, s := range g.BestTimeOfDay {
		slot := models.TimeOfDay(strings.ToUpper(s))
		if !slot.Valid() {
			return item, fmt.Errorf("%w: time of day %q", models.ErrUnknownEnum, s)
		}
		item.BestTimeOfDay = append(item.BestTimeOfDay, slot)
	}

	item.SocialPreferences = make([]models.SocialPreference, 0, len(g.SocialPreferences))
	for _, s := range g.SocialPreferences {
		mode := models.SocialPreference(strings.ToUpper(s))
		if !mode.Valid() {
			return item, fmt.Errorf("%w: social preference %q", models.ErrUnknownEnum, s)
		}
		item.SocialPreferences = append(item.SocialPreferences, mode)
	}

	return item, validateItem(&item)
}
