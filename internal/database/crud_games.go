// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lutem/internal/metrics"
	"github.com/tomtom215/lutem/internal/models"
)

const gameColumns = `id, name, min_minutes, max_minutes, emotional_goals, interruptibility,
	energy_required, best_time_of_day, social_preferences, genres, audio_dependency,
	content_rating, explicit_content, popularity, satisfaction_sum, satisfaction_count,
	tagging_source, description, image_url, store_url`

// FetchEligibleCatalog returns every fully classified item ordered by id.
// Items still PENDING classification are excluded.
func (db *DB) FetchEligibleCatalog(ctx context.Context) ([]models.Item, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	query := `SELECT ` + gameColumns + ` FROM games WHERE tagging_source <> ? ORDER BY id`

	items, err := db.queryItems(ctx, query, string(models.TaggingPending))
	metrics.RecordDBQuery("select_eligible", "games", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("fetch eligible catalog: %w", err)
	}

	metrics.CatalogSize.Set(float64(len(items)))
	return items, nil
}

// ListItems returns every item, classified or not, ordered by id.
func (db *DB) ListItems(ctx context.Context) ([]models.Item, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	items, err := db.queryItems(ctx, `SELECT `+gameColumns+` FROM games ORDER BY id`)
	metrics.RecordDBQuery("select_all", "games", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetItem returns one item by id.
func (db *DB) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	row := db.conn.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("select_one", "games", time.Since(start), nil)
		return nil, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	metrics.RecordDBQuery("select_one", "games", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

// GetItems returns the items with the given ids keyed by id. Unknown ids
// are absent from the result.
func (db *DB) GetItems(ctx context.Context, ids []int64) (map[int64]models.Item, error) {
	out := make(map[int64]models.Item, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	start := time.Now()
	items, err := db.queryItems(ctx, `SELECT `+gameColumns+` FROM games WHERE id IN (`+placeholders+`)`, args...)
	metrics.RecordDBQuery("select_many", "games", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}

	for i := range items {
		out[items[i].ID] = items[i]
	}
	return out, nil
}

// CountItems returns the number of items in the catalog.
func (db *DB) CountItems(ctx context.Context) (int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var n int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// UpsertItem inserts or replaces an item's catalog fields. The lifetime
// satisfaction aggregate of an existing row is preserved.
func (db *DB) UpsertItem(ctx context.Context, item *models.Item) error {
	return db.UpsertItems(ctx, []models.Item{*item})
}

// UpsertItems upserts items in one transaction.
func (db *DB) UpsertItems(ctx context.Context, items []models.Item) error {
	for i := range items {
		if err := validateItem(&items[i]); err != nil {
			return err
		}
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		for i := range items {
			args, err := itemArgs(&items[i])
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, upsertGameSQL, args...); err != nil {
				return fmt.Errorf("upsert item %d: %w", items[i].ID, err)
			}
		}
		return nil
	})
	metrics.RecordDBQuery("upsert", "games", time.Since(start), err)
	return err
}

const upsertGameSQL = `
INSERT INTO games (id, name, min_minutes, max_minutes, emotional_goals, interruptibility,
	energy_required, best_time_of_day, social_preferences, genres, audio_dependency,
	content_rating, explicit_content, popularity, tagging_source, description, image_url,
	store_url, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	min_minutes = EXCLUDED.min_minutes,
	max_minutes = EXCLUDED.max_minutes,
	emotional_goals = EXCLUDED.emotional_goals,
	interruptibility = EXCLUDED.interruptibility,
	energy_required = EXCLUDED.energy_required,
	best_time_of_day = EXCLUDED.best_time_of_day,
	social_preferences = EXCLUDED.social_preferences,
	genres = EXCLUDED.genres,
	audio_dependency = EXCLUDED.audio_dependency,
	content_rating = EXCLUDED.content_rating,
	explicit_content = EXCLUDED.explicit_content,
	popularity = EXCLUDED.popularity,
	tagging_source = EXCLUDED.tagging_source,
	description = EXCLUDED.description,
	image_url = EXCLUDED.image_url,
	store_url = EXCLUDED.store_url,
	updated_at = CURRENT_TIMESTAMP
`

// RecordSatisfaction folds one accepted rating into the item's lifetime
// aggregate. DuckDB transaction conflicts are retried.
func (db *DB) RecordSatisfaction(ctx context.Context, itemID int64, score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var err error
	for attempt := 0; attempt <= db.maxConflictRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(db.conflictDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		var res sql.Result
		res, err = db.conn.ExecContext(ctx,
			`UPDATE games SET satisfaction_sum = satisfaction_sum + ?, satisfaction_count = satisfaction_count + 1 WHERE id = ?`,
			score, itemID)
		if isTransactionConflict(err) {
			continue
		}
		if err != nil {
			break
		}

		n, rerr := res.RowsAffected()
		if rerr == nil && n == 0 {
			err = fmt.Errorf("%w: %d", ErrItemNotFound, itemID)
		}
		break
	}
	metrics.RecordDBQuery("update_satisfaction", "games", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("record satisfaction for item %d: %w", itemID, err)
	}
	return nil
}

func (db *DB) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (db *DB) queryItems(ctx context.Context, query string, args ...interface{}) ([]models.Item, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item                                       models.Item
		goals, slots, social, genres               string
		interrupt, energy, audio, rating, explicit string
		tagging                                    string
		popularity                                 sql.NullFloat64
		satSum                                     int64
		satCount                                   int
	)

	err := row.Scan(&item.ID, &item.Name, &item.MinMinutes, &item.MaxMinutes, &goals, &interrupt,
		&energy, &slots, &social, &genres, &audio, &rating, &explicit, &popularity, &satSum, &satCount,
		&tagging, &item.Description, &item.ImageURL, &item.StoreURL)
	if err != nil {
		return nil, err
	}

	if err := decodeList(goals, &item.EmotionalGoals); err != nil {
		return nil, fmt.Errorf("item %d emotional_goals: %w", item.ID, err)
	}
	if err := decodeList(slots, &item.BestTimeOfDay); err != nil {
		return nil, fmt.Errorf("item %d best_time_of_day: %w", item.ID, err)
	}
	if err := decodeList(social, &item.SocialPreferences); err != nil {
		return nil, fmt.Errorf("item %d social_preferences: %w", item.ID, err)
	}
	if err := decodeList(genres, &item.Genres); err != nil {
		return nil, fmt.Errorf("item %d genres: %w", item.ID, err)
	}

	// Unknown enum text leaves the field unknown; scoring rules skip it.
	_ = item.Interruptibility.UnmarshalText([]byte(interrupt))
	_ = item.EnergyRequired.UnmarshalText([]byte(energy))
	_ = item.ContentRating.UnmarshalText([]byte(rating))
	item.AudioDependency = models.AudioDependency(audio)
	item.ExplicitContent = models.ExplicitContent(explicit)
	item.TaggingSource = models.TaggingSource(tagging)

	if popularity.Valid {
		p := popularity.Float64
		item.Popularity = &p
	}
	item.SatisfactionCount = satCount
	if satCount > 0 {
		item.SatisfactionAverage = float64(satSum) / float64(satCount)
	}

	return &item, nil
}

func decodeList[T any](raw string, dst *[]T) error {
	if raw == "" {
		*dst = []T{}
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func encodeList[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func itemArgs(item *models.Item) ([]interface{}, error) {
	goals, err := encodeList(item.EmotionalGoals)
	if err != nil {
		return nil, fmt.Errorf("encode emotional_goals: %w", err)
	}
	slots, err := encodeList(item.BestTimeOfDay)
	if err != nil {
		return nil, fmt.Errorf("encode best_time_of_day: %w", err)
	}
	social, err := encodeList(item.SocialPreferences)
	if err != nil {
		return nil, fmt.Errorf("encode social_preferences: %w", err)
	}
	genres, err := encodeList(item.Genres)
	if err != nil {
		return nil, fmt.Errorf("encode genres: %w", err)
	}

	var popularity interface{}
	if item.Popularity != nil {
		popularity = *item.Popularity
	}

	tagging := item.TaggingSource
	if tagging == "" {
		tagging = models.TaggingPending
	}

	return []interface{}{
		item.ID, item.Name, item.MinMinutes, item.MaxMinutes, goals, item.Interruptibility.String(),
		item.EnergyRequired.String(), slots, social, genres, string(item.AudioDependency),
		item.ContentRating.String(), string(item.ExplicitContent), popularity, string(tagging),
		item.Description, item.ImageURL, item.StoreURL,
	}, nil
}

func validateItem(item *models.Item) error {
	switch {
	case item.ID <= 0:
		return fmt.Errorf("%w: id must be positive", ErrInvalidItem)
	case strings.TrimSpace(item.Name) == "":
		return fmt.Errorf("%w: item %d has no name", ErrInvalidItem, item.ID)
	case item.MinMinutes < 0 || item.MaxMinutes < 0:
		return fmt.Errorf("%w: item %d has negative duration", ErrInvalidItem, item.ID)
	}
	return nil
}
