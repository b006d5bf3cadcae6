// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package database

import (
	"context"
	"fmt"
)

// gamesTable holds the catalog. List columns are JSON arrays.
const gamesTable = `
CREATE TABLE IF NOT EXISTS games (
	id BIGINT PRIMARY KEY,
	name VARCHAR NOT NULL,
	min_minutes INTEGER NOT NULL,
	max_minutes INTEGER NOT NULL,
	emotional_goals VARCHAR NOT NULL DEFAULT '[]',
	interruptibility VARCHAR NOT NULL DEFAULT '',
	energy_required VARCHAR NOT NULL DEFAULT '',
	best_time_of_day VARCHAR NOT NULL DEFAULT '[]',
	social_preferences VARCHAR NOT NULL DEFAULT '[]',
	genres VARCHAR NOT NULL DEFAULT '[]',
	audio_dependency VARCHAR NOT NULL DEFAULT '',
	content_rating VARCHAR NOT NULL DEFAULT '',
	explicit_content VARCHAR NOT NULL DEFAULT '',
	popularity DOUBLE,
	satisfaction_sum BIGINT NOT NULL DEFAULT 0,
	satisfaction_count INTEGER NOT NULL DEFAULT 0,
	tagging_source VARCHAR NOT NULL DEFAULT 'PENDING',
	description VARCHAR NOT NULL DEFAULT '',
	image_url VARCHAR NOT NULL DEFAULT '',
	store_url VARCHAR NOT NULL DEFAULT '',
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func (db *DB) createTables(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, gamesTable); err != nil {
		return fmt.Errorf("failed to create games table: %w", err)
	}
	return nil
}
