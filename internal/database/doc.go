// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

/*
Package database provides the DuckDB-backed game catalog.

The catalog is a single games table holding each item's context tags, its
external popularity score and its lifetime satisfaction aggregate (sum and
count of accepted ratings across all users). List-valued tags are stored as
JSON arrays in VARCHAR columns and enums by their wire names.

Key Components:

  - DB: connection wrapper, schema creation and versioned migrations
  - FetchEligibleCatalog: every item that is fully classified (tagging
    source other than PENDING), ordered by id
  - GetItems / GetItem: lookups used to enrich session history
  - UpsertItem / UpsertItems: catalog maintenance and seeding
  - RecordSatisfaction: folds one accepted rating into the aggregate
  - LoadSeedFile / SeedFromFile: YAML or JSON seed files read with koanf

Usage Example:

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	items, err := db.FetchEligibleCatalog(ctx)

Every query records its latency and errors through internal/metrics.
*/
package database
