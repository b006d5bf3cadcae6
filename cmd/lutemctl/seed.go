// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/lutem/internal/config"
	"github.com/tomtom215/lutem/internal/database"
)

func newSeedCmd() *cobra.Command {
	var (
		file   string
		dbPath string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a catalog file into the DuckDB database",
		Long: `seed upserts every game in a YAML or JSON catalog file.

A database that already holds games is left alone unless --force is given.
Without --db the path comes from the server configuration (DUCKDB_PATH or
config.yaml).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbCfg, err := seedDatabaseConfig(dbPath)
			if err != nil {
				return err
			}

			db, err := database.New(&dbCfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			n, err := db.SeedFromFile(cmd.Context(), file, force)
			if err != nil {
				return err
			}
			if n == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "catalog already populated; use --force to overwrite")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d games into %s\n", n, dbCfg.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog file, YAML or JSON (required)")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB file; defaults to the configured database.path")
	cmd.Flags().BoolVar(&force, "force", false, "Upsert even when the catalog is not empty")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// seedDatabaseConfig resolves the database settings, preferring an explicit
// path over the loaded configuration.
func seedDatabaseConfig(dbPath string) (config.DatabaseConfig, error) {
	if dbPath != "" {
		return config.DatabaseConfig{Path: dbPath}, nil
	}
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg.Database, nil
}
