// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/lutem/internal/database"
	"github.com/tomtom215/lutem/internal/models"
)

func newCatalogCmd() *cobra.Command {
	var (
		dbPath  string
		pending bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the games stored in the DuckDB database",
		Long: `catalog prints every stored game, including those still PENDING
classification that the engine skips. --pending limits the listing to
those games.`,
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

			items, err := db.ListItems(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			shown := 0
			for i := range items {
				it := &items[i]
				if pending && it.TaggingSource != models.TaggingPending {
					continue
				}
				shown++
				goals := make([]string, len(it.EmotionalGoals))
				for j, g := range it.EmotionalGoals {
					goals[j] = string(g)
				}
				_, _ = fmt.Fprintf(out, "%4d  %-32s %3d-%-3d min  %-8s %s\n",
					it.ID, it.Name, it.MinMinutes, it.MaxMinutes, it.TaggingSource, strings.Join(goals, ","))
			}
			_, _ = fmt.Fprintf(out, "%d of %d games\n", shown, len(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB file; defaults to the configured database.path")
	cmd.Flags().BoolVar(&pending, "pending", false, "Only list games awaiting classification")
	return cmd
}
