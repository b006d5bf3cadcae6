// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

// Command lutemctl administers a Lutem deployment.
//
// seed writes a catalog file straight into the DuckDB database and must
// run while the server is stopped (DuckDB holds an exclusive file lock).
// The other commands talk to a running server over HTTP:
//
//	lutemctl seed --file catalog.yaml --db /data/lutem.duckdb
//	lutemctl recommend --minutes 30 --goal unwind --interruptibility high
//	lutemctl profile --user alice
//	lutemctl stats --user alice
//	lutemctl weekly --user alice
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var apiFlag string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lutemctl",
		Short:         "Administer a Lutem recommendation server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Lutem server base URL")

	root.AddCommand(newSeedCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newRecommendCmd())
	root.AddCommand(newUserCmd("profile", "satisfaction", "Show a user's satisfaction profile"))
	root.AddCommand(newUserCmd("stats", "stats", "Show a user's satisfaction statistics"))
	root.AddCommand(newUserCmd("weekly", "weekly", "Show a user's last seven days"))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
