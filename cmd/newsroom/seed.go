// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsroom/internal/database"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty database with demo categories and news",
		Long: fmt.Sprintf(`Populate the database with %d categories and %d articles spread over
the past year. Nothing is written if any category or article exists.`,
			database.SeedCategories, database.SeedNews),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			res, err := database.Seed(ctx, db)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Skipped {
				fmt.Fprintln(out, "database already has content; nothing seeded")
				return nil
			}
			fmt.Fprintf(out, "seeded %d categories and %d news\n", res.Categories, res.News)
			return nil
		},
	}
}
