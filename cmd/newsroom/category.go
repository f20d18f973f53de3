// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"newsroom/internal/models"
	"newsroom/internal/slug"
	"newsroom/internal/store"
)

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	cmd.AddCommand(newCategoryAddCmd(a), newCategoryListCmd(a))
	return cmd
}

func newCategoryAddCmd(a *app) *cobra.Command {
	var name, slugFlag string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		Long:  "Create a category. The slug is derived from the name unless --slug is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := buildCategory(name, slugFlag)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.NewCategoryStore(db).Create(ctx, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created category %q (%s) at %s\n", c.Name, c.ID, c.URL())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "category name, at most 64 characters")
	cmd.Flags().StringVar(&slugFlag, "slug", "", "URL slug (default: derived from --name)")
	cmd.MarkFlagRequired("name")
	return cmd
}

// buildCategory assembles and validates a category from command-line input.
func buildCategory(name, slugFlag string) (*models.Category, error) {
	c := &models.Category{Name: strings.TrimSpace(name), Slug: strings.TrimSpace(slugFlag)}
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}
	if err := models.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func newCategoryListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			items, err := store.NewCategoryStore(db).List(ctx)
			if err != nil {
				return err
			}
			return printCategories(cmd, items)
		},
	}
}

func printCategories(cmd *cobra.Command, items []models.Category) error {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "no categories")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSLUG\tID")
	for _, c := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Slug, c.ID)
	}
	return tw.Flush()
}
