// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"newsroom/internal/models"
	"newsroom/internal/slug"
	"newsroom/internal/store"
)

func newNewsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Manage news articles",
	}
	cmd.AddCommand(newNewsAddCmd(a))
	return cmd
}

// newsInput is the raw command-line input of "news add".
type newsInput struct {
	title    string
	text     string
	textFile string
	slug     string
	main     string
	also     []string
}

func newNewsAddCmd(a *app) *cobra.Command {
	var in newsInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a news article",
		Long: `Create a news article in a main category and optionally in additional
categories. The slug is derived from the title unless --slug is given.
The body is Markdown, passed with --text or read from --text-file
("-" reads standard input).`,
		Example: `  newsroom news add --title "Storm hits coast" --main weather --also local --text "Winds of..."
  newsroom news add --title "Budget passed" --main politics --text-file body.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := in.build(cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			found, missing, err := store.NewCategoryStore(db).FindBySlugs(ctx, append([]string{in.main}, in.also...))
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return fmt.Errorf("unknown categories: %s", strings.Join(missing, ", "))
			}

			var additional []uuid.UUID
			for _, c := range found {
				if c.Slug == in.main {
					n.MainCategoryID = c.ID
					continue
				}
				additional = append(additional, c.ID)
			}

			if err := store.NewNewsStore(db).Create(ctx, n, additional); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created news %q at %s\n", n.Title, n.URL())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.title, "title", "", "headline, at most 64 characters")
	f.StringVar(&in.text, "text", "", "Markdown body")
	f.StringVar(&in.textFile, "text-file", "", `read the Markdown body from a file ("-" for stdin)`)
	f.StringVar(&in.slug, "slug", "", "URL slug (default: derived from --title)")
	f.StringVar(&in.main, "main", "", "slug of the main category")
	f.StringArrayVar(&in.also, "also", nil, "slug of an additional category (repeatable)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("main")
	cmd.MarkFlagsMutuallyExclusive("text", "text-file")
	return cmd
}

// build validates the input and returns the article without its category
// IDs, which need a database lookup.
func (in *newsInput) build(stdin io.Reader) (*models.News, error) {
	text := in.text
	if in.textFile != "" {
		var (
			b   []byte
			err error
		)
		if in.textFile == "-" {
			b, err = io.ReadAll(stdin)
		} else {
			b, err = os.ReadFile(in.textFile)
		}
		if err != nil {
			return nil, fmt.Errorf("read text: %w", err)
		}
		text = string(b)
	}

	n := &models.News{
		Title: strings.TrimSpace(in.title),
		Slug:  strings.TrimSpace(in.slug),
		Text:  strings.TrimSpace(text),
	}
	if n.Slug == "" {
		n.Slug = slug.Generate(n.Title)
	}

	if err := models.ValidateExcept(n, "MainCategoryID"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.main) == "" {
		return nil, fmt.Errorf("--main is required")
	}
	return n, nil
}
