// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"newsroom/internal/slug"
)

// Demo data volume.
const (
	SeedCategories = 10
	SeedNews       = 200
	maxAdditional  = 3
	maxAgeDays     = 365
	seedText       = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Proin vel eros ac dui volutpat ultricies. Donec fermentum urna ut arcu suscipit vestibulum."
)

// SeedResult reports what Seed did.
type SeedResult struct {
	Skipped    bool
	Categories int
	News       int
}

// Seed fills an empty database with demo categories and news. If any
// category or any article already exists it does nothing.
func Seed(ctx context.Context, db *sql.DB) (SeedResult, error) {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6e657773))
	return seed(ctx, db, rng, time.Now())
}

func seed(ctx context.Context, db *sql.DB, rng *rand.Rand, now time.Time) (SeedResult, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories) OR EXISTS (SELECT 1 FROM news)`,
	).Scan(&exists)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed check existing data: %w", err)
	}
	if exists {
		slog.Info("database already seeded, skipping")
		return SeedResult{Skipped: true}, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	categoryIDs := make([]uuid.UUID, 0, SeedCategories)
	for i := range SeedCategories {
		var id uuid.UUID
		err := tx.QueryRowContext(ctx,
			`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
			fmt.Sprintf("Category%d", i), slug.Generate(fmt.Sprintf("Category %d", i)),
		).Scan(&id)
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed insert category %d: %w", i, err)
		}
		categoryIDs = append(categoryIDs, id)
	}

	for i := range SeedNews {
		title := fmt.Sprintf("News Title %d", i)
		mainID := categoryIDs[rng.IntN(len(categoryIDs))]
		createdAt := now.AddDate(0, 0, -rng.IntN(maxAgeDays+1))

		var newsID uuid.UUID
		err := tx.QueryRowContext(ctx, `
			INSERT INTO news (title, slug, text, main_category_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, title, slug.Generate(title), seedText, mainID, createdAt).Scan(&newsID)
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed insert news %d: %w", i, err)
		}

		// Additional categories are drawn independently of the main one, so
		// an article may list its main category again.
		perm := rng.Perm(len(categoryIDs))
		n := rng.IntN(maxAdditional + 1)
		for _, idx := range perm[:n] {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO news_additional_categories (news_id, category_id) VALUES ($1, $2)`,
				newsID, categoryIDs[idx],
			)
			if err != nil {
				return SeedResult{}, fmt.Errorf("seed link news %d: %w", i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return SeedResult{}, fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with demo data",
		"categories", SeedCategories,
		"news", SeedNews,
	)
	return SeedResult{Categories: SeedCategories, News: SeedNews}, nil
}
