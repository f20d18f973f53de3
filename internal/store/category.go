// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"newsroom/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sqlx.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: wrap(db)}
}

const categoryColumns = `id, name, slug`

// List returns all categories ordered by name.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	err := s.db.SelectContext(ctx, &items, `SELECT `+categoryColumns+` FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return items, nil
}

// FindBySlug retrieves a category by its slug. Returns nil if not found.
func (s *CategoryStore) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	err := s.db.GetContext(ctx, &c, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	return &c, nil
}

// FindBySlugs resolves several slugs at once. Unknown slugs are reported in
// missing, in the order given.
func (s *CategoryStore) FindBySlugs(ctx context.Context, slugs []string) (found []models.Category, missing []string, err error) {
	if len(slugs) == 0 {
		return nil, nil, nil
	}
	query, args, err := psql.Select("id", "name", "slug").
		From("categories").
		Where(squirrel.Eq{"slug": slugs}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build category query: %w", err)
	}
	if err := s.db.SelectContext(ctx, &found, query, args...); err != nil {
		return nil, nil, fmt.Errorf("find categories by slug: %w", err)
	}

	known := make(map[string]bool, len(found))
	for _, c := range found {
		known[c.Slug] = true
	}
	for _, sl := range slugs {
		if !known[sl] {
			missing = append(missing, sl)
		}
	}
	return found, missing, nil
}

// Create validates and inserts a new category, filling in its ID.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) error {
	if err := models.Validate(c); err != nil {
		return err
	}
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Slug,
	).Scan(&c.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("create category %q: %w", c.Slug, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// Delete removes a category. Articles whose main category it is are removed
// with it; additional links are dropped.
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
