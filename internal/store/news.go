// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"newsroom/internal/listing"
	"newsroom/internal/models"
)

// NewsStore manages news articles and their category links. It satisfies
// listing.Source.
type NewsStore struct {
	db *sqlx.DB
}

// NewNewsStore returns a new NewsStore.
func NewNewsStore(db *sql.DB) *NewsStore {
	return &NewsStore{db: wrap(db)}
}

var _ listing.Source = (*NewsStore)(nil)

var newsColumns = []string{
	"n.id", "n.title", "n.slug", "n.text", "n.created_at", "n.main_category_id",
	"c.name AS category_name", "c.slug AS category_slug",
}

// newsRow is an article joined with its main category.
type newsRow struct {
	ID             uuid.UUID `db:"id"`
	Title          string    `db:"title"`
	Slug           string    `db:"slug"`
	Text           string    `db:"text"`
	CreatedAt      time.Time `db:"created_at"`
	MainCategoryID uuid.UUID `db:"main_category_id"`
	CategoryName   string    `db:"category_name"`
	CategorySlug   string    `db:"category_slug"`
}

func (r newsRow) model() models.News {
	return models.News{
		ID:             r.ID,
		Title:          r.Title,
		Slug:           r.Slug,
		Text:           r.Text,
		CreatedAt:      r.CreatedAt,
		MainCategoryID: r.MainCategoryID,
		MainCategory: &models.Category{
			ID:   r.MainCategoryID,
			Name: r.CategoryName,
			Slug: r.CategorySlug,
		},
	}
}

// scoped narrows a query over "news n" to the listing scope. Category
// membership is tested with semi-joins so an article linked to the category
// more than once still yields a single row.
func scoped(b squirrel.SelectBuilder, scope listing.Scope) squirrel.SelectBuilder {
	if scope.CategorySlug != "" {
		b = b.Where(squirrel.Or{
			squirrel.Expr(`EXISTS (
				SELECT 1 FROM categories mc
				WHERE mc.id = n.main_category_id AND mc.slug = ?)`, scope.CategorySlug),
			squirrel.Expr(`EXISTS (
				SELECT 1 FROM news_additional_categories nc
				JOIN categories ac ON ac.id = nc.category_id
				WHERE nc.news_id = n.id AND ac.slug = ?)`, scope.CategorySlug),
		})
	}
	if scope.Range != nil {
		b = b.Where(squirrel.GtOrEq{"n.created_at": scope.Range.From}).
			Where(squirrel.Lt{"n.created_at": scope.Range.Until})
	}
	return b
}

// CountNews returns how many articles fall inside scope.
func (s *NewsStore) CountNews(ctx context.Context, scope listing.Scope) (int, error) {
	query, args, err := scoped(psql.Select("COUNT(*)").From("news n"), scope).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := s.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count news: %w", err)
	}
	return total, nil
}

// ListNews returns one window of the articles in scope, newest first, with
// main and additional categories loaded.
func (s *NewsStore) ListNews(ctx context.Context, scope listing.Scope, limit, offset int) ([]models.News, error) {
	b := psql.Select(newsColumns...).
		From("news n").
		Join("categories c ON c.id = n.main_category_id").
		OrderBy("n.created_at DESC", "n.id DESC").
		Limit(uint64(max(limit, 0))).
		Offset(uint64(max(offset, 0)))
	query, args, err := scoped(b, scope).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []newsRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	items := make([]models.News, len(rows))
	for i, r := range rows {
		items[i] = r.model()
	}
	if err := s.loadAdditional(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindBySlug retrieves an article with its categories. Returns nil if not
// found.
func (s *NewsStore) FindBySlug(ctx context.Context, slug string) (*models.News, error) {
	query, args, err := psql.Select(newsColumns...).
		From("news n").
		Join("categories c ON c.id = n.main_category_id").
		Where(squirrel.Eq{"n.slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build detail query: %w", err)
	}

	var r newsRow
	err = s.db.GetContext(ctx, &r, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by slug: %w", err)
	}

	items := []models.News{r.model()}
	if err := s.loadAdditional(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// loadAdditional fills AdditionalCategories for every item with one query.
func (s *NewsStore) loadAdditional(ctx context.Context, items []models.News) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = i
	}

	query, args, err := psql.Select("nc.news_id", "c.id", "c.name", "c.slug").
		From("news_additional_categories nc").
		Join("categories c ON c.id = nc.category_id").
		Where(squirrel.Eq{"nc.news_id": ids}).
		OrderBy("c.name", "c.id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build additional categories query: %w", err)
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("load additional categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var newsID uuid.UUID
		var c models.Category
		if err := rows.Scan(&newsID, &c.ID, &c.Name, &c.Slug); err != nil {
			return fmt.Errorf("scan additional category: %w", err)
		}
		if i, ok := index[newsID]; ok {
			items[i].AdditionalCategories = append(items[i].AdditionalCategories, c)
		}
	}
	return rows.Err()
}

// Create validates and inserts an article with its additional category
// links in one transaction. ID and CreatedAt are filled in from the
// database. Links to the main category and repeated IDs are ignored.
func (s *NewsStore) Create(ctx context.Context, n *models.News, additional []uuid.UUID) error {
	if err := models.Validate(n); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO news (title, slug, text, main_category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, n.Title, n.Slug, n.Text, n.MainCategoryID).Scan(&n.ID, &n.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("create news %q: %w", n.Slug, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("create news: %w", err)
	}

	seen := map[uuid.UUID]bool{n.MainCategoryID: true}
	for _, id := range additional {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO news_additional_categories (news_id, category_id) VALUES ($1, $2)`,
			n.ID, id,
		); err != nil {
			return fmt.Errorf("link news category: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit news: %w", err)
	}
	return nil
}

// Delete removes an article and its category links.
func (s *NewsStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}
