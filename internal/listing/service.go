// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package listing turns listing requests (scope, date filter, page) into a
// page of news articles. Ordering is newest first; the queries themselves
// are delegated to a Source.
package listing

import (
	"context"
	"fmt"
	"time"

	"newsroom/internal/models"
)

// DefaultPageSize is used when a Service is built with a non-positive size.
const DefaultPageSize = 10

// Scope selects the articles a listing draws from.
type Scope struct {
	// CategorySlug limits the listing to articles whose main category or
	// one of whose additional categories has this slug. Empty means all.
	CategorySlug string
	// Range, when set, keeps only articles created inside it.
	Range *DateRange
}

// Source answers scoped count and window queries. Results of List must be
// ordered by creation time descending with a stable tie-break and contain
// each article at most once.
type Source interface {
	CountNews(ctx context.Context, scope Scope) (int, error)
	ListNews(ctx context.Context, scope Scope, limit, offset int) ([]models.News, error)
}

// Request carries the raw listing parameters from the query string.
type Request struct {
	CategorySlug string
	StartDate    string
	EndDate      string
	Page         string
}

// Result is one rendered-ready page of a listing.
type Result struct {
	Items []models.News
	Page  Page
	Scope Scope
}

// Service composes date filtering, scoping and pagination.
type Service struct {
	source   Source
	pageSize int
	loc      *time.Location
}

// NewService creates a Service reading from source. Dates are interpreted
// in loc (UTC when nil).
func NewService(source Source, pageSize int, loc *time.Location) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{source: source, pageSize: pageSize, loc: loc}
}

// PageSize returns the number of articles per page.
func (s *Service) PageSize() int {
	return s.pageSize
}

// List returns the requested page. It fails with ErrInvalidDate for a
// malformed date and ErrPageNotFound for a page outside the listing.
func (s *Service) List(ctx context.Context, req Request) (*Result, error) {
	rng, err := ParseDateRange(req.StartDate, req.EndDate, s.loc)
	if err != nil {
		return nil, err
	}
	scope := Scope{CategorySlug: req.CategorySlug, Range: rng}

	var total int
	if rng == nil || !rng.Empty() {
		total, err = s.source.CountNews(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("count news: %w", err)
		}
	}

	page, err := Paginate(total, s.pageSize, req.Page)
	if err != nil {
		return nil, err
	}

	res := &Result{Page: page, Scope: scope}
	if page.Len() == 0 {
		return res, nil
	}

	res.Items, err = s.source.ListNews(ctx, scope, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return res, nil
}
