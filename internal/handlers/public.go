// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers of the public news site.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsroom/internal/listing"
	"newsroom/internal/logger"
	"newsroom/internal/models"
	"newsroom/internal/render"
)

// Lister produces one page of a news listing.
type Lister interface {
	List(ctx context.Context, req listing.Request) (*listing.Result, error)
}

// NewsFinder looks up a single article. A missing article is (nil, nil).
type NewsFinder interface {
	FindBySlug(ctx context.Context, slug string) (*models.News, error)
}

// CategoryReader reads categories for navigation and headings.
type CategoryReader interface {
	List(ctx context.Context) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// Public groups handlers for the public-facing site.
type Public struct {
	renderer   *render.Renderer
	listings   Lister
	news       NewsFinder
	categories CategoryReader
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, listings Lister, news NewsFinder, categories CategoryReader) *Public {
	return &Public{
		renderer:   renderer,
		listings:   listings,
		news:       news,
		categories: categories,
	}
}

// Index renders every article, newest first.
func (p *Public) Index(w http.ResponseWriter, r *http.Request) {
	p.list(w, r, listingPage{
		heading: "All news",
		path:    "/",
	})
}

// Category renders the articles whose main or additional category matches
// the slug in the URL. An unknown slug is an empty listing, not a 404.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	cat, err := p.categories.FindBySlug(r.Context(), slugParam)
	if err != nil {
		p.serverError(w, r, "find category by slug failed", err, "slug", slugParam)
		return
	}

	page := listingPage{
		heading:      slugParam,
		path:         "/categories/" + slugParam + "/",
		categorySlug: slugParam,
	}
	if cat != nil {
		page.heading = cat.Name
		page.path = cat.URL()
	}
	p.list(w, r, page)
}

// Detail renders a single article with links to its categories.
func (p *Public) Detail(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	n, err := p.news.FindBySlug(r.Context(), slugParam)
	if err != nil {
		p.serverError(w, r, "find news by slug failed", err, "slug", slugParam)
		return
	}
	if n == nil {
		http.NotFound(w, r)
		return
	}

	nav, err := p.categories.List(r.Context())
	if err != nil {
		p.serverError(w, r, "list categories failed", err)
		return
	}

	active := ""
	if n.MainCategory != nil {
		active = n.MainCategory.Slug
	}
	p.renderer.Page(w, r, "news_detail", &render.PageData{
		Title:      n.Title,
		Categories: nav,
		Active:     active,
		Data:       map[string]any{"News": n},
	})
}

type listingPage struct {
	heading      string
	path         string
	categorySlug string
}

func (p *Public) list(w http.ResponseWriter, r *http.Request, lp listingPage) {
	ctx := r.Context()
	q := r.URL.Query()
	req := listing.Request{
		CategorySlug: lp.categorySlug,
		StartDate:    q.Get("start_date"),
		EndDate:      q.Get("end_date"),
		Page:         q.Get("page"),
	}

	res, err := p.listings.List(ctx, req)
	switch {
	case errors.Is(err, listing.ErrInvalidDate):
		logger.FromContext(ctx).Debug("rejected date filter", "error", err)
		http.Error(w, "Bad Request: dates must be formatted as YYYY-MM-DD", http.StatusBadRequest)
		return
	case errors.Is(err, listing.ErrPageNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		p.serverError(w, r, "list news failed", err, "category", lp.categorySlug)
		return
	}

	nav, err := p.categories.List(ctx)
	if err != nil {
		p.serverError(w, r, "list categories failed", err)
		return
	}

	p.renderer.Page(w, r, "news_list", &render.PageData{
		Title:      lp.heading,
		Categories: nav,
		Active:     lp.categorySlug,
		Data: map[string]any{
			"Heading":   lp.heading,
			"Path":      lp.path,
			"Items":     res.Items,
			"Page":      res.Page,
			"StartDate": req.StartDate,
			"EndDate":   req.EndDate,
		},
	})
}

func (p *Public) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, args ...any) {
	logger.FromContext(r.Context()).Error(msg, append([]any{"error", err}, args...)...)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
