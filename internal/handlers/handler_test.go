// handler_test.go provides shared test doubles for the handler tests.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"newsroom/internal/listing"
	"newsroom/internal/models"
	"newsroom/internal/render"
)

// fakeSource is an in-memory listing.Source.
type fakeSource struct {
	items []models.News
	err   error
}

func (f *fakeSource) CountNews(_ context.Context, scope listing.Scope) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.matching(scope)), nil
}

func (f *fakeSource) ListNews(_ context.Context, scope listing.Scope, limit, offset int) ([]models.News, error) {
	all := f.matching(scope)
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

// matching assumes items are stored newest first.
func (f *fakeSource) matching(scope listing.Scope) []models.News {
	var out []models.News
	for _, n := range f.items {
		if scope.CategorySlug != "" && !n.InCategory(scope.CategorySlug) {
			continue
		}
		if r := scope.Range; r != nil && (n.CreatedAt.Before(r.From) || !n.CreatedAt.Before(r.Until)) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (f *fakeSource) FindBySlug(_ context.Context, slug string) (*models.News, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].Slug == slug {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

// fakeCategories is an in-memory CategoryReader.
type fakeCategories struct {
	items []models.Category
	err   error
}

func (f *fakeCategories) List(context.Context) ([]models.Category, error) {
	return f.items, f.err
}

func (f *fakeCategories) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].Slug == slug {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

var (
	catSport   = models.Category{ID: uuid.New(), Name: "Sport", Slug: "sport"}
	catCulture = models.Category{ID: uuid.New(), Name: "Culture", Slug: "culture"}
)

type testEnv struct {
	Public     *Public
	Source     *fakeSource
	Categories *fakeCategories
}

// newTestEnv builds a Public handler over n sport articles, one day apart,
// newest first starting at 2026-06-30 12:00 UTC.
func newTestEnv(t *testing.T, n int) *testEnv {
	t.Helper()

	src := &fakeSource{}
	start := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)
	for i := range n {
		src.items = append(src.items, models.News{
			ID:             uuid.New(),
			Title:          "News Title " + strconv.Itoa(i),
			Slug:           "news-title-" + strconv.Itoa(i),
			Text:           "Lorem ipsum",
			CreatedAt:      start.AddDate(0, 0, -i),
			MainCategoryID: catSport.ID,
			MainCategory:   &catSport,
		})
	}
	cats := &fakeCategories{items: []models.Category{catCulture, catSport}}

	rn, err := render.New(time.UTC)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	svc := listing.NewService(src, 10, time.UTC)
	return &testEnv{
		Public:     NewPublic(rn, svc, src, cats),
		Source:     src,
		Categories: cats,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
