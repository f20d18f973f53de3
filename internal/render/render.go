// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"newsroom/internal/logger"
	"newsroom/internal/markdown"
	"newsroom/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title      string            // Page title for <title> tag
	Categories []models.Category // Category navigation, by name
	Active     string            // Slug of the highlighted category, if any
	Data       map[string]any    // Page-specific data
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout. Times are
// displayed in loc.
func New(loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"markdown": markdown.Render,
			"excerpt":  markdown.Excerpt,
			"date": func(t time.Time) string {
				return t.In(loc).Format("2 Jan 2006, 15:04")
			},
			"isoTime": func(t time.Time) string {
				return t.In(loc).Format(time.RFC3339)
			},
			"pageURL": PageURL,
		},
	}

	pages, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	for _, page := range pages {
		name := path.Base(page)
		if name == "base.html" {
			continue
		}
		tmplName := name[:len(name)-len(".html")]

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			templatesFS, "templates/base.html", page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full page or an HTMX partial, depending on the request
// headers. For HTMX requests, only the "content" block is sent. Output is
// buffered so a failing template yields a clean 500.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		logger.FromContext(r.Context()).Error("template not found", "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	execName := "base.html"
	if isHTMX(r) {
		execName = "content"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		logger.FromContext(r.Context()).Error("render template failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isHTMX(r) {
		w.Header().Set("Vary", "HX-Request")
	}
	buf.WriteTo(w)
}

// PageURL builds a listing link for page n under basePath, carrying the
// date filter along. Page 1 is the bare path.
func PageURL(basePath string, n int, startDate, endDate string) string {
	q := url.Values{}
	if n > 1 {
		q.Set("page", strconv.Itoa(n))
	}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	if len(q) == 0 {
		return basePath
	}
	return basePath + "?" + q.Encode()
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
