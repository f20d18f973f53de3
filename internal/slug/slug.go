// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-safe identifiers from category names and article
// titles.
package slug

import (
	"strings"

	gosimple "github.com/gosimple/slug"
)

// MaxLen is the longest slug the schema accepts.
const MaxLen = 50

// Generate transliterates s to ASCII, lowercases it and joins the words with
// hyphens. The result is cut to MaxLen without leaving a trailing hyphen.
// Example: "Category 1" → "category-1"
func Generate(s string) string {
	result := gosimple.Make(strings.TrimSpace(s))
	if len(result) > MaxLen {
		result = strings.TrimRight(result[:MaxLen], "-")
	}
	return result
}

// Valid reports whether s is already in slug form.
func Valid(s string) bool {
	return s != "" && len(s) <= MaxLen && gosimple.IsSlug(s)
}
