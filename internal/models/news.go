// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// News is a single article. CreatedAt is assigned by the database on insert
// and never changes afterwards.
type News struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Title          string    `json:"title" db:"title" validate:"required,max=64"`
	Slug           string    `json:"slug" db:"slug" validate:"required,max=50,slug"`
	Text           string    `json:"text" db:"text" validate:"required"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	MainCategoryID uuid.UUID `json:"main_category_id" db:"main_category_id" validate:"required"`

	// Populated by store methods.
	MainCategory         *Category  `json:"main_category,omitempty" validate:"-"`
	AdditionalCategories []Category `json:"additional_categories,omitempty" validate:"-"`
}

// URL returns the path of the article detail page.
func (n News) URL() string {
	return "/news/" + n.Slug + "/"
}

// InCategory reports whether the article is linked to the category slug,
// either as its main category or as one of the additional ones. It relies on
// MainCategory and AdditionalCategories being loaded.
func (n *News) InCategory(slug string) bool {
	if n.MainCategory != nil && n.MainCategory.Slug == slug {
		return true
	}
	for _, c := range n.AdditionalCategories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
