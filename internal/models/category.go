// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"github.com/google/uuid"
)

// Category groups news articles. An article belongs to exactly one main
// category and may be tagged with any number of additional ones.
type Category struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name" validate:"required,max=64"`
	Slug string    `json:"slug" db:"slug" validate:"required,max=50,slug"`
}

// URL returns the path of the category listing page.
func (c Category) URL() string {
	return "/categories/" + c.Slug + "/"
}

// String returns the category name.
func (c Category) String() string {
	return c.Name
}
