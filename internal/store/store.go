// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the PostgreSQL persistence for categories and
// news articles. Lookups by key return (nil, nil) when the row is missing.
package store

import (
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// ErrConflict is returned when an insert collides with a unique constraint,
// such as a duplicate slug.
var ErrConflict = errors.New("already exists")

// DriverName is the database/sql driver registered by pgx/v5/stdlib.
const DriverName = "pgx"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// wrap adapts a plain *sql.DB for the stores.
func wrap(db *sql.DB) *sqlx.DB {
	return sqlx.NewDb(db, DriverName)
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
