// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPageSize is the number of articles on one listing page.
const DefaultPageSize = 10

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	TimeZone string // IANA name used to interpret date filters

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Listing
	PageSize int

	// Rate limiting for public routes
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Valkey holds the shared rate-limit windows when ValkeyHost is set;
	// otherwise each instance keeps its own in memory.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
	LogFile   string // optional rotating log file

	location *time.Location
}

// LoadFile reads KEY=VALUE pairs from a .env file into the process
// environment. Variables that are already set win. A missing file is not an
// error.
func LoadFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a value cannot be
// parsed or if critical values are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "8080"),
		Env:      envOrDefault("APP_ENV", "development"),
		TimeZone: envOrDefault("APP_TIMEZONE", "UTC"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "newsroom"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "newsroom"),
		DBSSLMode:  envOrDefault("POSTGRES_SSLMODE", "disable"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
		LogFile:   os.Getenv("LOG_FILE"),
	}

	var err error
	if cfg.PageSize, err = envInt("LISTING_PAGE_SIZE", DefaultPageSize); err != nil {
		return nil, err
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("LISTING_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.RateLimitRequests, err = envInt("RATE_LIMIT_REQUESTS", 120); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = envDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}

	cfg.location, err = time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE %q: %w", cfg.TimeZone, err)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Location returns the time zone date filters are interpreted in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
