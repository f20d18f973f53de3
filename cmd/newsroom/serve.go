// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"newsroom/internal/config"
	"newsroom/internal/handlers"
	"newsroom/internal/listing"
	"newsroom/internal/middleware"
	"newsroom/internal/render"
	"newsroom/internal/router"
	"newsroom/internal/store"
	"newsroom/internal/valkey"
	"newsroom/web"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 30 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  "Start the HTTP server. It never seeds data; run \"newsroom seed\" for that.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func (a *app) serve(ctx context.Context, migrate bool) error {
	cfg := a.cfg
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr(), "timezone", cfg.TimeZone)

	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrate {
		if err := migrateDB(ctx, db); err != nil {
			return err
		}
	}

	renderer, err := render.New(cfg.Location())
	if err != nil {
		return fmt.Errorf("init template renderer: %w", err)
	}

	categoryStore := store.NewCategoryStore(db)
	newsStore := store.NewNewsStore(db)
	listings := listing.NewService(newsStore, cfg.PageSize, cfg.Location())

	limiter, closeLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLimiter()

	r := router.New(router.Options{
		Public:  handlers.NewPublic(renderer, listings, newsStore, categoryStore),
		Static:  web.Static(),
		Limiter: limiter,
		DB:      db,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// newLimiter keeps rate-limit windows in Valkey when VALKEY_HOST is set and
// in process memory otherwise.
func newLimiter(ctx context.Context, cfg *config.Config) (middleware.Allower, func(), error) {
	if cfg.ValkeyHost == "" {
		rl := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		return rl, rl.Stop, nil
	}

	client, err := valkey.Connect(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to valkey: %w", err)
	}
	slog.Info("rate limiting shared through valkey", "requests", cfg.RateLimitRequests, "window", cfg.RateLimitWindow)
	return valkey.NewLimiter(client, cfg.RateLimitRequests, cfg.RateLimitWindow), func() { client.Close() }, nil
}
