// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/logger"
)

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	envFile  string
	cfg      *config.Config
	closeLog func() error
}

// newRootCmd builds the command tree. Configuration is loaded before any
// subcommand runs: first the optional .env file, then the environment.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "newsroom",
		Short: "News site with category and date filtered listings",
		Long: `newsroom serves a paginated news site backed by PostgreSQL.

Articles are listed newest first, can be narrowed to one category
(main or additional) and to an inclusive range of days, and each has
its own detail page. Content is managed from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "path to a KEY=VALUE file loaded before the environment")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newSeedCmd(a),
		newCategoryCmd(a),
		newNewsCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	if err := config.LoadFile(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Logs go to stderr so command output on stdout stays clean.
	_, closeLog, err := logger.Init(cmd.ErrOrStderr(), logger.Options{
		Level:    cfg.LogLevel,
		Format:   cfg.LogFormat,
		FilePath: cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.cfg = cfg
	a.closeLog = closeLog
	return nil
}

// openDB connects to PostgreSQL using the loaded configuration.
func (a *app) openDB(ctx context.Context) (*sql.DB, error) {
	return database.Connect(ctx, a.cfg.DSN())
}
