// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package logger configures the process-wide slog logger. Output goes to
// stdout and, when a file path is given, to a size-rotated log file.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls handler format, level and file rotation.
type Options struct {
	Level      string // debug, info, warn, error
	Format     string // text, json
	FilePath   string // empty disables file output
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init builds a logger from opts, installs it as the slog default and
// returns a close function that flushes the rotating file, if any.
func Init(stdout io.Writer, opts Options) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }
	writer := stdout

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return nil, nil, err
		}
		file := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    orDefault(opts.MaxSizeMB, 100),
			MaxBackups: orDefault(opts.MaxBackups, 5),
			MaxAge:     orDefault(opts.MaxAgeDays, 30),
			Compress:   true,
		}
		writer = io.MultiWriter(stdout, file)
		closer = file.Close
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l, closer, nil
}

// ParseLevel maps a level name to its slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// FromContext returns the default logger annotated with the request id that
// chi's RequestID middleware stored in ctx.
func FromContext(ctx context.Context) *slog.Logger {
	if id := chimw.GetReqID(ctx); id != "" {
		return slog.Default().With("request_id", id)
	}
	return slog.Default()
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
