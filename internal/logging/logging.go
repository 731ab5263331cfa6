// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging configures the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
)

// SetupLogger builds a console logger. Logs go to stderr so the lesson
// output on stdout stays clean enough to pipe.
func SetupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
