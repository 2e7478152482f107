// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a configured slog logger for the exporter.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/absmach/samos-exporter/pkg/errors"
)

// ErrInvalidLogLevel indicates an unrecognized log level name.
var ErrInvalidLogLevel = errors.New("unrecognized log level")

// New returns a JSON logger writing to w at the given level.
// Accepted levels are debug, info, warn and error.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return &slog.Logger{}, errors.Wrap(ErrInvalidLogLevel, err)
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// ExitWithError exits the process with the given code. Meant to be
// deferred first in main so that deferred cleanups run before exit.
func ExitWithError(exitCode *int) {
	os.Exit(*exitCode)
}
