// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tearbench

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for tearbench and its backends.
// By default, tearbench produces no log output. Call SetLogger to enable it.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by tearbench:
//   - [slog.LevelDebug]: per-setup diagnostics (mesh sizes, buffer uploads)
//   - [slog.LevelInfo]: lifecycle events (window opened, loop state changes)
//   - [slog.LevelWarn]: non-fatal issues (degenerate geometry requests)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	tearbench.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	tearbench.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by tearbench.
// The backend packages (backend/gl, backend/headless) call this to share
// the same logger configuration without carrying their own setup.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
