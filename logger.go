// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package starbench

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for starbench and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// The logger is forwarded to gg so rasterizer diagnostics end up in the
// same place as engine diagnostics.
//
// Log levels used by starbench:
//   - [slog.LevelDebug]: cache rebuilds, sprite and path builds
//   - [slog.LevelInfo]: lifecycle (surface attached, commit, strategy switch)
//   - [slog.LevelWarn]: skipped work (zero-area viewport)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger. Sub-packages call this instead of
// holding their own copy so SetLogger takes effect everywhere.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
