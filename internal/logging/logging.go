// Package logging configures the slog logger shared by the CLI and engine.
//
// Scans are quiet by default: only warnings and errors are emitted, on
// stderr, so the report lines stay the only regular output.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a logger writing to w. Verbose lowers the level to debug.
// Format "json" selects the JSON handler; anything else is text.
func New(w io.Writer, verbose bool, format string) *slog.Logger {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("component", "secrets_scan")
}

// ValidFormat reports whether format names a known handler.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "", "text", "json":
		return true
	}
	return false
}
