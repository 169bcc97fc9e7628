// Package types holds the small pieces shared by every gosbml component:
// the nil-safe logger and source spans.
package types

import (
	"context"
	"log/slog"
)

// LevelTrace is below slog.LevelDebug. It is used for per-item logging
// such as tokens, XML elements and constraint runs.
const LevelTrace = slog.Level(-8)

var bg = context.Background()

// Logger wraps an optional *slog.Logger. The zero value discards
// everything, so components can embed it without nil checks.
type Logger struct {
	L *slog.Logger
}

// Enabled reports whether a record at level would be emitted.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(bg, level)
}

// Log emits msg with attrs when level is enabled.
func (l *Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.Enabled(level) {
		l.L.LogAttrs(bg, level, msg, attrs...)
	}
}

// TraceEnabled reports whether LevelTrace is enabled. Callers check it
// before building attributes in hot loops.
func (l *Logger) TraceEnabled() bool { return l.Enabled(LevelTrace) }

// Trace logs at LevelTrace.
func (l *Logger) Trace(msg string, attrs ...slog.Attr) { l.Log(LevelTrace, msg, attrs...) }

// Component tags logger with a component name. A nil logger stays nil.
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", name))
}
