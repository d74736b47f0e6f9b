package unitgo

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with unitgo-specific helpers so that log
// fields stay consistent across the registry and catalog code paths.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler
// falls back to a text handler on stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// LogResolve logs a unit expression resolution.
func (l *Logger) LogResolve(expr string, err error) {
	if err != nil {
		l.Debug("unit resolve failed", "expr", expr, "error", err)
		return
	}
	l.Debug("unit resolved", "expr", expr)
}

// LogRegister logs a custom unit registration.
func (l *Logger) LogRegister(name string, err error) {
	if err != nil {
		l.Error("unit registration failed", "name", name, "error", err)
		return
	}
	l.Info("unit registered", "name", name)
}

// LogCatalogLoad logs the outcome of loading a unit definition catalog.
func (l *Logger) LogCatalogLoad(name string, defs int, err error) {
	if err != nil {
		l.Error("catalog load failed", "catalog", name, "error", err)
		return
	}
	l.Info("catalog loaded", "catalog", name, "definitions", defs)
}
