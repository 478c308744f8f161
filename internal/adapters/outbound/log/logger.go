package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level string `config:"LOG_LEVEL" default:"INFO"`
	Debug bool   `config:"DEBUG" default:"false"`
}

// Initialize registers a JSON *slog.Logger writing to stdout and makes it
// the process default.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger := New(os.Stdout, il.Level, il.Debug)
	slog.SetDefault(logger)
	depend.Register(logger)
	return ctx, nil
}

// New creates a JSON logger. The debug flag forces the DEBUG level.
func New(w io.Writer, level string, debug bool) *slog.Logger {
	lvl := ParseLevel(level)
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// ParseLevel maps DEBUG, INFO, WARNING/WARN, ERROR/CRITICAL to slog levels.
// Unknown values map to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR", "CRITICAL":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
