// Package logging builds the hook's structured logger.
//
// Logs always go to stderr (pre-commit shows a hook's stderr when it fails)
// and are quiet by default: only warnings and errors are emitted unless the
// level is lowered through configuration or CLANG_TIDY_HOOK_DEBUG=1.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Config holds logger settings.
type Config struct {
	// Level is one of debug, info, warn, error. Unknown values mean warn.
	Level string
	// Format is text or json. Unknown values mean text.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// ParseLevel converts a configured level name to a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New creates a logger tagged with a fresh run_id, so that the lines of one
// hook invocation can be told apart when pre-commit runs several in parallel.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With("run_id", uuid.NewString())
}
