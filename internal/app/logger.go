package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kartuli-app/kartuli-backend/internal/config"
)

// NewLogger builds the application *slog.Logger from LogConfig and installs
// it as the slog default.
//
// Format "json" is the production output; "text" adds source locations for
// development. Level is debug, info, warn, or error (case-insensitive,
// default info). Everything goes to os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger is the writer-parameterized core, split out so tests can
// capture output.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	if text {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
