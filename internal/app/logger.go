package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Every record carries the command name and the build version.
func NewLogger(cfg config.LogConfig, command string) *slog.Logger {
	logger := newLogger(os.Stderr, cfg, command)
	slog.SetDefault(logger)
	return logger
}

// newLogger writes JSON for format "json" and text with source locations
// otherwise.
func newLogger(w io.Writer, cfg config.LogConfig, command string) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(ctxutil.NewLogHandler(handler)).With(
		slog.String("cmd", command),
		slog.String("version", Version),
	)
}

// parseLevel accepts slog level names in any case. Unknown values mean info.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
