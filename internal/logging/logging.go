// Package logging configures structured logging with the tint slog handler.
// The TUI owns the terminal, so log output goes to a file rather than
// stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const defaultLogFile = "~/.local/state/garagem/garagem.log"

// Setup builds a logger writing to the given path at the given level and
// returns it together with a close function. An empty path uses the default
// state directory; a path that cannot be opened falls back to a discard
// logger so the application still runs.
func Setup(path, level string) (*slog.Logger, func() error) {
	resolved := expand(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return discard()
	}
	file, err := os.OpenFile(resolved, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discard()
	}

	logger := slog.New(tint.NewHandler(file, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}))
	return logger, file.Close
}

// ParseLevel maps a config string onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func discard() (*slog.Logger, func() error) {
	return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }
}

func expand(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultLogFile
	}
	if strings.HasPrefix(trimmed, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
		}
	}
	return trimmed
}
