package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crazy-hatman/internal/config"
)

func parseLevel(s string) (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// newServeLogger logs to stderr with timestamps.
func newServeLogger(cfg config.LogConfig) *log.Logger {
	lvl, _ := parseLevel(cfg.Level) // Validated in loadConfig
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "hatman-ssh",
	})
}

// newPlayLogger logs to cfg.File, or discards when no file is set; the
// game owns the terminal. The returned closer is never nil.
func newPlayLogger(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	lvl, _ := parseLevel(cfg.Level) // Validated in loadConfig
	if cfg.File == "" {
		return log.NewWithOptions(io.Discard, log.Options{Level: lvl}), io.NopCloser(nil), nil
	}

	path := config.ExpandHome(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	return log.NewWithOptions(f, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "hatman",
	}), f, nil
}
