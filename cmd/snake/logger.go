package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/config"
)

// newLogger builds the session logger. The game owns the terminal, so logs
// go to the configured file or nowhere. The returned func closes the file.
func newLogger(cfg config.Log) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("config: invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot open %s: %w", cfg.File, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}
