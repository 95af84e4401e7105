// Package logging builds the structured logger used by the command.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sartorproj/pageviews/internal/config"
)

// New returns a JSON slog logger writing to w at the configured level.
func New(cfg config.Logging, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}

// ParseLevel maps debug, info, warn and error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
