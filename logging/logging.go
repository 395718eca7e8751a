// Package logging builds the *slog.Logger values the kdknn packages accept
// through their WithLogger options, with consistent field names.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Field keys shared by every package that logs.
const (
	KeyK        = "k"
	KeyFold     = "fold"
	KeyFolds    = "folds"
	KeyRecords  = "records"
	KeyAccuracy = "accuracy"
	KeyHeight   = "height"
	KeyDim      = "dim"
)

// Format selects the handler encoding.
type Format string

const (
	// Text is logfmt-style key=value output.
	Text Format = "text"
	// JSON is one JSON object per line.
	JSON Format = "json"
)

// New returns a logger writing to w at the given level and format.
func New(w io.Writer, level slog.Level, format Format) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case Text, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case JSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}

	return level, nil
}
