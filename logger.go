package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured JSON logger at the given level. Output goes
// to stderr so piped region artifacts never mix with log lines.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
