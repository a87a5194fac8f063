package logging

import (
	"io"
	"log/slog"
)

// NewNop returns a Logger that discards everything. Intended for tests.
func NewNop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
