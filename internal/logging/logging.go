// Package logging builds the charmbracelet loggers used across the arcade.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a stderr logger with timestamps at the given level.
// Unknown level names fall back to info.
func New(level, prefix string) *log.Logger {
	return NewWriter(os.Stderr, level, prefix)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           ParseLevel(level),
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps a level name to a log.Level.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
