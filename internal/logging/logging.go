// Package logging builds the structured loggers used by the CLI and the SSH server.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to stderr at the given level.
func New(level, prefix string) (*log.Logger, error) {
	return NewWithWriter(os.Stderr, level, prefix)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything. Useful where no logger was configured.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
