// Package logging builds the process logger. The terminal belongs to the UI, so
// output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Discard is a logger that ignores everything. Packages fall back to it when
// the caller passes no logger.
var Discard = log.New(io.Discard)

// New opens file for appending and returns a logger writing to it at the named
// level. An empty file discards. The returned closer releases the file.
func New(levelName, file string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", levelName, err)
	}
	if file == "" {
		return Discard, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, level), f, nil
}

// NewWriter is New without the file handling.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Formatter:       log.LogfmtFormatter,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
