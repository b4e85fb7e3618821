// Package logging builds the process logger: log/slog with a tint handler.
package logging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel accepts debug, info, warn and error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: invalid level %q: %w", s, err)
	}
	return level, nil
}

// New returns a logger writing to stderr.
func New(level slog.Level, colored bool) *slog.Logger {
	return NewWithWriter(os.Stderr, level, colored)
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level, colored bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !colored,
	}))
}

// Open returns a logger writing to stderr and, when path is set, appending
// to the file at path as well. Colours are off whenever a file is written.
// The returned close func releases the file.
func Open(level slog.Level, colored bool, path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return New(level, colored), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return NewWithWriter(io.MultiWriter(os.Stderr, f), level, false), f.Close, nil
}

// ReadRecent returns the last n lines of the log file at path, oldest first.
// A missing file has no lines.
func ReadRecent(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("logging: read %s: %w", path, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
