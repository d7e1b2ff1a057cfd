// Package activitylog manages the append-only activity log file written by
// the keep-alive loop and rendered by the log viewer.
package activitylog

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/antoniofonseca/keepactive-msteams/internal/models"
)

// Logger appends timestamped lines to the activity log file. Safe for
// concurrent use.
type Logger struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New creates a logger for the given log file path. The file is created on
// first write.
func New(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Logf formats a message and appends it as a single timestamped line. The
// file is opened per write, so an external deletion never strands a stale
// handle.
func (l *Logger) Logf(format string, args ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", l.path, err)
	}
	defer f.Close()

	line := models.FormatLogLine(l.now(), fmt.Sprintf(format, args...))
	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("failed to append to log file %s: %w", l.path, err)
	}
	return nil
}

// Remove deletes the log file. Missing files are not an error; removal is
// part of the clean-slate shutdown sequence and may race an earlier cleanup.
func (l *Logger) Remove() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove log file %s: %w", l.path, err)
	}
	return nil
}

// Lines returns every line of the log file at path, in file order. The
// caller distinguishes a missing file via os.IsNotExist on the unwrapped
// error.
func Lines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file %s: %w", path, err)
	}
	return lines, nil
}
