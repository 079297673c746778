// Package logging provides file-based logging for jira-note.
// Entries are appended to <config dir>/logs/jira-note.log and optionally
// mirrored to a second writer (stderr when --verbose is set).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/jira-note/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes categorized log lines to the application log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file   *os.File
	mirror io.Writer
	dir    string
	mu     sync.Mutex
	level  slog.Level
}

// New creates a Logger that writes below dir.
// If dir is empty, file logging is disabled.
func New(dir string, level slog.Level) *Logger {
	return &Logger{
		dir:   dir,
		level: level,
	}
}

// WithMirror makes the logger copy every entry to w as well.
func (l *Logger) WithMirror(w io.Writer) *Logger {
	l.mirror = w
	return l
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	path := domain.LogPath(l.dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Write implements io.Writer so the log file can back other handlers.
func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mirror != nil {
		_, _ = l.mirror.Write(p)
	}
	if l.dir == "" {
		return len(p), nil
	}
	f, err := l.ensureFile()
	if err != nil {
		return 0, err
	}
	return f.Write(p)
}

// Slog returns a structured logger that writes to the same destinations.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: l.level}))
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [ABC-1] [category] message
func formatLog(t time.Time, level slog.Level, key, category, msg string) string {
	if key == "" {
		key = "-"
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		key,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, key, category, msg string) {
	if level < l.level {
		return
	}
	entry := formatLog(time.Now(), level, key, category, msg)
	_, _ = io.WriteString(l, entry)
}

// Debug logs a debug message.
func (l *Logger) Debug(key, category, msg string) {
	l.log(slog.LevelDebug, key, category, msg)
}

// Info logs an info message.
func (l *Logger) Info(key, category, msg string) {
	l.log(slog.LevelInfo, key, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(key, category, msg string) {
	l.log(slog.LevelWarn, key, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(key, category, msg string) {
	l.log(slog.LevelError, key, category, msg)
}
