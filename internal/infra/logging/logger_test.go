package logging

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/jira-note/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("ABC-1", "hydrate", "wrote note")

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[ABC-1]")
	assert.Contains(t, string(content), "[hydrate]")
	assert.Contains(t, string(content), "wrote note")
}

func TestLogger_EmptyKey(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Warn("", "settings", "unknown key")

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[WARN] [-] [settings] unknown key")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("A-1", "c", "debug message")
	logger.Info("A-1", "c", "info message")
	logger.Warn("A-1", "c", "warn message")
	logger.Error("A-1", "c", "error message")

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := New("", slog.LevelInfo).WithMirror(&buf)

	logger.Info("A-1", "c", "mirrored")

	assert.Contains(t, buf.String(), "mirrored")
	assert.NoError(t, logger.Close())
}

func TestLogger_Slog(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	logger.Slog().Debug("fetched issue", "key", "ABC-1", "status", "Open")

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "msg=\"fetched issue\"")
	assert.Contains(t, string(content), "key=ABC-1")
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC)
	got := formatLog(ts, slog.LevelError, "ABC-1", "fetch", "boom")
	assert.Equal(t, "[2025-12-30 09:32:51] [ERROR] [ABC-1] [fetch] boom\n", got)
	assert.True(t, strings.HasSuffix(formatLog(ts, slog.LevelInfo, "", "c", "m"), "[INFO] [-] [c] m\n"))
}
