package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{level: "debug", expected: zerolog.DebugLevel},
		{level: "info", expected: zerolog.InfoLevel},
		{level: "warn", expected: zerolog.WarnLevel},
		{level: "error", expected: zerolog.ErrorLevel},
		{level: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			_, closer, err := NewLogger(LoggerConfig{Level: tt.level, Format: "json"}, io.Discard)

			require.NoError(t, err)
			defer closer.Close()
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestNewLogger_File(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logPath := filepath.Join(t.TempDir(), "app.log")

	logger, closer, err := NewLogger(LoggerConfig{Level: "info", Format: "json", File: logPath}, io.Discard)
	require.NoError(t, err)

	logger.Info().Str("file", "input.txt").Msg("reading input")
	logger.Debug().Msg("filtered out")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"reading input"`)
	assert.Contains(t, string(content), `"file":"input.txt"`)
	assert.NotContains(t, string(content), "filtered out")
}

func TestNewLogger_FileAppends(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logPath := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(logPath, []byte("previous run\n"), 0644))

	logger, closer, err := NewLogger(LoggerConfig{Level: "info", Format: "console", File: logPath}, io.Discard)
	require.NoError(t, err)
	logger.Info().Msg("next run")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "previous run\n")
	assert.Contains(t, string(content), "next run")
}

func TestNewLogger_UnwritableFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	_, _, err := NewLogger(LoggerConfig{
		Level:  "info",
		Format: "json",
		File:   filepath.Join(t.TempDir(), "missing", "app.log"),
	}, io.Discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestNewLogger_Writer(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tests := []struct {
		format   string
		expected string
	}{
		{format: "json", expected: `"message":"pairs found"`},
		{format: "console", expected: "pairs found"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer

			logger, closer, err := NewLogger(LoggerConfig{Level: "info", Format: tt.format}, &out)
			require.NoError(t, err)
			defer closer.Close()

			logger.Info().Msg("pairs found")

			assert.Contains(t, out.String(), tt.expected)
		})
	}
}
