package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lululau/rangecal/internal/config"
)

func TestNewPicksLogger(t *testing.T) {
	nop, err := New(config.LogConfig{Level: "debug"}, true)
	require.NoError(t, err)
	assert.False(t, nop.Core().Enabled(zapcore.ErrorLevel), "interactive runs discard logs")

	console, err := New(config.LogConfig{Level: "debug"}, false)
	require.NoError(t, err)
	assert.True(t, console.Core().Enabled(zapcore.DebugLevel))

	file, err := New(config.LogConfig{Level: "warn", File: filepath.Join(t.TempDir(), "r.log")}, true)
	require.NoError(t, err)
	assert.True(t, file.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, file.Core().Enabled(zapcore.InfoLevel))
}

func TestNewFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rangecal.log")
	logger := NewFile(path, "info")
	logger.Info("range committed", zap.Strings("range", []string{"2024-03-05", "2024-03-12"}))
	logger.Debug("dropped")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "range committed", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "timestamp")
	assert.Equal(t, []any{"2024-03-05", "2024-03-12"}, entry["range"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("ERROR"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
}
