package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_StderrOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := setup(&buf, "", slog.LevelInfo)
	require.NoError(t, err)
	defer cleanup()

	logger.Debug("hidden")
	logger.Info("roster built", "creatures", 4)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "roster built", entry["msg"])
	assert.Equal(t, float64(4), entry["creatures"])
}

func TestSetup_WritesFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "creatures.log")
	logger, cleanup, err := setup(&buf, path, slog.LevelWarn)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"kept"`)
	assert.NotContains(t, string(data), "dropped")
	assert.Equal(t, string(data), buf.String())
}
