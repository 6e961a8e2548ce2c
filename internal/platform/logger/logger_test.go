package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workstream/internal/config"
)

func TestSetupEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := setup(config.LogConfig{Level: "info"}, &buf)
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Info("hello", "task_id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "abc", entry["task_id"])
}

func TestSetupRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := setup(config.LogConfig{Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info("suppressed")
	assert.Empty(t, buf.Bytes(), "info should be below the warn threshold")

	log.Warn("emitted")
	assert.NotEmpty(t, buf.Bytes())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for name, want := range cases {
		assert.Equal(t, want, parseLevel(name), "level %q", name)
	}
}
