package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workstream/internal/health"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load returns the documented defaults when
// nothing is configured.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"WORKSTREAM_LOG_LEVEL":                "",
		"WORKSTREAM_HEALTH_LONG_RUNNING_DAYS": "",
		"WORKSTREAM_HEALTH_INACTIVITY_DAYS":   "",
		"WORKSTREAM_SNAPSHOT_PATH":            "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, health.DefaultLongRunningDays, cfg.Health.LongRunningDays)
	assert.Equal(t, health.DefaultInactivityDays, cfg.Health.InactivityDays)
	assert.Equal(t, DefaultSnapshotPath, cfg.Snapshot.Path)
}

// TestLoadFromEnvironment verifies that environment variables override the
// defaults.
func TestLoadFromEnvironment(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"WORKSTREAM_LOG_LEVEL":                "debug",
		"WORKSTREAM_HEALTH_LONG_RUNNING_DAYS": "14",
		"WORKSTREAM_HEALTH_INACTIVITY_DAYS":   "5",
		"WORKSTREAM_SNAPSHOT_PATH":            "/tmp/tasks.csv",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 14, cfg.Health.LongRunningDays)
	assert.Equal(t, 5, cfg.Health.InactivityDays)
	assert.Equal(t, "/tmp/tasks.csv", cfg.Snapshot.Path)
}

// TestLoadValidation verifies that invalid settings are rejected.
func TestLoadValidation(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		cleanup := setupEnv(t, map[string]string{
			"WORKSTREAM_LOG_LEVEL": "loud",
		})
		defer cleanup()

		_, err := Load()
		assert.Error(t, err, "unknown log levels should fail validation")
	})

	t.Run("non-positive threshold", func(t *testing.T) {
		cleanup := setupEnv(t, map[string]string{
			"WORKSTREAM_HEALTH_INACTIVITY_DAYS": "0",
		})
		defer cleanup()

		_, err := Load()
		assert.Error(t, err, "thresholds must be positive")
	})
}

func TestThresholds(t *testing.T) {
	cfg := &Config{Health: HealthConfig{LongRunningDays: 10, InactivityDays: 4}}

	th := cfg.Thresholds()
	assert.Equal(t, health.Thresholds{LongRunningDays: 10, InactivityDays: 4}, th)
}
