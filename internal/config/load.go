package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/phrazzld/workstream/internal/health"
)

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultSnapshotPath = "data/tasks.csv"
)

// Load configuration from environment variables and optionally a config
// file. Environment variables take precedence over values from the file.
// Returns a populated Config struct or an error if loading/validation
// fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the tool runnable with zero configuration.
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("health.long_running_days", health.DefaultLongRunningDays)
	v.SetDefault("health.inactivity_days", health.DefaultInactivityDays)
	v.SetDefault("snapshot.path", DefaultSnapshotPath)

	// Optional config file: workstream.yaml in the working directory.
	v.SetConfigName("workstream")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment variables use the WORKSTREAM_ prefix, with dots
	// replaced by underscores (e.g. WORKSTREAM_HEALTH_INACTIVITY_DAYS).
	v.SetEnvPrefix("WORKSTREAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Thresholds converts the health settings into the analyzer's parameter
// struct.
func (c *Config) Thresholds() health.Thresholds {
	return health.Thresholds{
		LongRunningDays: c.Health.LongRunningDays,
		InactivityDays:  c.Health.InactivityDays,
	}
}
