package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log      LogConfig      `mapstructure:"log"      validate:"required"`
	Health   HealthConfig   `mapstructure:"health"   validate:"required"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" validate:"required"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// HealthConfig contains the risk-classification thresholds. Both are
// expressed in whole days and tunable per team cadence.
type HealthConfig struct {
	LongRunningDays int `mapstructure:"long_running_days" validate:"required,gt=0"`
	InactivityDays  int `mapstructure:"inactivity_days"  validate:"required,gt=0"`
}

// SnapshotConfig contains settings for CSV snapshot import/export.
type SnapshotConfig struct {
	// Path is the default snapshot file used when the host does not
	// supply one explicitly.
	Path string `mapstructure:"path" validate:"required"`
}
