// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to the tunables (risk thresholds, log level, snapshot
// path) while keeping configuration details separate from business logic.
package config
