// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Password  PasswordConfig  `koanf:"password"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// HealthTimeout bounds each readiness check.
	HealthTimeout time.Duration `koanf:"health_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds store settings. The memory driver ignores everything
// but Driver.
type DatabaseConfig struct {
	Driver          string               `koanf:"driver"`
	DSN             string               `koanf:"dsn"`
	MaxOpenConns    int                  `koanf:"max_open_conns"`
	MaxIdleConns    int                  `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration        `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration        `koanf:"conn_max_idle_time"`
	MigrateOnStart  bool                 `koanf:"migrate_on_start"`
	ConnectRetry    RetryConfig          `koanf:"connect_retry"`
	CircuitBreaker  CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RateLimitConfig holds the token-bucket limit applied to API routes.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// PasswordConfig holds account password hashing settings.
type PasswordConfig struct {
	BcryptCost int `koanf:"bcrypt_cost"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
