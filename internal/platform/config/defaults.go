package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 20

	defaultBcryptCost = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.health_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          DriverMemory,
		"database.dsn":                             "",
		"database.max_open_conns":                  defaultMaxOpenConns,
		"database.max_idle_conns":                  defaultMaxIdleConns,
		"database.conn_max_lifetime":               "30m",
		"database.conn_max_idle_time":              "5m",
		"database.migrate_on_start":                false,
		"database.connect_retry.max_attempts":      defaultRetryMaxAttempts,
		"database.connect_retry.initial_interval":  "500ms",
		"database.connect_retry.max_interval":      "10s",
		"database.connect_retry.multiplier":        defaultRetryMultiplier,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"rate_limit.requests_per_second": 0,
		"rate_limit.burst_size":          defaultRateLimitBurst,

		"password.bcrypt_cost": defaultBcryptCost,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
