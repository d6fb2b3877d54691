package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultLogFileMaxSizeMB  = 100
	defaultLogFileMaxBackups = 5
	defaultLogFileMaxAgeDays = 28
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":             "info",
		"log.format":            "json",
		"log.file.path":         "",
		"log.file.max_size_mb":  defaultLogFileMaxSizeMB,
		"log.file.max_backups":  defaultLogFileMaxBackups,
		"log.file.max_age_days": defaultLogFileMaxAgeDays,
		"log.file.compress":     true,

		"database.driver":                          DriverMemory,
		"database.dsn":                             "",
		"database.max_open_conns":                  defaultMaxOpenConns,
		"database.max_idle_conns":                  defaultMaxIdleConns,
		"database.conn_max_lifetime":               "30m",
		"database.auto_migrate":                    false,
		"database.log_level":                       "warn",
		"database.slow_threshold":                  "200ms",
		"database.retry.max_attempts":              defaultRetryMaxAttempts,
		"database.retry.initial_interval":          "50ms",
		"database.retry.max_interval":              "1s",
		"database.retry.multiplier":                defaultRetryMultiplier,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"database.rate_limit.requests_per_second":  0,
		"database.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "task-tracker",
	}
}
