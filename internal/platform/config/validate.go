package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	if l.File.Path != "" {
		if l.File.MaxSizeMB < 1 {
			errs = append(errs, fmt.Errorf("log.file.max_size_mb must be >= 1, got %d", l.File.MaxSizeMB))
		}
		if l.File.MaxBackups < 0 || l.File.MaxAgeDays < 0 {
			errs = append(errs, errors.New("log.file.max_backups and log.file.max_age_days must not be negative"))
		}
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	switch d.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres, DriverMySQL:
		if d.DSN == "" {
			errs = append(errs, fmt.Errorf("database.dsn must not be empty when driver is %s", d.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver must be one of: memory, sqlite, postgres, mysql; got %q", d.Driver))
	}

	switch d.LogLevel {
	case "silent", "error", "warn", "info":
	default:
		errs = append(errs, fmt.Errorf("database.log_level must be one of: silent, error, warn, info; got %q",
			d.LogLevel))
	}

	if d.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("database.retry.max_attempts must be >= 1, got %d", d.Retry.MaxAttempts))
	}
	if d.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("database.retry.multiplier must be positive, got %f", d.Retry.Multiplier))
	}
	if d.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("database.circuit_breaker.max_failures must be >= 1, got %d",
			d.CircuitBreaker.MaxFailures))
	}
	if d.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("database.rate_limit.requests_per_second must not be negative, got %f",
			d.RateLimit.RequestsPerSecond))
	}
	if d.RateLimit.RequestsPerSecond > 0 && d.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("database.rate_limit.burst_size must be >= 1 when limiting, got %d",
			d.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp", "prometheus":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp, prometheus; got %q",
			t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
