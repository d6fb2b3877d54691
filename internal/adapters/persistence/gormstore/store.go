// Package gormstore implements the task list and task repository ports on a
// SQL database through GORM. PostgreSQL, MySQL and an embedded pure-Go SQLite
// are supported; identifiers are stored as char(36) UUID strings.
package gormstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Supported values for Config.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

const pingTimeout = 5 * time.Second

// Compile-time interface checks.
var (
	_ ports.HealthChecker      = (*Store)(nil)
	_ ports.TaskListRepository = (*TaskListRepository)(nil)
	_ ports.TaskRepository     = (*TaskRepository)(nil)
)

// Config holds connection and pool settings.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	LogLevel        string
	SlowThreshold   time.Duration
}

// Store owns the GORM connection. It reports database health and hands out
// the repository views.
type Store struct {
	db *gorm.DB
}

// Open selects the dialector for cfg.Driver and connects.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DriverMySQL:
		dialector = mysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	return Connect(ctx, dialector, cfg, logger)
}

// Connect opens a GORM session on dialector, applies pool settings, pings
// the database and optionally migrates the schema.
func Connect(ctx context.Context, dialector gorm.Dialector, cfg Config, logger *slog.Logger) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 NewLogger(logger, ParseLogLevel(cfg.LogLevel), cfg.SlowThreshold),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{db: db}
	if cfg.AutoMigrate {
		if err := s.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return s, nil
}

// Migrate creates or updates the task_lists and tasks tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&taskListModel{}, &taskModel{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// TaskLists returns the task list repository.
func (s *Store) TaskLists() *TaskListRepository {
	return &TaskListRepository{db: s.db}
}

// Tasks returns the task repository.
func (s *Store) Tasks() *TaskRepository {
	return &TaskRepository{db: s.db}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}
	return sqlDB.Close()
}
