// Package storage provides the outbound storage adapter: gorm-backed
// implementations of the repository ports plus schema migration and a
// database health checker.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/famapp/famapp-api/internal/domain"
	"github.com/famapp/famapp-api/internal/platform/config"
	"github.com/famapp/famapp-api/internal/ports"
)

// Compile-time check that Storage can serve readiness probes.
var _ ports.HealthChecker = (*Storage)(nil)

// Storage owns the database handle shared by the repositories.
// Every mutating repository call commits immediately; there is no batching
// and no transaction spanning multiple entities.
type Storage struct {
	db *gorm.DB
}

// Open connects to the configured database and migrates the schema.
// TranslateError is enabled so that unique-constraint violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*Storage, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Error("failed to connect to database",
			slog.String("driver", cfg.Driver),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storage) migrate() error {
	err := s.db.AutoMigrate(
		&userModel{},
		&groupModel{},
		&groupMemberModel{},
		&calendarModel{},
		&dateModel{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Name identifies this component in readiness probe output.
func (s *Storage) Name() string {
	return "database"
}

// HealthCheck pings the underlying connection pool.
func (s *Storage) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("obtaining connection pool: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// translateError maps gorm errors to domain sentinels. Unique-constraint
// violations are the authoritative conflict signal; the application-level
// pre-checks are only a fast path for a friendlier message.
func translateError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
