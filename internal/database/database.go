package database

import (
	"fmt"

	"github.com/yukikurage/task-invoice-manager/internal/config"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialector returns the gorm dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// GormConfig is shared by the server and tests. TranslateError turns
// driver-specific unique violations into gorm.ErrDuplicatedKey.
func GormConfig(logSQL bool) *gorm.Config {
	level := gormlogger.Silent
	if logSQL {
		level = gormlogger.Info
	}
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	}
}

// Connect opens the database described by cfg
func Connect(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, GormConfig(cfg.DBLogSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// SQLite allows a single writer; serialise access through one connection
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Infow("database connection established", "driver", cfg.DBDriver)
	return db, nil
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB, log *logger.Logger) error {
	log.Info("running database migrations")
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(db, log); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}
	log.Info("database migrations completed")
	return nil
}
