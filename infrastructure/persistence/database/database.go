package database

import (
	"fmt"

	"github.com/modeemi/spacestatus/infrastructure/config"
	"github.com/modeemi/spacestatus/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbClient *gorm.DB

// InitDb opens the configured database and applies pool settings. It must be
// called exactly once at process start, before GetDb.
func InitDb(cfg *config.Config, log *zap.Logger) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.GetPostgresConnectionString())
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.SqlitePath)
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}

	sqlDb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDb.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDb.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if cfg.Database.Driver == "sqlite" {
		// Referential integrity is opt-in on sqlite.
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	dbClient = db
	return nil
}

func GetDb() *gorm.DB {
	return dbClient
}

func CloseDb() {
	if dbClient == nil {
		return
	}
	if sqlDb, err := dbClient.DB(); err == nil {
		_ = sqlDb.Close()
	}
	dbClient = nil
}
