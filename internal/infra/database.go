package infra

import (
	"fmt"

	"wasabi/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase applies pending SQL migrations and then opens the GORM connection
// pool the repositories share. The schema is owned by migrations/ only; GORM
// AutoMigrate is never used.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	if err := RunMigrations(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	return db, nil
}
