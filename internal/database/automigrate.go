package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// Models lists every directory entity, FK targets first
func Models() []interface{} {
	return []interface{}{
		&domain.Contest{},
		&domain.OpenCall{},
		&domain.Subsidy{},
		&domain.Event{},
		&domain.Facility{},
		&domain.Knowledge{},
		&domain.AssetProvision{},
		&domain.Technology{},
		&domain.StartupBoard{},
		&domain.Location{},
		&domain.Workspace{},
		&domain.BoardLike{},
		&domain.WorkspaceLike{},
	}
}

// AutoMigrate creates or updates the tables for all directory entities
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// AutoMigrateWithRetry runs AutoMigrate up to maxRetries times with linear
// backoff, for startups racing the database
func AutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = AutoMigrate(db); err == nil {
			logger.Info("Database migration completed", zap.Int("attempt", attempt))
			return nil
		}
		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
