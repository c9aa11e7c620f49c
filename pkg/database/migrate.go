package database

import (
	"fmt"

	"portfolio-backend/pkg/logger"
)

// Migrate creates or alters the tables for the given models.
func (db *DB) Migrate(models ...any) error {
	for _, m := range models {
		if err := db.Gorm.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
		logger.Log.Info("Migrated table", "model", fmt.Sprintf("%T", m))
	}
	return nil
}
