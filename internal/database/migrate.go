package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/internal/model"
)

// EnsureSchema creates the recipes table and its indexes when they do not
// exist yet. Changes to an existing table are not migrated.
func EnsureSchema(db *gorm.DB) error {
	migrator := db.Migrator()
	if migrator.HasTable(&model.Recipe{}) {
		return nil
	}
	if err := migrator.CreateTable(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to create recipes table: %w", err)
	}
	return nil
}
