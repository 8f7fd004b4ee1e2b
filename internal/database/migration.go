package database

import (
	"fmt"

	"github.com/Minarsribabu/Eco-Cred/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.EmissionFactor{},
		&models.Activity{},
		&models.Credit{},
		&models.Tip{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
