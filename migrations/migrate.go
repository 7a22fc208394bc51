package migrations

import (
	"log"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"
)

// Migrate creates or updates the schema for every entity. The store is a
// single SQLite file, created fresh on first startup.
func Migrate() {
	err := utils.DB.AutoMigrate(
		&models.Owner{},
		&models.Property{},
		&models.Tenant{},
		&models.Payment{},
		&models.Expense{},
		&models.MaintenanceRequest{},
		&models.Message{},
		&models.Document{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}
