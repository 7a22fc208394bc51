// seed/seed.go
package seed

import (
	"errors"
	"log"
	"os"

	"github.com/Codedeepakyadav/RentalXpert/models"
	"github.com/Codedeepakyadav/RentalXpert/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const demoEmail = "demo@rentalxpert.local"

// SeedDemoData creates a demo owner with one property when SEED_DEMO_DATA is
// set. Idempotent: skipped when the demo account already exists.
func SeedDemoData() error {
	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return nil
	}

	var existing models.Owner
	err := utils.DB.Where("email = ?", demoEmail).First(&existing).Error
	if err == nil {
		log.Println("Demo owner already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := models.Owner{
		Username:     "demo",
		Email:        demoEmail,
		PasswordHash: string(hashedPassword),
		Phone:        "+10000000000",
	}

	if err := utils.DB.Create(&owner).Error; err != nil {
		return err
	}

	property := models.Property{
		Name:         "Sunset Apartments 2B",
		Address:      "42 Sunset Boulevard",
		PropertyType: "apartment",
		Bedrooms:     2,
		Bathrooms:    1,
		AreaSqft:     850,
		MonthlyRent:  1200,
		OwnerID:      owner.ID,
	}

	if err := utils.DB.Create(&property).Error; err != nil {
		return err
	}

	log.Println("Seeded demo owner and property.")
	return nil
}
