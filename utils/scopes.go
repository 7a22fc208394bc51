package utils

import (
	"github.com/Codedeepakyadav/RentalXpert/models"

	"gorm.io/gorm"
)

// Ownership scoping helpers. Every list, count and aggregate query against
// owner data must go through one of these so that no handler can return a row
// belonging to another owner's property.

// OwnedProperty scopes a properties query to a single owner.
func OwnedProperty(ownerID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// OwnedVia scopes any table carrying a property_id column to rows whose
// property belongs to the given owner.
func OwnedVia(ownerID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		owned := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Property{}).
			Select("id").
			Where("owner_id = ?", ownerID)
		return db.Where("property_id IN (?)", owned)
	}
}

// PropertyBelongsToOwner reports whether the property exists and is owned by
// the given owner. Used before accepting a property_id from a form.
func PropertyBelongsToOwner(db *gorm.DB, propertyID, ownerID uint) bool {
	var count int64
	db.Model(&models.Property{}).
		Where("id = ? AND owner_id = ?", propertyID, ownerID).
		Count(&count)
	return count > 0
}

// TenantBelongsToOwner loads a tenant only if its property is owned by the
// given owner.
func TenantBelongsToOwner(db *gorm.DB, tenantID, ownerID uint) (models.Tenant, bool) {
	var tenant models.Tenant
	err := db.Scopes(OwnedVia(ownerID)).First(&tenant, tenantID).Error
	if err != nil {
		return models.Tenant{}, false
	}
	return tenant, true
}
