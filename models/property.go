package models

import "time"

type Property struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Address      string    `json:"address"`
	PropertyType string    `json:"property_type"` // apartment, house, commercial
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	AreaSqft     float64   `json:"area_sqft"`
	MonthlyRent  float64   `json:"monthly_rent"`
	OwnerID      uint      `gorm:"index;not null" json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}
