package models

import "time"

type Tenant struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Email           string    `json:"email"`
	Phone           string    `gorm:"not null" json:"phone"`
	WhatsappNumber  string    `json:"whatsapp_number"`
	LeaseStart      time.Time `json:"lease_start"`
	LeaseEnd        time.Time `json:"lease_end"`
	SecurityDeposit float64   `json:"security_deposit"`
	PropertyID      uint      `gorm:"index;not null" json:"property_id"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
