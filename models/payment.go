package models

import "time"

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    uint      `gorm:"index;not null" json:"property_id"`
	TenantID      uint      `gorm:"index;not null" json:"tenant_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"` // cash, bank_transfer, online
	PaymentType   string    `json:"payment_type"`   // rent, security_deposit, maintenance
	Status        string    `gorm:"default:completed" json:"status"` // pending, completed, failed
	Notes         string    `gorm:"type:text" json:"notes"`
}
