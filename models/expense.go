package models

import "time"

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PropertyID  uint      `gorm:"index;not null" json:"property_id"`
	Category    string    `json:"category"` // maintenance, utilities, taxes, insurance
	Description string    `gorm:"type:text" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	ExpenseDate time.Time `json:"expense_date"`
	Vendor      string    `json:"vendor"`
	ReceiptURL  string    `json:"receipt_url"`
}
