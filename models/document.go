package models

import "time"

type Document struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PropertyID   uint      `gorm:"index;not null" json:"property_id"`
	TenantID     *uint     `gorm:"index" json:"tenant_id"`
	DocumentType string    `json:"document_type"` // lease, insurance, inspection
	FileName     string    `gorm:"not null" json:"file_name"`
	FileURL      string    `json:"file_url"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
