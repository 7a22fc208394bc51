package models

import "time"

type MaintenanceRequest struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PropertyID  uint       `gorm:"index;not null" json:"property_id"`
	TenantID    uint       `gorm:"index" json:"tenant_id"`
	IssueType   string     `json:"issue_type"` // plumbing, electrical, hvac, other
	Description string     `gorm:"type:text" json:"description"`
	Priority    string     `json:"priority"`                   // low, medium, high, urgent
	Status      string     `gorm:"default:open" json:"status"` // open, in_progress, completed
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}
