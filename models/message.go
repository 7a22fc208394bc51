package models

import "time"

type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"index;not null" json:"sender_id"`
	ReceiverID uint      `gorm:"index;not null" json:"receiver_id"`
	PropertyID uint      `gorm:"index" json:"property_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
}
