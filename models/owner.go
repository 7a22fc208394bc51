package models

import "time"

type Owner struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`

	Properties []Property `gorm:"foreignKey:OwnerID" json:"-"`
}
