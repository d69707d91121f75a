package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:150" json:"username"`
	Email        string `gorm:"uniqueIndex;size:254" json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash, hidden from JSON
	FirstName    string `gorm:"size:30" json:"first_name"`
	LastName     string `gorm:"size:30" json:"last_name"`

	Profile *UserProfile `gorm:"constraint:OnDelete:CASCADE" json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
