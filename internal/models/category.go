package models

import (
	"time"
)

// Category is a global expense category. Admin-managed, rarely mutated.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:100" json:"name"`
	Icon        string `gorm:"size:50;default:💰" json:"icon"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
