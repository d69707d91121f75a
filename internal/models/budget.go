package models

import (
	"time"
)

// Budget is a monthly spending limit. At most one per (user, month, year).
type Budget struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	UserID uint    `gorm:"uniqueIndex:idx_budgets_user_period" json:"user_id"`
	User   User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Month  int     `gorm:"uniqueIndex:idx_budgets_user_period" json:"month"`
	Year   int     `gorm:"uniqueIndex:idx_budgets_user_period" json:"year"`
	Amount float64 `gorm:"type:decimal(10,2)" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
