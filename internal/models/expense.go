package models

import (
	"time"
)

// Expense is one ledger entry. Dates are stored as "2006-01-02" strings so
// range filters and month bucketing are plain lexical comparisons.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index:idx_expenses_user_date" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CategoryID  *uint     `json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Title       string    `gorm:"size:200" json:"title"`
	Description string    `json:"description"`
	Amount      float64   `gorm:"type:decimal(10,2)" json:"amount"`
	Date        string    `gorm:"size:10;index:idx_expenses_user_date" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
