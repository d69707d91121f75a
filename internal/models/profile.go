package models

import (
	"time"
)

// UserProfile carries currency preferences. Exactly one per user; created by
// the registration flow once the country is known.
type UserProfile struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         uint   `gorm:"uniqueIndex" json:"user_id"`
	Country        string `gorm:"size:100;default:US" json:"country"`
	CurrencyCode   string `gorm:"size:3;default:USD" json:"currency_code"`
	CurrencySymbol string `gorm:"size:10;default:$" json:"currency_symbol"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
