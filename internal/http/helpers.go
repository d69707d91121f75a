package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"fintrack/internal/currency"
	"fintrack/internal/database"
	"fintrack/internal/finance"
	"fintrack/internal/models"
)

const dateLayout = "2006-01-02"

func userID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

// monthPrefix is the "YYYY-MM" prefix shared by every date in a month.
func monthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// monthlyTotal sums a user's expenses for one calendar month.
func monthlyTotal(uid uint, year, month int) (float64, error) {
	var total float64
	err := database.DB.Model(&models.Expense{}).
		Where("user_id = ? AND date LIKE ?", uid, monthPrefix(year, month)+"%").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// userCurrency loads the user's currency preference, creating the default
// profile for accounts that somehow predate profile creation.
func userCurrency(uid uint) currency.Info {
	var profile models.UserProfile
	if err := database.DB.Where("user_id = ?", uid).First(&profile).Error; err != nil {
		profile = models.UserProfile{
			UserID:         uid,
			Country:        "US",
			CurrencyCode:   currency.Default.Code,
			CurrencySymbol: currency.Default.Symbol,
		}
		database.DB.Create(&profile)
	}
	return currency.Info{Code: profile.CurrencyCode, Symbol: profile.CurrencySymbol}
}

// ledgerEntries converts expense rows for the aggregation engine and collects
// category icons keyed by category name.
func ledgerEntries(expenses []models.Expense) ([]finance.LedgerEntry, map[string]string) {
	entries := make([]finance.LedgerEntry, 0, len(expenses))
	icons := make(map[string]string)
	for _, e := range expenses {
		name := ""
		if e.Category != nil {
			name = e.Category.Name
			icons[name] = e.Category.Icon
		}
		entries = append(entries, finance.LedgerEntry{
			Category: name,
			Amount:   e.Amount,
			Date:     e.Date,
		})
	}
	return entries, icons
}
