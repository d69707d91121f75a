package database

import (
	"fintrack/internal/models"
)

var defaultCategories = []models.Category{
	{Name: "Food & Dining", Icon: "🍽️", Description: "Restaurants, groceries, and food delivery"},
	{Name: "Transportation", Icon: "🚗", Description: "Gas, public transport, car maintenance"},
	{Name: "Shopping", Icon: "🛍️", Description: "Clothing, electronics, general shopping"},
	{Name: "Bills & Utilities", Icon: "💡", Description: "Electricity, water, internet, phone bills"},
	{Name: "Entertainment", Icon: "🎬", Description: "Movies, games, subscriptions"},
	{Name: "Healthcare", Icon: "🏥", Description: "Medical expenses, pharmacy, insurance"},
	{Name: "Education", Icon: "📚", Description: "Courses, books, tuition"},
	{Name: "Travel", Icon: "✈️", Description: "Hotels, flights, vacation expenses"},
	{Name: "Personal Care", Icon: "💅", Description: "Haircuts, cosmetics, personal items"},
	{Name: "Gifts & Donations", Icon: "🎁", Description: "Gifts, charity, donations"},
	{Name: "Home & Garden", Icon: "🏠", Description: "Furniture, home improvement, gardening"},
	{Name: "Other", Icon: "📦", Description: "Miscellaneous expenses"},
}

// SeedCategories inserts the default expense categories, skipping any that
// already exist. Safe to run on every startup.
func SeedCategories() error {
	for _, cat := range defaultCategories {
		var existing models.Category
		if err := DB.Where("name = ?", cat.Name).Attrs(cat).FirstOrCreate(&existing).Error; err != nil {
			return err
		}
	}
	return nil
}
