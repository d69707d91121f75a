package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForCountry(t *testing.T) {
	assert.Equal(t, Info{"INR", "₹"}, ForCountry("IN"))
	assert.Equal(t, Info{"EUR", "€"}, ForCountry("DE"))
	assert.Equal(t, Info{"INR", "₹"}, ForCountry("in"), "lookup is case-insensitive")
	assert.Equal(t, Default, ForCountry("ZZ"), "unknown countries fall back to USD")
	assert.Equal(t, Default, ForCountry(""))
}

func TestFormatSymbolPlacement(t *testing.T) {
	cases := []struct {
		amount float64
		symbol string
		want   string
	}{
		{1234.5, "$", "$1,234.50"},
		{1234.5, "€", "1,234.50 €"},
		{99.99, "₹", "99.99 ₹"},
		{0, "$", "$0.00"},
		{1000000, "£", "1,000,000.00 £"},
		{-250.75, "$", "$-250.75"},
		{532.1, "kr", "kr532.10"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.amount, tc.symbol))
	}
}
