// Package currency maps country codes to display currencies and formats
// amounts for exports. Conversion rates are out of scope; a user's amounts
// are always shown in their own currency.
package currency

import (
	"fmt"
	"strings"
)

// Info is a display currency: ISO 4217 code plus symbol.
type Info struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// Default is used until a user's country is known.
var Default = Info{Code: "USD", Symbol: "$"}

var byCountry = map[string]Info{
	"US": {"USD", "$"},
	"IN": {"INR", "₹"},
	"GB": {"GBP", "£"},
	"CA": {"CAD", "C$"},
	"AU": {"AUD", "A$"},
	"DE": {"EUR", "€"},
	"FR": {"EUR", "€"},
	"IT": {"EUR", "€"},
	"ES": {"EUR", "€"},
	"NL": {"EUR", "€"},
	"BE": {"EUR", "€"},
	"AT": {"EUR", "€"},
	"PT": {"EUR", "€"},
	"IE": {"EUR", "€"},
	"FI": {"EUR", "€"},
	"GR": {"EUR", "€"},
	"JP": {"JPY", "¥"},
	"CN": {"CNY", "¥"},
	"KR": {"KRW", "₩"},
	"SG": {"SGD", "S$"},
	"MY": {"MYR", "RM"},
	"TH": {"THB", "฿"},
	"ID": {"IDR", "Rp"},
	"PH": {"PHP", "₱"},
	"VN": {"VND", "₫"},
	"BR": {"BRL", "R$"},
	"MX": {"MXN", "$"},
	"AR": {"ARS", "$"},
	"ZA": {"ZAR", "R"},
	"EG": {"EGP", "E£"},
	"AE": {"AED", "د.إ"},
	"SA": {"SAR", "﷼"},
	"NZ": {"NZD", "NZ$"},
	"CH": {"CHF", "CHF"},
	"SE": {"SEK", "kr"},
	"NO": {"NOK", "kr"},
	"DK": {"DKK", "kr"},
	"PL": {"PLN", "zł"},
	"RU": {"RUB", "₽"},
	"TR": {"TRY", "₺"},
}

// ForCountry returns the display currency for a country code, falling back
// to USD for unknown countries.
func ForCountry(country string) Info {
	if info, ok := byCountry[strings.ToUpper(country)]; ok {
		return info
	}
	return Default
}

// Symbols conventionally written after the amount.
var symbolAfter = map[string]bool{
	"€": true, "£": true, "¥": true, "₹": true, "₽": true, "₺": true,
}

// Format renders an amount with thousands separators and the currency symbol
// placed before or after depending on the symbol's convention.
func Format(amount float64, symbol string) string {
	formatted := group(fmt.Sprintf("%.2f", amount))
	if symbolAfter[symbol] {
		return formatted + " " + symbol
	}
	return symbol + formatted
}

// group inserts comma thousands separators into a "%.2f" string.
func group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
