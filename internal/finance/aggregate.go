package finance

import (
	"sort"
	"time"
)

// Uncategorized is the bucket name for ledger entries without a category.
const Uncategorized = "Uncategorized"

// LedgerEntry is the slice of an expense row the aggregations need. Category
// is the category name, empty when the expense has none. Date is "2006-01-02".
type LedgerEntry struct {
	Category string
	Amount   float64
	Date     string
}

// CategoryTotal is one bucket of a category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// MonthPoint is one point of a monthly trend series.
type MonthPoint struct {
	Month  string  `json:"month"` // "2006-01"
	Label  string  `json:"label"` // "Jan 2006"
	Amount float64 `json:"amount"`
}

// Breakdown groups entries by category, summing amounts and counting rows,
// ordered by descending total. Entries without a category land in the
// Uncategorized bucket. An empty ledger yields an empty slice, not an error.
func Breakdown(entries []LedgerEntry) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	order := []string{}
	for _, e := range entries {
		name := e.Category
		if name == "" {
			name = Uncategorized
		}
		ct, ok := totals[name]
		if !ok {
			ct = &CategoryTotal{Category: name}
			totals[name] = ct
			order = append(order, name)
		}
		ct.Total += e.Amount
		ct.Count++
	}
	out := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		out = append(out, *totals[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// Trend buckets entries into the `months` calendar months ending at `end`.
// Every month of the window appears in the result, months with no entries
// reporting amount 0. Entries outside the window are ignored.
func Trend(entries []LedgerEntry, end time.Time, months int) []MonthPoint {
	if months <= 0 {
		return []MonthPoint{}
	}
	byMonth := make(map[string]float64)
	for _, e := range entries {
		if len(e.Date) >= 7 {
			byMonth[e.Date[:7]] += e.Amount
		}
	}
	// Walk each month of the window explicitly rather than relying on
	// ledger presence, so empty months still produce a point.
	first := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]MonthPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		key := m.Format("2006-01")
		out = append(out, MonthPoint{
			Month:  key,
			Label:  m.Format("Jan 2006"),
			Amount: byMonth[key],
		})
	}
	return out
}

// TopCategory returns the highest-total bucket of a breakdown. The second
// return is false when the breakdown is empty.
func TopCategory(breakdown []CategoryTotal) (CategoryTotal, bool) {
	if len(breakdown) == 0 {
		return CategoryTotal{}, false
	}
	return breakdown[0], true
}

// AverageMonthly divides total spend by the requested window length. The
// denominator is the full window, not the number of months that happen to
// have data, so empty months pull the average down instead of being skipped.
func AverageMonthly(total float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	return total / float64(months)
}
