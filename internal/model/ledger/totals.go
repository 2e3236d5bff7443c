package ledger

import (
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// CategoryTotals sums amounts grouped by category. Categories without
// a matching record are absent from the result, so the totals always
// partition the input sum exactly.
func CategoryTotals(recs []expense.Record) map[string]float64 {
	totals := make(map[string]float64)
	for _, rec := range recs {
		totals[rec.Category] += rec.Amount
	}
	return totals
}

// Percentage returns amount as a share of total, in percent. A zero
// total yields 0 rather than a division fault.
func Percentage(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return amount / total * 100
}
