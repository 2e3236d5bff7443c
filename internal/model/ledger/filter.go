package ledger

import (
	"strings"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

var periods = map[string]struct{}{
	PeriodToday: {},
	PeriodWeek:  {},
	PeriodMonth: {},
	PeriodAll:   {},
}

func IsValidPeriod(period string) bool {
	_, ok := periods[period]
	return ok
}

// FilterByPeriod selects the records falling within the named window
// relative to at. Comparison is date-only; input order is preserved.
// For a fixed at the windows nest: today ⊆ week ⊆ month ⊆ all.
func FilterByPeriod(recs []expense.Record, period string, at time.Time) []expense.Record {
	switch period {
	case PeriodToday:
		day := at.Format(expense.DateLayout)
		return filter(recs, func(r expense.Record) bool {
			return r.Date == day
		})
	case PeriodWeek:
		cutoff := dateOnly(at).AddDate(0, 0, -7)
		return filter(recs, func(r expense.Record) bool {
			d, err := time.Parse(expense.DateLayout, r.Date)
			return err == nil && !d.Before(cutoff)
		})
	case PeriodMonth:
		prefix := at.Format("2006-01")
		return filter(recs, func(r expense.Record) bool {
			return strings.HasPrefix(r.Date, prefix)
		})
	default:
		return recs
	}
}

func filter(recs []expense.Record, keep func(expense.Record) bool) []expense.Record {
	res := make([]expense.Record, 0, len(recs))
	for _, rec := range recs {
		if keep(rec) {
			res = append(res, rec)
		}
	}
	return res
}

// dateOnly truncates to the calendar date in UTC, matching the UTC
// midnight produced by parsing a stored date string.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
