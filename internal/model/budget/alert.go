package budget

import (
	"max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/model/ledger"
)

// nearLimitShare is the fraction of a limit at which spending starts
// to warn before it is exceeded.
const nearLimitShare = 0.8

// CheckThreshold is the pure post-condition check run after a
// successful add: spend at or above the limit is exceeded, spend at or
// above 80% of it is near-limit. The limit is guaranteed positive by
// the set contract.
func CheckThreshold(spent, limit float64) budget.Alert {
	alert := budget.Alert{
		Kind:       budget.AlertNone,
		Limit:      limit,
		Spent:      spent,
		Percentage: ledger.Percentage(spent, limit),
	}
	switch {
	case spent >= limit:
		alert.Kind = budget.AlertExceeded
	case spent >= limit*nearLimitShare:
		alert.Kind = budget.AlertNearLimit
	}
	return alert
}
