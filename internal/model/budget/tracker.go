package budget

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/ledger"
)

type store interface {
	LoadBudgets(ctx context.Context) (map[string]budget.Limits, error)
	SaveBudgets(ctx context.Context, budgets map[string]budget.Limits) error
}

type expenseSource interface {
	MonthTotals(userID string) map[string]float64
}

// Tracker owns the per-user monthly category limits and evaluates them
// against the ledger's month-to-date spend. Limits live in their own
// store, independent of the ledgers.
type Tracker struct {
	mu       sync.RWMutex
	store    store
	expenses expenseSource
	budgets  map[string]budget.Limits
}

func NewTracker(ctx context.Context, store store, expenses expenseSource) (*Tracker, error) {
	budgets, err := store.LoadBudgets(ctx)
	if err != nil {
		return nil, &customerr.PersistenceError{Op: "load budget store", Err: err}
	}
	return &Tracker{
		store:    store,
		expenses: expenses,
		budgets:  budgets,
	}, nil
}

// Set validates and stores a monthly limit, overwriting any previous
// one for that category. It returns the normalized category and the
// parsed amount.
func (t *Tracker) Set(ctx context.Context, userID, categoryText, amountText string) (string, float64, error) {
	category := strings.ToLower(strings.TrimSpace(categoryText))
	if !expense.IsValidCategory(category) {
		return "", 0, &customerr.ValidationError{Err: "unknown category: " + category}
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountText), 64)
	if err != nil {
		return "", 0, &customerr.ValidationError{Err: "budget amount must be a number"}
	}
	if amount <= 0 {
		return "", 0, &customerr.ValidationError{Err: "budget amount must be greater than 0"}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	limits := make(budget.Limits, len(t.budgets[userID])+1)
	for cat, lim := range t.budgets[userID] {
		limits[cat] = lim
	}
	limits[category] = amount

	if err = t.commit(ctx, userID, limits); err != nil {
		return "", 0, err
	}
	logger.Info("budget set",
		zap.String("user", userID), zap.String("category", category), zap.Float64("limit", amount))
	return category, amount, nil
}

// Clear drops the user's entire budget mapping. Having none to clear
// is reported distinctly, not as an error.
func (t *Tracker) Clear(ctx context.Context, userID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.budgets[userID]; !ok {
		return false, nil
	}
	if err := t.commit(ctx, userID, nil); err != nil {
		return false, err
	}
	logger.Info("budgets cleared", zap.String("user", userID))
	return true, nil
}

// Status reports limit vs. current-month spend for every category the
// user has a limit for. It returns nil when no budgets are configured.
func (t *Tracker) Status(userID string) map[string]budget.Status {
	t.mu.RLock()
	limits := t.budgets[userID]
	t.mu.RUnlock()
	if len(limits) == 0 {
		return nil
	}

	spent := t.expenses.MonthTotals(userID)
	res := make(map[string]budget.Status, len(limits))
	for category, limit := range limits {
		res[category] = budget.Status{
			Limit:      limit,
			Spent:      spent[category],
			Remaining:  limit - spent[category],
			Percentage: ledger.Percentage(spent[category], limit),
		}
	}
	return res
}

// AlertFor runs the threshold check for one category against the
// month-to-date spend. Without a limit for that category the answer
// is always AlertNone.
func (t *Tracker) AlertFor(userID, category string) budget.Alert {
	t.mu.RLock()
	limit, ok := t.budgets[userID][category]
	t.mu.RUnlock()
	if !ok {
		return budget.Alert{Category: category}
	}
	alert := CheckThreshold(t.expenses.MonthTotals(userID)[category], limit)
	alert.Category = category
	return alert
}

// commit persists a candidate snapshot and applies it in memory only
// when the save succeeded. A nil limits map removes the user entirely.
// Callers hold the write lock.
func (t *Tracker) commit(ctx context.Context, userID string, limits budget.Limits) error {
	next := make(map[string]budget.Limits, len(t.budgets)+1)
	for id, lims := range t.budgets {
		next[id] = lims
	}
	if limits == nil {
		delete(next, userID)
	} else {
		next[userID] = limits
	}
	if err := t.store.SaveBudgets(ctx, next); err != nil {
		return &customerr.PersistenceError{Op: "persist budget store", Err: err}
	}
	t.budgets = next
	return nil
}
