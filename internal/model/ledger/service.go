package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

type store interface {
	LoadLedgers(ctx context.Context) (map[string]expense.Ledger, error)
	SaveLedgers(ctx context.Context, ledgers map[string]expense.Ledger) error
}

// Summary holds the per-category totals of the current month together
// with the overall sum and record count.
type Summary struct {
	Totals map[string]float64
	Total  float64
	Count  int
}

// Service owns every user's expense ledger: identifier assignment,
// insertion, removal and period-filtered reads. State is loaded once
// at construction; every mutation rewrites the whole store and is
// committed in memory only after the save succeeded.
type Service struct {
	mu      sync.RWMutex
	store   store
	ledgers map[string]expense.Ledger
	nowFn   func() time.Time
}

func NewService(ctx context.Context, store store) (*Service, error) {
	ledgers, err := store.LoadLedgers(ctx)
	if err != nil {
		return nil, &customerr.PersistenceError{Op: "load ledger store", Err: err}
	}
	return &Service{
		store:   store,
		ledgers: ledgers,
		nowFn:   time.Now,
	}, nil
}

// Add validates the textual inputs, stamps the current date and time,
// assigns the next identifier from the user's persisted counter and
// appends the record. Nothing is mutated on a validation failure.
func (s *Service) Add(ctx context.Context, userID, amountText, categoryText, description string) (expense.Record, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountText), 64)
	if err != nil {
		return expense.Record{}, &customerr.ValidationError{Err: "amount must be a number"}
	}
	if amount <= 0 {
		return expense.Record{}, &customerr.ValidationError{Err: "amount must be greater than 0"}
	}
	category := strings.ToLower(strings.TrimSpace(categoryText))
	if !expense.IsValidCategory(category) {
		return expense.Record{}, &customerr.ValidationError{Err: "unknown category: " + category}
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return expense.Record{}, &customerr.ValidationError{Err: "description must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	led := s.ledgers[userID]
	if led.NextID < 1 {
		led.NextID = 1
	}
	now := s.nowFn()
	rec := expense.Record{
		ID:          led.NextID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        now.Format(expense.DateLayout),
		Time:        now.Format(expense.TimeLayout),
	}
	led.NextID++
	led.Expenses = appendRecord(led.Expenses, rec)

	if err = s.commit(ctx, userID, led); err != nil {
		return expense.Record{}, err
	}
	logger.Info("expense added",
		zap.String("user", userID), zap.Int64("id", rec.ID), zap.String("category", rec.Category))
	return rec, nil
}

// Delete removes the record with the given identifier and returns it.
// The state is unchanged when no such identifier exists.
func (s *Service) Delete(ctx context.Context, userID, idText string) (expense.Record, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return expense.Record{}, &customerr.ValidationError{Err: "expense id must be an integer"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	led := s.ledgers[userID]
	idx := -1
	for i, rec := range led.Expenses {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return expense.Record{}, &customerr.NotFoundError{Err: fmt.Sprintf("expense %d not found", id)}
	}

	removed := led.Expenses[idx]
	rest := make([]expense.Record, 0, len(led.Expenses)-1)
	rest = append(rest, led.Expenses[:idx]...)
	rest = append(rest, led.Expenses[idx+1:]...)
	led.Expenses = rest

	if err = s.commit(ctx, userID, led); err != nil {
		return expense.Record{}, err
	}
	logger.Info("expense deleted", zap.String("user", userID), zap.Int64("id", removed.ID))
	return removed, nil
}

// List returns the user's records inside the named period, in
// insertion order. Display sorting is the caller's concern.
func (s *Service) List(_ context.Context, userID, period string) ([]expense.Record, error) {
	if !IsValidPeriod(period) {
		return nil, &customerr.ValidationError{Err: "unknown period: use today, week, month or all"}
	}
	return FilterByPeriod(s.userExpenses(userID), period, s.nowFn()), nil
}

// Summary aggregates the current month. An empty month is a
// zero-count summary, not an error.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	recs, err := s.List(ctx, userID, PeriodMonth)
	if err != nil {
		return Summary{}, err
	}
	totals := CategoryTotals(recs)
	var total float64
	for _, amount := range totals {
		total += amount
	}
	return Summary{Totals: totals, Total: total, Count: len(recs)}, nil
}

// MonthTotals reports the user's current-month spend per category. It
// feeds the budget tracker.
func (s *Service) MonthTotals(userID string) map[string]float64 {
	return CategoryTotals(FilterByPeriod(s.userExpenses(userID), PeriodMonth, s.nowFn()))
}

func (s *Service) userExpenses(userID string) []expense.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]expense.Record(nil), s.ledgers[userID].Expenses...)
}

// commit persists a candidate snapshot and applies it in memory only
// when the save succeeded, keeping memory and disk consistent.
// Callers hold the write lock.
func (s *Service) commit(ctx context.Context, userID string, led expense.Ledger) error {
	next := make(map[string]expense.Ledger, len(s.ledgers)+1)
	for id, l := range s.ledgers {
		next[id] = l
	}
	next[userID] = led
	if err := s.store.SaveLedgers(ctx, next); err != nil {
		return &customerr.PersistenceError{Op: "persist ledger store", Err: err}
	}
	s.ledgers = next
	return nil
}

func appendRecord(recs []expense.Record, rec expense.Record) []expense.Record {
	res := make([]expense.Record, 0, len(recs)+1)
	res = append(res, recs...)
	return append(res, rec)
}
