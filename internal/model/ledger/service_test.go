package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/ledger/mock"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type testFiles struct {
	dir string
}

func (f testFiles) LedgerFile() string { return filepath.Join(f.dir, "expenses.json") }
func (f testFiles) BudgetFile() string { return filepath.Join(f.dir, "budgets.json") }

func newTestService(t *testing.T, dir string) *Service {
	t.Helper()
	fs, err := storage.NewFileStorage(testFiles{dir})
	require.NoError(t, err)
	svc, err := NewService(context.Background(), fs)
	require.NoError(t, err)
	svc.nowFn = func() time.Time {
		return time.Date(2026, 8, 30, 12, 30, 45, 0, time.UTC)
	}
	return svc
}

func Test_Add_ShouldGrowLedgerAndCategoryTotal(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, t.TempDir())

	before := svc.MonthTotals("42")[expense.Food]

	rec, err := svc.Add(ctx, "42", "15.50", "food", "Lunch at cafe")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, 15.50, rec.Amount)
	assert.Equal(t, expense.Food, rec.Category)
	assert.Equal(t, "2026-08-30", rec.Date)
	assert.Equal(t, "12:30:45", rec.Time)

	recs, err := svc.List(ctx, "42", PeriodAll)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, before+15.50, svc.MonthTotals("42")[expense.Food])
}

func Test_Add_ShouldRejectInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, t.TempDir())

	cases := []struct {
		name     string
		amount   string
		category string
		desc     string
	}{
		{"non-numeric amount", "abc", "food", "Lunch"},
		{"zero amount", "0", "food", "Lunch"},
		{"negative amount", "-5", "food", "Lunch"},
		{"unknown category", "10", "groceries", "Lunch"},
		{"empty description", "10", "food", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, "42", tc.amount, tc.category, tc.desc)
			var validation *customerr.ValidationError
			assert.True(t, errors.As(err, &validation))
		})
	}

	recs, err := svc.List(ctx, "42", PeriodAll)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func Test_Add_ShouldNormalizeCategoryCase(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	rec, err := svc.Add(context.Background(), "42", "10", "  Food ", "Lunch")
	require.NoError(t, err)
	assert.Equal(t, expense.Food, rec.Category)
}

func Test_Delete_SecondDeleteIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, t.TempDir())

	rec, err := svc.Add(ctx, "42", "10", "food", "Lunch")
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, "42", "1")
	require.NoError(t, err)
	assert.Equal(t, rec, removed)

	_, err = svc.Delete(ctx, "42", "1")
	var notFound *customerr.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func Test_Delete_ShouldRejectUnparsableID(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	_, err := svc.Delete(context.Background(), "42", "first")
	var validation *customerr.ValidationError
	assert.True(t, errors.As(err, &validation))
}

func Test_Add_ShouldNeverReuseIdentifiersAfterDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, t.TempDir())

	for i := 0; i < 3; i++ {
		_, err := svc.Add(ctx, "42", "10", "food", "Lunch")
		require.NoError(t, err)
	}
	_, err := svc.Delete(ctx, "42", "2")
	require.NoError(t, err)

	rec, err := svc.Add(ctx, "42", "10", "food", "Lunch")
	require.NoError(t, err)
	assert.Equal(t, int64(4), rec.ID)
}

func Test_List_ShouldRejectUnknownPeriod(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	_, err := svc.List(context.Background(), "42", "year")
	var validation *customerr.ValidationError
	assert.True(t, errors.As(err, &validation))
}

func Test_List_WeekWindowMovesWithTime(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, t.TempDir())

	_, err := svc.Add(ctx, "42", "10", "food", "Lunch")
	require.NoError(t, err)

	recs, err := svc.List(ctx, "42", PeriodWeek)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	// eight days later the expense leaves the week window but not "all"
	svc.nowFn = func() time.Time {
		return time.Date(2026, 9, 7, 12, 30, 45, 0, time.UTC)
	}

	recs, err = svc.List(ctx, "42", PeriodWeek)
	require.NoError(t, err)
	assert.Empty(t, recs)

	recs, err = svc.List(ctx, "42", PeriodAll)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func Test_Summary_AggregatesCurrentMonth(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, t.TempDir())

	_, err := svc.Add(ctx, "42", "15.50", "food", "Lunch")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "42", "30", "transport", "Taxi")
	require.NoError(t, err)

	sum, err := svc.Summary(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, 45.50, sum.Total)
	assert.Equal(t, 15.50, sum.Totals[expense.Food])
	assert.Equal(t, 30.0, sum.Totals[expense.Transport])
}

func Test_Summary_EmptyMonthIsZeroCount(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	sum, err := svc.Summary(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Count)
	assert.Equal(t, 0.0, sum.Total)
	assert.Empty(t, sum.Totals)
}

func Test_Service_StateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	svc := newTestService(t, dir)
	_, err := svc.Add(ctx, "42", "15.50", "food", "Lunch")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "7", "5", "bills", "Phone")
	require.NoError(t, err)
	_, err = svc.Delete(ctx, "42", "1")
	require.NoError(t, err)

	restarted := newTestService(t, dir)
	recs, err := restarted.List(ctx, "7", PeriodAll)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	// the persisted counter keeps identifiers unique across restarts
	rec, err := restarted.Add(ctx, "42", "10", "food", "Snack")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.ID)
}

func Test_Add_FailedSaveRollsBackMemory(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)

	store := mock.NewLedgerStoreMock(m)
	store.LoadLedgersMock.Return(make(map[string]expense.Ledger), nil)
	store.SaveLedgersMock.Return(errors.New("disk full"))

	svc, err := NewService(ctx, store)
	require.NoError(t, err)

	_, err = svc.Add(ctx, "42", "10", "food", "Lunch")
	var persistence *customerr.PersistenceError
	assert.True(t, errors.As(err, &persistence))

	recs, err := svc.List(ctx, "42", PeriodAll)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
