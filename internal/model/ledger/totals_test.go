package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_CategoryTotals_ShouldPartitionInputSum(t *testing.T) {
	recs := []expense.Record{
		{ID: 1, Amount: 15.50, Category: expense.Food},
		{ID: 2, Amount: 10.00, Category: expense.Food},
		{ID: 3, Amount: 42.25, Category: expense.Transport},
		{ID: 4, Amount: 7.75, Category: expense.Other},
	}

	totals := CategoryTotals(recs)

	assert.Len(t, totals, 3)
	assert.Equal(t, 25.50, totals[expense.Food])
	assert.Equal(t, 42.25, totals[expense.Transport])
	assert.Equal(t, 7.75, totals[expense.Other])

	var input, output float64
	for _, rec := range recs {
		input += rec.Amount
	}
	for _, amount := range totals {
		output += amount
	}
	assert.Equal(t, input, output)
}

func Test_CategoryTotals_EmptyInputYieldsEmptyMapping(t *testing.T) {
	totals := CategoryTotals(nil)

	assert.Empty(t, totals)
	var total float64
	for _, amount := range totals {
		total += amount
	}
	assert.Equal(t, 0.0, total)
}

func Test_CategoryTotals_ShouldOmitZeroCategories(t *testing.T) {
	totals := CategoryTotals([]expense.Record{{ID: 1, Amount: 5, Category: expense.Bills}})

	_, ok := totals[expense.Food]
	assert.False(t, ok)
}

func Test_Percentage(t *testing.T) {
	assert.Equal(t, 25.0, Percentage(50, 200))
	assert.Equal(t, 100.0, Percentage(20, 20))
	assert.Equal(t, 0.0, Percentage(10, 0))
	assert.Equal(t, 0.0, Percentage(0, 0))
}
