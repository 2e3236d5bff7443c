package messages

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/model/budget"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/messages/mock"
	"max.ks1230/expense-tracker/internal/model/storage"
)

const testUserID int64 = 123

type testFiles struct {
	dir string
}

func (f testFiles) LedgerFile() string { return filepath.Join(f.dir, "expenses.json") }
func (f testFiles) BudgetFile() string { return filepath.Join(f.dir, "budgets.json") }

func newTestService(t *testing.T, sender messageSender) *Service {
	t.Helper()
	ctx := context.Background()

	fs, err := storage.NewFileStorage(testFiles{t.TempDir()})
	require.NoError(t, err)
	expenses, err := ledger.NewService(ctx, fs)
	require.NoError(t, err)
	budgets, err := budget.NewTracker(ctx, fs, expenses)
	require.NoError(t, err)

	m := minimock.NewController(t)
	conf := mock.NewConfigMock(m).ListLimitMock.Return(20)

	return NewService(sender, expenses, budgets, conf)
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.Expect(helloMessage, testUserID).Return(nil)
	svc := newTestService(t, sender)

	err := svc.HandleIncomingMessage(ctx, Message{Text: "/start", UserID: testUserID})
	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpHint(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.Expect(dontUnderstandMessage, testUserID).Return(nil)
	svc := newTestService(t, sender)

	err := svc.HandleIncomingMessage(ctx, Message{Text: "/ping", UserID: testUserID})
	assert.NoError(t, err)
}

func Test_OnPlainText_ShouldAnswerPolitely(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.Expect(loveToTalkMessage, testUserID).Return(nil)
	svc := newTestService(t, sender)

	err := svc.HandleIncomingMessage(ctx, Message{Text: "hello there", UserID: testUserID})
	assert.NoError(t, err)
}

func Test_OnAddCommand_ShouldConfirmTheNewExpense(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.
		Expect("✅ Expense added!\n💵 $15.50 - 🍔 Food & Dining\n📝 Lunch at cafe", testUserID).
		Return(nil)
	svc := newTestService(t, sender)

	err := svc.HandleIncomingMessage(ctx, Message{Text: "/add 15.50 food Lunch at cafe", UserID: testUserID})
	assert.NoError(t, err)
}

func Test_OnAddCommand_ShouldExplainUsageAndRejectBadInput(t *testing.T) {
	cases := []struct {
		name string
		text string
		resp string
	}{
		{"missing args", "/add 15.50 food", addUsageMessage},
		{"bad amount", "/add abc food Lunch", "❌ amount must be a number"},
		{"negative amount", "/add -5 food Lunch", "❌ amount must be greater than 0"},
		{"bad category", "/add 10 groceries Lunch", "❌ unknown category: groceries"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			m := minimock.NewController(t)
			sender := mock.NewMessageSenderMock(m)
			sender.SendMessageMock.Expect(tc.resp, testUserID).Return(nil)
			svc := newTestService(t, sender)

			err := svc.HandleIncomingMessage(ctx, Message{Text: tc.text, UserID: testUserID})
			assert.NoError(t, err)
		})
	}
}

func Test_OnListCommand_EmptyLedgerAndUnknownPeriod(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)

	var responses []string
	sender := mock.NewMessageSenderMock(m).SendMessageMock.Set(func(text string, _ int64) error {
		responses = append(responses, text)
		return nil
	})
	svc := newTestService(t, sender)

	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/list", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/list year", UserID: testUserID}))

	require.Len(t, responses, 2)
	assert.Equal(t, "📭 No expenses found for month.", responses[0])
	assert.Equal(t, "❌ unknown period: use today, week, month or all", responses[1])
}

func Test_OnListCommand_ShouldRenderExpensesWithTotal(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)

	var last string
	sender := mock.NewMessageSenderMock(m).SendMessageMock.Set(func(text string, _ int64) error {
		last = text
		return nil
	})
	svc := newTestService(t, sender)

	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/add 15.50 food Lunch", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/add 30 transport Taxi", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/list all", UserID: testUserID}))

	assert.True(t, strings.HasPrefix(last, "💰 Your expenses (all):"))
	assert.Contains(t, last, "ID:1  $15.50 - 🍔 Food & Dining - Lunch")
	assert.Contains(t, last, "ID:2  $30.00 - 🚗 Transportation - Taxi")
	assert.Contains(t, last, "Total: $45.50")
}

func Test_OnDeleteCommand_ShouldRemoveOnceAndThenComplain(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)

	var responses []string
	sender := mock.NewMessageSenderMock(m).SendMessageMock.Set(func(text string, _ int64) error {
		responses = append(responses, text)
		return nil
	})
	svc := newTestService(t, sender)

	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/add 15.50 food Lunch", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/delete 1", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/delete 1", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/delete", UserID: testUserID}))

	require.Len(t, responses, 4)
	assert.Equal(t, "✅ Deleted: $15.50 - 🍔 Food & Dining - Lunch", responses[1])
	assert.Equal(t, "❌ expense 1 not found", responses[2])
	assert.Equal(t, deleteUsageMessage, responses[3])
}

func Test_OnCategoriesCommand_ShouldListTheClosedSet(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)

	var last string
	sender := mock.NewMessageSenderMock(m).SendMessageMock.Set(func(text string, _ int64) error {
		last = text
		return nil
	})
	svc := newTestService(t, sender)

	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/categories", UserID: testUserID}))

	assert.True(t, strings.HasPrefix(last, "Available categories:"))
	assert.Contains(t, last, "food - 🍔 Food & Dining")
	assert.Contains(t, last, "other - 💰 Other")
}

func Test_OnSummaryCommand_ShouldAggregateTheMonth(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)

	var last string
	sender := mock.NewMessageSenderMock(m).SendMessageMock.Set(func(text string, _ int64) error {
		last = text
		return nil
	})
	svc := newTestService(t, sender)

	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/summary", UserID: testUserID}))
	assert.Equal(t, noExpensesMessage, last)

	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/add 15.50 food Lunch", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/add 30 transport Taxi", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/summary", UserID: testUserID}))

	assert.True(t, strings.HasPrefix(last, "📊 Monthly summary ("))
	assert.Contains(t, last, "🚗 Transportation: $30.00 (65.9%)")
	assert.Contains(t, last, "🍔 Food & Dining: $15.50 (34.1%)")
	assert.Contains(t, last, "💵 Total: $45.50")
	assert.Contains(t, last, "📝 Expenses: 2")
}

func Test_OnBudgetCommand_SetStatusClearFlow(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)

	var responses []string
	sender := mock.NewMessageSenderMock(m).SendMessageMock.Set(func(text string, _ int64) error {
		responses = append(responses, text)
		return nil
	})
	svc := newTestService(t, sender)

	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/budget status", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/budget set food 100", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/add 15.50 food Lunch", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/budget status", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/budget clear", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/budget clear", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/budget", UserID: testUserID}))

	require.Len(t, responses, 7)
	assert.Equal(t, noBudgetsMessage, responses[0])
	assert.Equal(t, "✅ Budget set: 🍔 Food & Dining - $100.00/month", responses[1])
	status := responses[3]
	assert.True(t, strings.HasPrefix(status, "📊 Budget status ("))
	assert.Contains(t, status, "✅ 🍔 Food & Dining")
	assert.Contains(t, status, "Budget: $100.00 | Spent: $15.50")
	assert.Contains(t, status, "Remaining: $84.50")
	assert.Equal(t, "✅ All budgets cleared!", responses[4])
	assert.Equal(t, "📭 No budgets to clear!", responses[5])
	assert.Equal(t, budgetUsageMessage, responses[6])
}

func Test_OnAddCommand_ShouldWarnWhenBudgetIsExceeded(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)

	var responses []string
	sender := mock.NewMessageSenderMock(m).SendMessageMock.Set(func(text string, _ int64) error {
		responses = append(responses, text)
		return nil
	})
	svc := newTestService(t, sender)

	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/budget set food 20", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/add 15.50 food Lunch", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/add 10 food Dinner", UserID: testUserID}))

	require.Len(t, responses, 3)
	assert.NotContains(t, responses[1], "⚠️")
	assert.Contains(t, responses[2], "⚠️ Budget alert: you've exceeded your 🍔 Food & Dining budget!")
}

func Test_OnAddCommand_ShouldWarnNearTheLimit(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)

	var last string
	sender := mock.NewMessageSenderMock(m).SendMessageMock.Set(func(text string, _ int64) error {
		last = text
		return nil
	})
	svc := newTestService(t, sender)

	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/budget set food 100", UserID: testUserID}))
	require.NoError(t, svc.HandleIncomingMessage(ctx, Message{Text: "/add 82 food Groceries", UserID: testUserID}))

	assert.Contains(t, last, "⚠️ Budget alert: you've used 82% of your 🍔 Food & Dining budget!")
}
