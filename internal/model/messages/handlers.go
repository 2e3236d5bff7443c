package messages

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	budgetent "max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/ledger"
)

const (
	helloMessage          = "Hello! I am ExpenseTracker bot 🤖\nUse /help to see what I can do"
	dontUnderstandMessage = "I don't understand you :(\nUse /help to see the commands"
	loveToTalkMessage     = "I would love to talk about it more!"

	helpMessage = `💰 Expense tracker commands:

/add <amount> <category> <description> - add an expense
Example: /add 15.50 food Lunch at cafe

/list [today/week/month/all] - view your expenses
/categories - show all available categories
/summary - monthly spending summary
/delete <id> - delete an expense by its id

/budget set <category> <amount> - set a monthly budget
/budget status - budget vs actual spending
/budget clear - remove all budgets`

	addUsageMessage    = "❌ Usage: /add <amount> <category> <description>"
	deleteUsageMessage = "❌ Usage: /delete <expense_id>"
	budgetUsageMessage = "❌ Usage: /budget set <category> <amount>, /budget status or /budget clear"

	noExpensesMessage = "📭 No expenses found for this month."
	noBudgetsMessage  = "📭 No budgets set! Use /budget set <category> <amount>"

	cannotPersistMessage = "Can't save your changes atm. Try later"
)

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	addCommand        = "/add"
	listCommand       = "/list"
	categoriesCommand = "/categories"
	summaryCommand    = "/summary"
	deleteCommand     = "/delete"
	budgetCommand     = "/budget"
)

type expenseLedger interface {
	Add(ctx context.Context, userID, amount, category, description string) (expense.Record, error)
	List(ctx context.Context, userID, period string) ([]expense.Record, error)
	Summary(ctx context.Context, userID string) (ledger.Summary, error)
	Delete(ctx context.Context, userID, id string) (expense.Record, error)
}

type budgetTracker interface {
	Set(ctx context.Context, userID, category, amount string) (string, float64, error)
	Clear(ctx context.Context, userID string) (bool, error)
	Status(userID string) map[string]budgetent.Status
	AlertFor(userID, category string) budgetent.Alert
}

type config interface {
	ListLimit() int
}

// ReportCache keeps rendered replies between mutations so repeated
// /summary and /budget status calls skip the aggregation.
type ReportCache interface {
	CacheReport(userID int64, option string, report string) error
	GetReport(userID int64, option string) (string, error)
	InvalidateCache(userID int64, options []string) error
}

// AlertProducer publishes fired threshold alerts to an external topic.
type AlertProducer interface {
	ProduceMessage(message []byte) error
}

type Option func(*HandlerService)

func WithReportCache(c ReportCache) Option {
	return func(s *HandlerService) { s.cache = c }
}

func WithAlertProducer(p AlertProducer) Option {
	return func(s *HandlerService) { s.alerts = p }
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	ledger      expenseLedger
	budgets     budgetTracker
	cache       ReportCache
	alerts      AlertProducer
	listLimit   int
}

func newHandler(ledgerSvc expenseLedger, budgets budgetTracker, conf config, opts ...Option) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		ledger:      ledgerSvc,
		budgets:     budgets,
		listLimit:   conf.ListLimit(),
	}
	for _, opt := range opts {
		opt(res)
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[addCommand] = s.handleAdd
	m[listCommand] = s.handleList
	m[categoriesCommand] = s.handleCategories
	m[summaryCommand] = s.handleSummary
	m[deleteCommand] = s.handleDelete
	m[budgetCommand] = s.handleBudget

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		observeCommand(cmd)
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.SplitN(strings.TrimSpace(arg), " ", 3)
	if len(args) < 3 {
		return addUsageMessage, nil
	}

	rec, err := s.ledger.Add(ctx, userKey(userID), args[0], args[1], args[2])
	if err != nil {
		return renderError(err)
	}
	s.invalidate(userID, []string{summaryOption(), statusOption()})

	alert := s.budgets.AlertFor(userKey(userID), rec.Category)
	if alert.Fired() {
		s.publishAlert(userID, alert)
	}
	return formatAdded(rec, alert), nil
}

func (s *HandlerService) handleList(ctx context.Context, arg string, userID int64) (string, error) {
	period := strings.TrimSpace(arg)
	if period == "" {
		period = ledger.PeriodMonth
	}

	recs, err := s.ledger.List(ctx, userKey(userID), period)
	if err != nil {
		return renderError(err)
	}
	if len(recs) == 0 {
		return "📭 No expenses found for " + period + ".", nil
	}
	return formatList(period, recs, s.listLimit), nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string, _ int64) (string, error) {
	return formatCategories(), nil
}

func (s *HandlerService) handleSummary(ctx context.Context, _ string, userID int64) (string, error) {
	if cached, ok := s.cached(userID, summaryOption()); ok {
		return cached, nil
	}

	sum, err := s.ledger.Summary(ctx, userKey(userID))
	if err != nil {
		return renderError(err)
	}
	if sum.Count == 0 {
		return noExpensesMessage, nil
	}

	resp := formatSummary(sum, time.Now())
	s.remember(userID, summaryOption(), resp)
	return resp, nil
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string, userID int64) (string, error) {
	if strings.TrimSpace(arg) == "" {
		return deleteUsageMessage, nil
	}

	rec, err := s.ledger.Delete(ctx, userKey(userID), arg)
	if err != nil {
		return renderError(err)
	}
	s.invalidate(userID, []string{summaryOption(), statusOption()})
	return formatDeleted(rec), nil
}

func (s *HandlerService) handleBudget(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 {
		return budgetUsageMessage, nil
	}

	switch args[0] {
	case "set":
		if len(args) < 3 {
			return "❌ Usage: /budget set <category> <amount>", nil
		}
		category, amount, err := s.budgets.Set(ctx, userKey(userID), args[1], args[2])
		if err != nil {
			return renderError(err)
		}
		s.invalidate(userID, []string{statusOption()})
		return formatBudgetSet(category, amount), nil

	case "status":
		if cached, ok := s.cached(userID, statusOption()); ok {
			return cached, nil
		}
		status := s.budgets.Status(userKey(userID))
		if status == nil {
			return noBudgetsMessage, nil
		}
		resp := formatStatus(status, time.Now())
		s.remember(userID, statusOption(), resp)
		return resp, nil

	case "clear":
		cleared, err := s.budgets.Clear(ctx, userKey(userID))
		if err != nil {
			return renderError(err)
		}
		s.invalidate(userID, []string{statusOption()})
		if !cleared {
			return "📭 No budgets to clear!", nil
		}
		return "✅ All budgets cleared!", nil
	}
	return budgetUsageMessage, nil
}

// renderError turns expected domain failures into user-facing replies.
// Persistence failures stay errors for the transport layer to report.
func renderError(err error) (string, error) {
	var validation *customerr.ValidationError
	if errors.As(err, &validation) {
		return "❌ " + validation.Err, nil
	}
	var notFound *customerr.NotFoundError
	if errors.As(err, &notFound) {
		return "❌ " + notFound.Err, nil
	}
	return cannotPersistMessage, err
}

func (s *HandlerService) cached(userID int64, option string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	report, err := s.cache.GetReport(userID, option)
	if err != nil {
		return "", false
	}
	return report, true
}

func (s *HandlerService) remember(userID int64, option, report string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.CacheReport(userID, option, report); err != nil {
		logger.Warn("cannot cache report", zap.Error(err))
	}
}

func (s *HandlerService) invalidate(userID int64, options []string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCache(userID, options); err != nil {
		logger.Warn("cannot invalidate cache", zap.Error(err))
	}
}

type alertEvent struct {
	UserID     int64   `json:"user_id"`
	Category   string  `json:"category"`
	Kind       string  `json:"kind"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
}

func (s *HandlerService) publishAlert(userID int64, alert budgetent.Alert) {
	if s.alerts == nil {
		return
	}
	event := alertEvent{
		UserID:     userID,
		Category:   alert.Category,
		Kind:       alertKindName(alert.Kind),
		Limit:      alert.Limit,
		Spent:      alert.Spent,
		Percentage: alert.Percentage,
	}
	raw, err := json.Marshal(event)
	if err != nil {
		logger.Error("cannot marshal alert event", zap.Error(err))
		return
	}
	if err = s.alerts.ProduceMessage(raw); err != nil {
		logger.Error("cannot publish alert event", zap.Error(err))
	}
}

func alertKindName(kind budgetent.AlertKind) string {
	switch kind {
	case budgetent.AlertExceeded:
		return "exceeded"
	case budgetent.AlertNearLimit:
		return "near_limit"
	default:
		return "none"
	}
}
