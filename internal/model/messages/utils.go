package messages

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
	budgetent "max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/ledger"
)

const commandParts = 2

const monthTitleLayout = "January 2006"

const statusBarWidth = 10

// parseCommand splits "/cmd arg..." into its command and argument.
// Text without a leading slash is free chat, not a command.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	split := strings.SplitN(text, " ", commandParts)
	if len(split) == commandParts {
		return split[0], split[1]
	}
	return text, ""
}

// userKey renders a telegram user id to the opaque string key the
// engine stores data under.
func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// Cache options are month-scoped: a new month starts with cold keys,
// stale ones age out of memcached on their own.
func summaryOption() string {
	return "summary:" + now.BeginningOfMonth().Format("2006-01")
}

func statusOption() string {
	return "budget-status:" + now.BeginningOfMonth().Format("2006-01")
}

func formatAdded(rec expense.Record, alert budgetent.Alert) string {
	res := fmt.Sprintf("✅ Expense added!\n💵 $%.2f - %s\n📝 %s",
		rec.Amount, expense.Label(rec.Category), rec.Description)
	if warning := formatAlert(alert); warning != "" {
		res += "\n" + warning
	}
	return res
}

func formatAlert(alert budgetent.Alert) string {
	switch alert.Kind {
	case budgetent.AlertExceeded:
		return fmt.Sprintf("⚠️ Budget alert: you've exceeded your %s budget!", expense.Label(alert.Category))
	case budgetent.AlertNearLimit:
		return fmt.Sprintf("⚠️ Budget alert: you've used %.0f%% of your %s budget!",
			alert.Percentage, expense.Label(alert.Category))
	}
	return ""
}

func formatBudgetSet(category string, amount float64) string {
	return fmt.Sprintf("✅ Budget set: %s - $%.2f/month", expense.Label(category), amount)
}

func formatDeleted(rec expense.Record) string {
	return fmt.Sprintf("✅ Deleted: $%.2f - %s - %s",
		rec.Amount, expense.Label(rec.Category), rec.Description)
}

func formatList(period string, recs []expense.Record, limit int) string {
	recs = sortedRecent(recs)
	shown := recs
	if len(shown) > limit {
		shown = shown[:limit]
	}

	res := make([]string, 0, len(shown)+2)
	res = append(res, fmt.Sprintf("💰 Your expenses (%s):", period))
	var total float64
	for _, rec := range recs {
		total += rec.Amount
	}
	for _, rec := range shown {
		res = append(res, fmt.Sprintf("ID:%d  $%.2f - %s - %s (%s)",
			rec.ID, rec.Amount, expense.Label(rec.Category), rec.Description, rec.Date))
	}
	if len(shown) < len(recs) {
		res = append(res, fmt.Sprintf("(last %d of %d shown)", len(shown), len(recs)))
	}
	res = append(res, "", fmt.Sprintf("Total: $%.2f", total))
	return strings.Join(res, "\n")
}

// sortedRecent orders a copy most-recent-first. Date and time strings
// are zero-padded, so plain string comparison is chronological.
func sortedRecent(recs []expense.Record) []expense.Record {
	res := append([]expense.Record(nil), recs...)
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Date != res[j].Date {
			return res[i].Date > res[j].Date
		}
		return res[i].Time > res[j].Time
	})
	return res
}

func formatCategories() string {
	res := make([]string, 0, len(expense.Categories)+1)
	res = append(res, "Available categories:")
	for _, cat := range expense.Categories {
		res = append(res, fmt.Sprintf("%s - %s", cat, expense.Label(cat)))
	}
	return strings.Join(res, "\n")
}

func formatSummary(sum ledger.Summary, at time.Time) string {
	type catTotal struct {
		category string
		amount   float64
	}
	totals := make([]catTotal, 0, len(sum.Totals))
	for cat, amount := range sum.Totals {
		totals = append(totals, catTotal{cat, amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].amount != totals[j].amount {
			return totals[i].amount > totals[j].amount
		}
		return totals[i].category < totals[j].category
	})

	res := make([]string, 0, len(totals)+3)
	res = append(res, fmt.Sprintf("📊 Monthly summary (%s):", at.Format(monthTitleLayout)))
	for _, t := range totals {
		res = append(res, fmt.Sprintf("%s: $%.2f (%.1f%%)",
			expense.Label(t.category), t.amount, ledger.Percentage(t.amount, sum.Total)))
	}
	res = append(res, "", fmt.Sprintf("💵 Total: $%.2f", sum.Total))
	res = append(res, fmt.Sprintf("📝 Expenses: %d", sum.Count))
	return strings.Join(res, "\n")
}

func formatStatus(status map[string]budgetent.Status, at time.Time) string {
	res := make([]string, 0, 4*len(status)+1)
	res = append(res, fmt.Sprintf("📊 Budget status (%s):", at.Format(monthTitleLayout)))
	// fixed category order keeps the reply stable between calls
	for _, cat := range expense.Categories {
		st, ok := status[cat]
		if !ok {
			continue
		}
		mark := "✅"
		if st.Remaining < 0 {
			mark = "❌"
		}
		res = append(res,
			fmt.Sprintf("%s %s", mark, expense.Label(cat)),
			fmt.Sprintf("Budget: $%.2f | Spent: $%.2f", st.Limit, st.Spent),
			fmt.Sprintf("[%s] %.1f%%", statusBar(st.Percentage), st.Percentage),
			fmt.Sprintf("Remaining: $%.2f", st.Remaining),
			"")
	}
	return strings.TrimRight(strings.Join(res, "\n"), "\n")
}

func statusBar(percentage float64) string {
	filled := int(percentage / 100 * statusBarWidth)
	if filled > statusBarWidth {
		filled = statusBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", statusBarWidth-filled)
}
