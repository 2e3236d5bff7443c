package expense

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

const (
	Food          = "food"
	Transport     = "transport"
	Shopping      = "shopping"
	Healthcare    = "healthcare"
	Entertainment = "entertainment"
	Bills         = "bills"
	Education     = "education"
	Housing       = "housing"
	Other         = "other"
)

// Categories is the closed set of spending categories, in display order.
var Categories = []string{
	Food, Transport, Shopping, Healthcare, Entertainment,
	Bills, Education, Housing, Other,
}

var labels = map[string]string{
	Food:          "🍔 Food & Dining",
	Transport:     "🚗 Transportation",
	Shopping:      "🛍️ Shopping",
	Healthcare:    "💊 Healthcare",
	Entertainment: "🎮 Entertainment",
	Bills:         "💳 Bills & Utilities",
	Education:     "🎓 Education",
	Housing:       "🏠 Housing",
	Other:         "💰 Other",
}

func IsValidCategory(cat string) bool {
	_, ok := labels[cat]
	return ok
}

// Label returns the display label for a category key, or the key
// itself if it is not part of the set.
func Label(cat string) string {
	if l, ok := labels[cat]; ok {
		return l
	}
	return cat
}

// Record is a single immutable expense. Date and Time keep the
// snapshot wire format ("2006-01-02" and "15:04:05") stamped at
// creation.
type Record struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
}

// Ledger is one user's expense collection. NextID is a monotonic
// counter persisted with the expenses so identifiers are never reused
// after a delete.
type Ledger struct {
	NextID   int64    `json:"next_id"`
	Expenses []Record `json:"expenses"`
}
