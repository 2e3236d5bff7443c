package budget

// Limits maps a category key to one user's monthly limit for it.
// Absence of a key means no limit is set for that category.
type Limits map[string]float64

// Status compares one category's monthly limit with the spend of the
// current month. Remaining goes negative once the limit is exceeded.
type Status struct {
	Limit      float64
	Spent      float64
	Remaining  float64
	Percentage float64
}

type AlertKind int

const (
	AlertNone AlertKind = iota
	AlertNearLimit
	AlertExceeded
)

// Alert is the advisory result of a threshold check after an expense
// was added. It is derived state, never stored.
type Alert struct {
	Kind       AlertKind
	Category   string
	Limit      float64
	Spent      float64
	Percentage float64
}

func (a Alert) Fired() bool {
	return a.Kind != AlertNone
}
