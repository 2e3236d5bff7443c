package config

const (
	defaultListLimit   = 20
	defaultMetricsAddr = ":9100"
)

type AppConfig struct {
	ExpenseListLimit int    `yaml:"list-limit"`
	MetricsAddress   string `yaml:"metrics-addr"`
}

// ListLimit caps how many records a single /list reply renders.
func (s *AppConfig) ListLimit() int {
	if s.ExpenseListLimit <= 0 {
		return defaultListLimit
	}
	return s.ExpenseListLimit
}

func (s *AppConfig) MetricsAddr() string {
	if s.MetricsAddress == "" {
		return defaultMetricsAddr
	}
	return s.MetricsAddress
}
