package config

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

const (
	defaultLedgerFile = "data/expenses.json"
	defaultBudgetFile = "data/budgets.json"
)

type StorageConfig struct {
	StorageDriver string `yaml:"driver"`
	LedgerPath    string `yaml:"ledger-file"`
	BudgetPath    string `yaml:"budget-file"`
}

func (s *StorageConfig) Driver() string {
	if s.StorageDriver == "" {
		return DriverFile
	}
	return s.StorageDriver
}

func (s *StorageConfig) LedgerFile() string {
	if s.LedgerPath == "" {
		return defaultLedgerFile
	}
	return s.LedgerPath
}

func (s *StorageConfig) BudgetFile() string {
	if s.BudgetPath == "" {
		return defaultBudgetFile
	}
	return s.BudgetPath
}
