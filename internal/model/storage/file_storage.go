package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

type filesConfig interface {
	LedgerFile() string
	BudgetFile() string
}

// FileStorage keeps the ledger and budget stores as two independent
// human-readable JSON snapshots. Every save rewrites the whole file
// through a temp file plus rename, so a crash mid-write cannot leave a
// truncated snapshot behind.
type FileStorage struct {
	ledgerPath string
	budgetPath string
}

func NewFileStorage(config filesConfig) (*FileStorage, error) {
	s := &FileStorage{
		ledgerPath: config.LedgerFile(),
		budgetPath: config.BudgetFile(),
	}
	for _, path := range []string{s.ledgerPath, s.budgetPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "create data dir")
		}
	}
	return s, nil
}

func (s *FileStorage) LoadLedgers(_ context.Context) (map[string]expense.Ledger, error) {
	res := make(map[string]expense.Ledger)
	if err := readSnapshot(s.ledgerPath, &res); err != nil {
		return nil, errors.Wrap(err, "load ledgers")
	}
	return res, nil
}

func (s *FileStorage) SaveLedgers(_ context.Context, ledgers map[string]expense.Ledger) error {
	return errors.Wrap(writeSnapshot(s.ledgerPath, ledgers), "save ledgers")
}

func (s *FileStorage) LoadBudgets(_ context.Context) (map[string]budget.Limits, error) {
	res := make(map[string]budget.Limits)
	if err := readSnapshot(s.budgetPath, &res); err != nil {
		return nil, errors.Wrap(err, "load budgets")
	}
	return res, nil
}

func (s *FileStorage) SaveBudgets(_ context.Context, budgets map[string]budget.Limits) error {
	return errors.Wrap(writeSnapshot(s.budgetPath, budgets), "save budgets")
}

// readSnapshot leaves v untouched when the file does not exist yet: an
// absent snapshot is an empty store.
func readSnapshot(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func writeSnapshot(path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, append(raw, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
