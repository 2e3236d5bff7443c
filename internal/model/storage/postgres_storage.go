package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type pgConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

// PostgresStorage is the alternative snapshot backend. It speaks the
// same whole-store Load/Save contract as FileStorage: a save replaces
// every row of the owning store inside one transaction, so readers
// never observe a partial rewrite.
//
// Expected schema: ledgers(user_id, next_id),
// expenses(user_id, id, amount, category, description, expense_date, expense_time),
// budgets(user_id, category, month_limit).
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config pgConfig) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) LoadLedgers(ctx context.Context) (map[string]expense.Ledger, error) {
	res := make(map[string]expense.Ledger)

	counters := psql.Select("user_id", "next_id").From("ledgers")
	rows, err := counters.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load ledgers")
	}
	defer closeRows(rows)
	for rows.Next() {
		var userID string
		var led expense.Ledger
		if err = rows.Scan(&userID, &led.NextID); err != nil {
			return nil, errors.Wrap(err, "load ledgers")
		}
		res[userID] = led
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "load ledgers")
	}

	// id order is insertion order: identifiers grow monotonically
	records := psql.Select("user_id", "id", "amount", "category", "description", "expense_date", "expense_time").
		From("expenses").
		OrderBy("user_id", "id")
	rows, err = records.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load expenses")
	}
	defer closeRows(rows)
	for rows.Next() {
		var userID string
		var rec expense.Record
		err = rows.Scan(&userID, &rec.ID, &rec.Amount, &rec.Category, &rec.Description, &rec.Date, &rec.Time)
		if err != nil {
			return nil, errors.Wrap(err, "load expenses")
		}
		led := res[userID]
		led.Expenses = append(led.Expenses, rec)
		res[userID] = led
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "load expenses")
	}
	return res, nil
}

func (s *PostgresStorage) SaveLedgers(ctx context.Context, ledgers map[string]expense.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "save ledgers")
	}
	defer rollback(tx)

	for _, table := range []string{"expenses", "ledgers"} {
		if _, err = sq.Delete(table).RunWith(tx).ExecContext(ctx); err != nil {
			return errors.Wrap(err, "save ledgers")
		}
	}
	for userID, led := range ledgers {
		counter := psql.Insert("ledgers").
			Columns("user_id", "next_id").
			Values(userID, led.NextID)
		if _, err = counter.RunWith(tx).ExecContext(ctx); err != nil {
			return errors.Wrap(err, "save ledgers")
		}
		for _, rec := range led.Expenses {
			record := psql.Insert("expenses").
				Columns("user_id", "id", "amount", "category", "description", "expense_date", "expense_time").
				Values(userID, rec.ID, rec.Amount, rec.Category, rec.Description, rec.Date, rec.Time)
			if _, err = record.RunWith(tx).ExecContext(ctx); err != nil {
				return errors.Wrap(err, "save ledgers")
			}
		}
	}
	return errors.Wrap(tx.Commit(), "save ledgers")
}

func (s *PostgresStorage) LoadBudgets(ctx context.Context) (map[string]budget.Limits, error) {
	query := psql.Select("user_id", "category", "month_limit").From("budgets")
	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load budgets")
	}
	defer closeRows(rows)

	res := make(map[string]budget.Limits)
	for rows.Next() {
		var userID, category string
		var limit float64
		if err = rows.Scan(&userID, &category, &limit); err != nil {
			return nil, errors.Wrap(err, "load budgets")
		}
		limits, ok := res[userID]
		if !ok {
			limits = make(budget.Limits)
			res[userID] = limits
		}
		limits[category] = limit
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "load budgets")
	}
	return res, nil
}

func (s *PostgresStorage) SaveBudgets(ctx context.Context, budgets map[string]budget.Limits) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "save budgets")
	}
	defer rollback(tx)

	if _, err = sq.Delete("budgets").RunWith(tx).ExecContext(ctx); err != nil {
		return errors.Wrap(err, "save budgets")
	}
	for userID, limits := range budgets {
		for category, limit := range limits {
			query := psql.Insert("budgets").
				Columns("user_id", "category", "month_limit").
				Values(userID, category, limit)
			if _, err = query.RunWith(tx).ExecContext(ctx); err != nil {
				return errors.Wrap(err, "save budgets")
			}
		}
	}
	return errors.Wrap(tx.Commit(), "save budgets")
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Error("error when transaction rollback", zap.Error(err))
	}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}
