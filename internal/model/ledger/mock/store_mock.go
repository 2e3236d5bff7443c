// Minimock-compatible mock, maintained by hand. The go:generate line below
// regenerates it with the full http://github.com/gojuno/minimock tool.

package mock

//go:generate minimock -i max.ks1230/expense-tracker/internal/model/ledger.store -o ./store_mock.go

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// LedgerStoreMock implements ledger.store
type LedgerStoreMock struct {
	t minimock.Tester

	LoadLedgersMock mLedgerStoreMockLoadLedgers
	SaveLedgersMock mLedgerStoreMockSaveLedgers
}

// NewLedgerStoreMock returns a mock for ledger.store
func NewLedgerStoreMock(t minimock.Tester) *LedgerStoreMock {
	m := &LedgerStoreMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LoadLedgersMock = mLedgerStoreMockLoadLedgers{mock: m}
	m.SaveLedgersMock = mLedgerStoreMockSaveLedgers{mock: m}

	return m
}

type mLedgerStoreMockLoadLedgers struct {
	mock           *LedgerStoreMock
	defaultResults *LedgerStoreMockLoadLedgersResults
	fn             func(ctx context.Context) (map[string]expense.Ledger, error)
	callCounter    uint64
}

// LedgerStoreMockLoadLedgersResults contains results of the store.LoadLedgers
type LedgerStoreMockLoadLedgersResults struct {
	m1  map[string]expense.Ledger
	err error
}

// Return sets up results of store.LoadLedgers invocation
func (mmLoadLedgers *mLedgerStoreMockLoadLedgers) Return(m1 map[string]expense.Ledger, err error) *LedgerStoreMock {
	mmLoadLedgers.defaultResults = &LedgerStoreMockLoadLedgersResults{m1, err}
	return mmLoadLedgers.mock
}

// Set uses given function f to mock the store.LoadLedgers method
func (mmLoadLedgers *mLedgerStoreMockLoadLedgers) Set(f func(ctx context.Context) (map[string]expense.Ledger, error)) *LedgerStoreMock {
	mmLoadLedgers.fn = f
	return mmLoadLedgers.mock
}

// LoadLedgers implements ledger.store
func (mmLoadLedgers *LedgerStoreMock) LoadLedgers(ctx context.Context) (map[string]expense.Ledger, error) {
	atomic.AddUint64(&mmLoadLedgers.LoadLedgersMock.callCounter, 1)

	if mmLoadLedgers.LoadLedgersMock.fn != nil {
		return mmLoadLedgers.LoadLedgersMock.fn(ctx)
	}
	if mmLoadLedgers.LoadLedgersMock.defaultResults != nil {
		results := mmLoadLedgers.LoadLedgersMock.defaultResults
		return results.m1, results.err
	}
	mmLoadLedgers.t.Fatalf("Unexpected call to LedgerStoreMock.LoadLedgers. %v", ctx)
	return nil, nil
}

// LoadLedgersBeforeCounter returns the number of LoadLedgers invocations
func (mmLoadLedgers *LedgerStoreMock) LoadLedgersBeforeCounter() uint64 {
	return atomic.LoadUint64(&mmLoadLedgers.LoadLedgersMock.callCounter)
}

type mLedgerStoreMockSaveLedgers struct {
	mock           *LedgerStoreMock
	defaultResults *LedgerStoreMockSaveLedgersResults
	fn             func(ctx context.Context, ledgers map[string]expense.Ledger) error
	callCounter    uint64
}

// LedgerStoreMockSaveLedgersResults contains results of the store.SaveLedgers
type LedgerStoreMockSaveLedgersResults struct {
	err error
}

// Return sets up results of store.SaveLedgers invocation
func (mmSaveLedgers *mLedgerStoreMockSaveLedgers) Return(err error) *LedgerStoreMock {
	mmSaveLedgers.defaultResults = &LedgerStoreMockSaveLedgersResults{err}
	return mmSaveLedgers.mock
}

// Set uses given function f to mock the store.SaveLedgers method
func (mmSaveLedgers *mLedgerStoreMockSaveLedgers) Set(f func(ctx context.Context, ledgers map[string]expense.Ledger) error) *LedgerStoreMock {
	mmSaveLedgers.fn = f
	return mmSaveLedgers.mock
}

// SaveLedgers implements ledger.store
func (mmSaveLedgers *LedgerStoreMock) SaveLedgers(ctx context.Context, ledgers map[string]expense.Ledger) error {
	atomic.AddUint64(&mmSaveLedgers.SaveLedgersMock.callCounter, 1)

	if mmSaveLedgers.SaveLedgersMock.fn != nil {
		return mmSaveLedgers.SaveLedgersMock.fn(ctx, ledgers)
	}
	if mmSaveLedgers.SaveLedgersMock.defaultResults != nil {
		return mmSaveLedgers.SaveLedgersMock.defaultResults.err
	}
	mmSaveLedgers.t.Fatalf("Unexpected call to LedgerStoreMock.SaveLedgers. %v %v", ctx, ledgers)
	return nil
}

// SaveLedgersBeforeCounter returns the number of SaveLedgers invocations
func (mmSaveLedgers *LedgerStoreMock) SaveLedgersBeforeCounter() uint64 {
	return atomic.LoadUint64(&mmSaveLedgers.SaveLedgersMock.callCounter)
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *LedgerStoreMock) MinimockFinish() {}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *LedgerStoreMock) MinimockWait(_ time.Duration) {}
