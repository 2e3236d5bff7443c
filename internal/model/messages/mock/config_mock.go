// Minimock-compatible mock, maintained by hand. The go:generate line below
// regenerates it with the full http://github.com/gojuno/minimock tool.

package mock

//go:generate minimock -i max.ks1230/expense-tracker/internal/model/messages.config -o ./config_mock.go

import (
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ConfigMock implements messages.config
type ConfigMock struct {
	t minimock.Tester

	ListLimitMock mConfigMockListLimit
}

// NewConfigMock returns a mock for messages.config
func NewConfigMock(t minimock.Tester) *ConfigMock {
	m := &ConfigMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.ListLimitMock = mConfigMockListLimit{mock: m}

	return m
}

type mConfigMockListLimit struct {
	mock           *ConfigMock
	defaultResults *ConfigMockListLimitResults
	callCounter    uint64
}

// ConfigMockListLimitResults contains results of the config.ListLimit
type ConfigMockListLimitResults struct {
	i1 int
}

// Return sets up results of config.ListLimit invocation
func (mmListLimit *mConfigMockListLimit) Return(i1 int) *ConfigMock {
	mmListLimit.defaultResults = &ConfigMockListLimitResults{i1}
	return mmListLimit.mock
}

// ListLimit implements messages.config
func (mmListLimit *ConfigMock) ListLimit() int {
	atomic.AddUint64(&mmListLimit.ListLimitMock.callCounter, 1)

	if mmListLimit.ListLimitMock.defaultResults != nil {
		return mmListLimit.ListLimitMock.defaultResults.i1
	}
	mmListLimit.t.Fatalf("Unexpected call to ConfigMock.ListLimit.")
	return 0
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ConfigMock) MinimockFinish() {}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ConfigMock) MinimockWait(_ time.Duration) {}
