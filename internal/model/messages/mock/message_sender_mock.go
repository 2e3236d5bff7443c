// Minimock-compatible mock, maintained by hand. The go:generate line below
// regenerates it with the full http://github.com/gojuno/minimock tool.

package mock

//go:generate minimock -i max.ks1230/expense-tracker/internal/model/messages.messageSender -o ./message_sender_mock.go

import (
	"reflect"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// MessageSenderMock implements messages.messageSender
type MessageSenderMock struct {
	t minimock.Tester

	SendMessageMock mMessageSenderMockSendMessage
}

// NewMessageSenderMock returns a mock for messages.messageSender
func NewMessageSenderMock(t minimock.Tester) *MessageSenderMock {
	m := &MessageSenderMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.SendMessageMock = mMessageSenderMockSendMessage{mock: m}

	return m
}

type mMessageSenderMockSendMessage struct {
	mock           *MessageSenderMock
	expectedParams *MessageSenderMockSendMessageParams
	defaultResults *MessageSenderMockSendMessageResults
	fn             func(text string, userID int64) error
	callCounter    uint64
}

// MessageSenderMockSendMessageParams contains parameters of the messageSender.SendMessage
type MessageSenderMockSendMessageParams struct {
	text   string
	userID int64
}

// MessageSenderMockSendMessageResults contains results of the messageSender.SendMessage
type MessageSenderMockSendMessageResults struct {
	err error
}

// Expect sets up expected params for messageSender.SendMessage
func (mmSendMessage *mMessageSenderMockSendMessage) Expect(text string, userID int64) *mMessageSenderMockSendMessage {
	mmSendMessage.expectedParams = &MessageSenderMockSendMessageParams{text, userID}
	return mmSendMessage
}

// Return sets up results of messageSender.SendMessage invocation
func (mmSendMessage *mMessageSenderMockSendMessage) Return(err error) *MessageSenderMock {
	mmSendMessage.defaultResults = &MessageSenderMockSendMessageResults{err}
	return mmSendMessage.mock
}

// Set uses given function f to mock the messageSender.SendMessage method
func (mmSendMessage *mMessageSenderMockSendMessage) Set(f func(text string, userID int64) error) *MessageSenderMock {
	mmSendMessage.fn = f
	return mmSendMessage.mock
}

// SendMessage implements messages.messageSender
func (mmSendMessage *MessageSenderMock) SendMessage(text string, userID int64) error {
	atomic.AddUint64(&mmSendMessage.SendMessageMock.callCounter, 1)

	if mmSendMessage.SendMessageMock.expectedParams != nil {
		got := MessageSenderMockSendMessageParams{text, userID}
		want := *mmSendMessage.SendMessageMock.expectedParams
		if !reflect.DeepEqual(want, got) {
			mmSendMessage.t.Errorf("MessageSenderMock.SendMessage got unexpected parameters, want: %#v, got: %#v", want, got)
		}
	}
	if mmSendMessage.SendMessageMock.fn != nil {
		return mmSendMessage.SendMessageMock.fn(text, userID)
	}
	if mmSendMessage.SendMessageMock.defaultResults != nil {
		return mmSendMessage.SendMessageMock.defaultResults.err
	}
	mmSendMessage.t.Fatalf("Unexpected call to MessageSenderMock.SendMessage. %v %v", text, userID)
	return nil
}

// SendMessageBeforeCounter returns the number of SendMessage invocations
func (mmSendMessage *MessageSenderMock) SendMessageBeforeCounter() uint64 {
	return atomic.LoadUint64(&mmSendMessage.SendMessageMock.callCounter)
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *MessageSenderMock) MinimockFinish() {
	if m.SendMessageMock.expectedParams != nil && atomic.LoadUint64(&m.SendMessageMock.callCounter) == 0 {
		m.t.Errorf("Expected call to MessageSenderMock.SendMessage with params: %#v", *m.SendMessageMock.expectedParams)
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *MessageSenderMock) MinimockWait(_ time.Duration) {}
