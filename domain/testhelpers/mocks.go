package testhelpers

import (
	"context"
	"sync"

	"jahbot/events"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of events.Publisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}

// MockRewardLedger is a mock implementation of services.RewardLedger
type MockRewardLedger struct {
	mock.Mock
}

func (m *MockRewardLedger) Deposit(ctx context.Context, userID, displayName string, amount int64, txType events.TransactionType) int64 {
	args := m.Called(ctx, userID, displayName, amount, txType)
	return args.Get(0).(int64)
}

// EventRecorder is an events.Publisher that captures everything published to
// it, for tests that assert on event contents rather than call counts.
type EventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *EventRecorder) Publish(ctx context.Context, event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a snapshot of everything published so far.
func (r *EventRecorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

// EventsOfType returns the captured events matching the given type.
func (r *EventRecorder) EventsOfType(eventType events.EventType) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []events.Event
	for _, event := range r.events {
		if event.Type() == eventType {
			matched = append(matched, event)
		}
	}
	return matched
}
