package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	received := make(chan BalanceChangeEvent, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		defer wg.Done()
		balanceEvent, ok := event.(BalanceChangeEvent)
		require.True(t, ok, "expected BalanceChangeEvent, got %T", event)
		received <- balanceEvent
	})

	bus.Publish(context.Background(), BalanceChangeEvent{
		UserID:          "123",
		OldBalance:      100,
		NewBalance:      150,
		ChangeAmount:    50,
		TransactionType: TransactionTypeDailyClaim,
	})

	wg.Wait()

	select {
	case event := <-received:
		assert.Equal(t, "123", event.UserID)
		assert.Equal(t, int64(150), event.NewBalance)
		assert.Equal(t, TransactionTypeDailyClaim, event.TransactionType)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event delivery")
	}
}

func TestBusIgnoresUnsubscribedTypes(t *testing.T) {
	bus := NewBus()

	var count int
	var mu sync.Mutex
	bus.Subscribe(EventTypeLevelUp, func(ctx context.Context, event Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	bus.Publish(context.Background(), CommandExecutedEvent{Command: "ping"})

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, count)
}

func TestBusRecoversFromPanickingHandler(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeLevelUp, func(ctx context.Context, event Event) {
		panic("handler failure")
	})
	bus.Subscribe(EventTypeLevelUp, func(ctx context.Context, event Event) {
		wg.Done()
	})

	bus.Publish(context.Background(), LevelUpEvent{UserID: "1", NewLevel: 2})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("healthy handler was not invoked after sibling panic")
	}
}
