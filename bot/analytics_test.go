package bot

import (
	"context"
	"testing"
	"time"

	"jahbot/events"
	"jahbot/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsCollectorCountsActivity(t *testing.T) {
	store := settings.NewMemoryStore()
	bus := events.NewBus()
	collector := NewAnalyticsCollector(store, bus)
	ctx := context.Background()

	// Deliver directly to the handlers to avoid racing the async bus.
	collector.handleMessageObserved(ctx, events.MessageObservedEvent{UserID: "1"})
	collector.handleMessageObserved(ctx, events.MessageObservedEvent{UserID: "1"})
	collector.handleMessageObserved(ctx, events.MessageObservedEvent{UserID: "2"})
	collector.handleCommandExecuted(ctx, events.CommandExecutedEvent{Command: "ping", UserID: "1"})

	snapshot := collector.Snapshot()
	assert.Equal(t, 1, snapshot.CommandsUsed)
	assert.Equal(t, 2, snapshot.ActiveUsers)

	stored := store.GetAnalyticsSnapshots()
	require.Len(t, stored, 1)
	assert.Equal(t, snapshot.CommandsUsed, stored[0].CommandsUsed)
}

func TestAnalyticsCollectorResetsBetweenWindows(t *testing.T) {
	store := settings.NewMemoryStore()
	collector := NewAnalyticsCollector(store, events.NewBus())
	ctx := context.Background()

	collector.handleCommandExecuted(ctx, events.CommandExecutedEvent{Command: "ping"})
	collector.Snapshot()

	second := collector.Snapshot()
	assert.Zero(t, second.CommandsUsed)
	assert.Zero(t, second.ActiveUsers)
	assert.Len(t, store.GetAnalyticsSnapshots(), 2)
}

func TestAnalyticsCollectorUptime(t *testing.T) {
	store := settings.NewMemoryStore()
	collector := NewAnalyticsCollector(store, events.NewBus())

	base := collector.startedAt
	collector.now = func() time.Time { return base.Add(90 * time.Minute) }

	snapshot := collector.Snapshot()
	assert.Equal(t, int64(5400), snapshot.UptimeSeconds)
}

func TestAnalyticsWorkerStops(t *testing.T) {
	store := settings.NewMemoryStore()
	collector := NewAnalyticsCollector(store, events.NewBus())

	stop := collector.StartSnapshotWorker(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	stop()
	time.Sleep(20 * time.Millisecond)

	count := len(store.GetAnalyticsSnapshots())
	assert.Greater(t, count, 0)

	// No more snapshots after stopping.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, count, len(store.GetAnalyticsSnapshots()))
}
