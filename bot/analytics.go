package bot

import (
	"context"
	"sync"
	"time"

	"jahbot/events"
	"jahbot/settings"

	log "github.com/sirupsen/logrus"
)

// AnalyticsCollector counts command and chat activity from the event bus and
// periodically writes a usage snapshot to the settings store. Counters reset
// after every snapshot so each sample covers one window.
type AnalyticsCollector struct {
	mu           sync.Mutex
	commandsUsed int
	activeUsers  map[string]struct{}

	store     settings.Store
	startedAt time.Time
	now       func() time.Time
}

// NewAnalyticsCollector creates a collector and subscribes it to the bus.
func NewAnalyticsCollector(store settings.Store, bus *events.Bus) *AnalyticsCollector {
	collector := &AnalyticsCollector{
		activeUsers: make(map[string]struct{}),
		store:       store,
		startedAt:   time.Now(),
		now:         time.Now,
	}
	bus.Subscribe(events.EventTypeMessageObserved, collector.handleMessageObserved)
	bus.Subscribe(events.EventTypeCommandExecuted, collector.handleCommandExecuted)
	return collector
}

func (c *AnalyticsCollector) handleMessageObserved(ctx context.Context, event events.Event) {
	observed, ok := event.(events.MessageObservedEvent)
	if !ok {
		return
	}
	c.mu.Lock()
	c.activeUsers[observed.UserID] = struct{}{}
	c.mu.Unlock()
}

func (c *AnalyticsCollector) handleCommandExecuted(ctx context.Context, event events.Event) {
	if _, ok := event.(events.CommandExecutedEvent); !ok {
		return
	}
	c.mu.Lock()
	c.commandsUsed++
	c.mu.Unlock()
}

// Snapshot writes the current window's sample to the store and resets the
// counters.
func (c *AnalyticsCollector) Snapshot() settings.AnalyticsSnapshot {
	c.mu.Lock()
	snapshot := settings.AnalyticsSnapshot{
		Timestamp:     c.now(),
		CommandsUsed:  c.commandsUsed,
		ActiveUsers:   len(c.activeUsers),
		UptimeSeconds: int64(c.now().Sub(c.startedAt).Seconds()),
	}
	c.commandsUsed = 0
	c.activeUsers = make(map[string]struct{})
	c.mu.Unlock()

	c.store.CreateAnalyticsSnapshot(snapshot)
	return snapshot
}

// StartSnapshotWorker starts a background worker sampling usage on the given
// interval. Returns a cleanup function to stop the worker gracefully
func (c *AnalyticsCollector) StartSnapshotWorker(ctx context.Context, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	stopChan := make(chan struct{})

	go func() {
		log.Info("Analytics snapshot worker started")

		for {
			select {
			case <-ctx.Done():
				log.Info("Analytics snapshot worker shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Analytics snapshot worker shutting down (stop requested)...")
				return
			case <-ticker.C:
				snapshot := c.Snapshot()
				log.WithFields(log.Fields{
					"commands_used": snapshot.CommandsUsed,
					"active_users":  snapshot.ActiveUsers,
				}).Debug("Recorded analytics snapshot")
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(stopChan)
	}
}
