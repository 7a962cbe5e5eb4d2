package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownTrackerTryAcquire(t *testing.T) {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewCooldownTracker()
	tracker.now = func() time.Time { return current }

	// First acquire always succeeds.
	remaining, ok := tracker.TryAcquire("user1", time.Minute)
	assert.True(t, ok)
	assert.Zero(t, remaining)

	// Second acquire inside the window fails with the remaining wait.
	current = current.Add(20 * time.Second)
	remaining, ok = tracker.TryAcquire("user1", time.Minute)
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, remaining)

	// A failed acquire must not refresh the stamp.
	current = current.Add(40 * time.Second)
	_, ok = tracker.TryAcquire("user1", time.Minute)
	assert.True(t, ok)
}

func TestCooldownTrackerKeysAreIndependent(t *testing.T) {
	tracker := NewCooldownTracker()

	_, ok := tracker.TryAcquire("user1", time.Hour)
	assert.True(t, ok)

	_, ok = tracker.TryAcquire("user2", time.Hour)
	assert.True(t, ok)

	_, ok = tracker.TryAcquire("user1", time.Hour)
	assert.False(t, ok)
}

func TestCooldownTrackerRemaining(t *testing.T) {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewCooldownTracker()
	tracker.now = func() time.Time { return current }

	assert.Zero(t, tracker.Remaining("user1", time.Minute))

	tracker.TryAcquire("user1", time.Minute)
	current = current.Add(15 * time.Second)
	assert.Equal(t, 45*time.Second, tracker.Remaining("user1", time.Minute))

	current = current.Add(2 * time.Minute)
	assert.Zero(t, tracker.Remaining("user1", time.Minute))
}

func TestCooldownTrackerClear(t *testing.T) {
	tracker := NewCooldownTracker()

	tracker.TryAcquire("user1", time.Hour)
	tracker.Clear("user1")

	_, ok := tracker.TryAcquire("user1", time.Hour)
	assert.True(t, ok)
}

func TestCooldownTrackerConcurrentAcquire(t *testing.T) {
	// Many goroutines racing on the same key must produce exactly one winner.
	tracker := NewCooldownTracker()

	const goroutines = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := tracker.TryAcquire("user1", time.Hour); ok {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}
