package services

import (
	"sync"
	"time"
)

// CooldownTracker enforces a minimum elapsed time between repeated actions by
// the same key. Each cooldown domain (XP accrual, daily claims, game starts)
// owns its own tracker. The window is passed per call because settings are
// re-read live on every command.
type CooldownTracker struct {
	mu   sync.Mutex
	last map[string]time.Time
	now  func() time.Time
}

// NewCooldownTracker creates an empty tracker.
func NewCooldownTracker() *CooldownTracker {
	return &CooldownTracker{
		last: make(map[string]time.Time),
		now:  time.Now,
	}
}

// TryAcquire checks the cooldown and, if clear, stamps the key in the same
// critical section. The check and the stamp never have a suspension point
// between them, so concurrent duplicate invocations cannot both pass.
// When the key is still cooling down it returns the remaining wait and false.
func (c *CooldownTracker) TryAcquire(key string, window time.Duration) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if last, ok := c.last[key]; ok {
		elapsed := now.Sub(last)
		if elapsed < window {
			return window - elapsed, false
		}
	}
	c.last[key] = now
	return 0, true
}

// Remaining reports the wait left for a key without stamping it.
func (c *CooldownTracker) Remaining(key string, window time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.last[key]
	if !ok {
		return 0
	}
	remaining := window - c.now().Sub(last)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clear removes a key, ending its cooldown early.
func (c *CooldownTracker) Clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.last, key)
}
