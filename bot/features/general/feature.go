package general

import (
	"time"

	"jahbot/settings"
)

// Feature serves the catalog commands: help, ping and info. It also owns the
// reply for commands that are known to the catalog but not backed by an
// engine yet.
type Feature struct {
	store     settings.Store
	startedAt time.Time
}

// New creates a new general feature instance
func New(store settings.Store) *Feature {
	return &Feature{
		store:     store,
		startedAt: time.Now(),
	}
}
