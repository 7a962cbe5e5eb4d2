package music

import (
	"jahbot/domain/services"
	"jahbot/settings"
)

// Feature wires the player commands to the per-guild queue state.
type Feature struct {
	store   settings.Store
	service *services.MusicService
}

// New creates a new music feature instance
func New(store settings.Store, service *services.MusicService) *Feature {
	return &Feature{
		store:   store,
		service: service,
	}
}
