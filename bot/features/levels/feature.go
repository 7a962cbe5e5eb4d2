package levels

import (
	"jahbot/domain/services"
	"jahbot/settings"
)

// Feature wires the leveling commands and the passive XP listener.
type Feature struct {
	store     settings.Store
	service   *services.LevelingService
	generator *LeaderboardImageGenerator
}

// New creates a new levels feature instance
func New(store settings.Store, service *services.LevelingService) *Feature {
	return &Feature{
		store:     store,
		service:   service,
		generator: NewLeaderboardImageGenerator(),
	}
}
