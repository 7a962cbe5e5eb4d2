package economy

import (
	"jahbot/domain/services"
	"jahbot/settings"
)

// Feature wires the economy commands to the balance ledger.
type Feature struct {
	store   settings.Store
	service *services.EconomyService
}

// New creates a new economy feature instance
func New(store settings.Store, service *services.EconomyService) *Feature {
	return &Feature{
		store:   store,
		service: service,
	}
}
