package games

import (
	"jahbot/domain/services"
	"jahbot/settings"

	"github.com/bwmarrin/discordgo"
)

// Feature wires the guessing game: the start command, the passive guess
// listener and the timeout announcements.
type Feature struct {
	session *discordgo.Session
	store   settings.Store
	service *services.GameService
}

// New creates a new games feature instance
func New(session *discordgo.Session, store settings.Store, service *services.GameService) *Feature {
	return &Feature{
		session: session,
		store:   store,
		service: service,
	}
}
