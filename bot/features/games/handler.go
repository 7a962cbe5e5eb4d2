package games

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jahbot/bot/common"
	"jahbot/domain/services"
	"jahbot/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleStart begins a round in the channel the command came from. An
// optional first argument overrides the configured difficulty.
func (f *Feature) HandleStart(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	channelName, err := f.channelName(s, m.ChannelID)
	if err != nil {
		common.HandleError(s, m, "anime", common.NewSystemError(err, "failed to resolve channel name"))
		return
	}

	difficulty := ""
	if len(args) > 0 {
		difficulty = args[0]
	}

	round, err := f.service.StartRound(context.Background(), m.Author.ID, m.ChannelID, channelName, m.GuildID, difficulty)
	if err != nil {
		f.replyStartError(s, m, err)
		return
	}

	gameSettings := f.store.GetAnimeGameSettings()
	embed := buildRoundStartEmbed(round, gameSettings.TimeLimitSeconds)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Errorf("Error announcing game round: %v", err)
	}
}

func (f *Feature) replyStartError(s *discordgo.Session, m *discordgo.MessageCreate, err error) {
	switch {
	case errors.Is(err, services.ErrChannelNotAllowed):
		channels := f.store.GetAnimeGameSettings().Channels
		common.ReplyWithError(s, m.ChannelID, fmt.Sprintf(
			"The game can only be played in: %s", formatChannelList(channels)))
	case errors.Is(err, services.ErrRoundAlreadyActive):
		common.ReplyWithError(s, m.ChannelID, "A round is already running in this channel. Guess away!")
	case errors.Is(err, services.ErrNoEntries):
		common.ReplyWithError(s, m.ChannelID, "The game has no titles configured yet.")
	default:
		if cooldownErr, ok := services.AsCooldownError(err); ok {
			common.ReplyWithError(s, m.ChannelID, fmt.Sprintf(
				"You can start another round in **%s**.", common.FormatDuration(cooldownErr.Remaining)))
			return
		}
		common.HandleError(s, m, "anime", err)
	}
}

// HandleMessage is the passive guess listener for plain text messages.
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	result, won := f.service.SubmitGuess(context.Background(), m.Author.ID, m.Author.Username, m.ChannelID, m.Content)
	if !won {
		return
	}

	embed := buildWinEmbed(m.Author.ID, result)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Errorf("Error announcing game win: %v", err)
	}
}

// HandleRoundEnded announces expired rounds. Wins are announced synchronously
// by the guess path, so only the timeout outcome is handled here.
func (f *Feature) HandleRoundEnded(ctx context.Context, event events.Event) {
	ended, ok := event.(events.RoundEndedEvent)
	if !ok || ended.Outcome != "expired" {
		return
	}

	message := fmt.Sprintf("⏰ Time's up! The answer was **%s**.", ended.Answer)
	if _, err := f.session.ChannelMessageSend(ended.ChannelID, message); err != nil {
		log.Errorf("Error announcing round timeout: %v", err)
	}
}

func (f *Feature) channelName(s *discordgo.Session, channelID string) (string, error) {
	if channel, err := s.State.Channel(channelID); err == nil {
		return channel.Name, nil
	}
	channel, err := s.Channel(channelID)
	if err != nil {
		return "", err
	}
	return channel.Name, nil
}

func formatChannelList(channels []string) string {
	if len(channels) == 0 {
		return "(no channels configured)"
	}
	quoted := make([]string, len(channels))
	for i, name := range channels {
		quoted[i] = "#" + name
	}
	return strings.Join(quoted, ", ")
}
