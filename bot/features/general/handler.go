package general

import (
	"fmt"
	"strings"
	"time"

	"jahbot/bot/common"
	"jahbot/settings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleHelp serves the command listing, or the detail view when a command
// name is passed. Only commands whose category feature is enabled are shown.
func (f *Feature) HandleHelp(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	commands := f.visibleCommands()

	if len(args) > 0 {
		f.replyCommandDetail(s, m, commands, strings.ToLower(args[0]))
		return
	}

	helpSettings := f.store.GetHelpCommandSettings()
	prefix := f.store.GetBotConfig().Prefix

	if helpSettings.Appearance == "text" {
		if _, err := s.ChannelMessageSend(m.ChannelID, buildHelpText(commands, prefix, helpSettings)); err != nil {
			log.Errorf("Error sending help text: %v", err)
		}
		return
	}

	embed := buildHelpEmbed(commands, prefix, helpSettings)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Errorf("Error sending help embed: %v", err)
	}
}

func (f *Feature) replyCommandDetail(s *discordgo.Session, m *discordgo.MessageCreate, commands []settings.BotCommand, name string) {
	for _, command := range commands {
		if command.Name == name {
			prefix := f.store.GetBotConfig().Prefix
			embed := buildCommandDetailEmbed(command, prefix)
			if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
				log.Errorf("Error sending command detail embed: %v", err)
			}
			return
		}
	}
	common.ReplyWithError(s, m.ChannelID, fmt.Sprintf("No command named `%s`.", name))
}

// HandlePing reports the websocket heartbeat latency.
func (f *Feature) HandlePing(s *discordgo.Session, m *discordgo.MessageCreate) {
	latency := s.HeartbeatLatency().Round(time.Millisecond)
	message := fmt.Sprintf("🏓 Pong! Latency: **%dms**", latency.Milliseconds())
	if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
		log.Errorf("Error responding to ping command: %v", err)
	}
}

// HandleInfo shows bot statistics: servers, uptime, prefix.
func (f *Feature) HandleInfo(s *discordgo.Session, m *discordgo.MessageCreate) {
	embed := buildInfoEmbed(
		f.store.GetBotConfig().Prefix,
		len(s.State.Guilds),
		len(f.visibleCommands()),
		time.Since(f.startedAt),
	)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Errorf("Error responding to info command: %v", err)
	}
}

// HandleUnclaimed answers a command that exists in the catalog but has no
// engine behind it. Commands of a disabled category stay silent, matching the
// help listing.
func (f *Feature) HandleUnclaimed(s *discordgo.Session, m *discordgo.MessageCreate, command string) {
	for _, known := range f.visibleCommands() {
		if known.Name == command {
			message := fmt.Sprintf("The `%s` command isn't available yet.", command)
			if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
				log.Errorf("Error replying to unclaimed command: %v", err)
			}
			return
		}
	}
	log.WithFields(log.Fields{
		"command": command,
		"user_id": m.Author.ID,
	}).Debug("Ignoring unknown command")
}

// visibleCommands filters the catalog down to enabled commands whose category
// feature is switched on.
func (f *Feature) visibleCommands() []settings.BotCommand {
	features := f.store.GetFeatureSettings()
	enabled := map[string]bool{
		common.CategoryGeneral:    true,
		common.CategoryEconomy:    features.EconomyEnabled,
		common.CategoryLevels:     features.LevelSystemEnabled,
		common.CategoryMusic:      features.MusicPlayerEnabled,
		common.CategoryGames:      features.MiniGamesEnabled,
		common.CategoryModeration: features.ModerationEnabled,
	}

	var visible []settings.BotCommand
	for _, command := range f.store.GetBotCommands() {
		if command.IsEnabled && enabled[command.Category] {
			visible = append(visible, command)
		}
	}
	return visible
}
