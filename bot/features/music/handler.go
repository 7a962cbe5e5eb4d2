package music

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"jahbot/bot/common"
	"jahbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandlePlay queues a song: play <title or url>
func (f *Feature) HandlePlay(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	prefix := f.store.GetBotConfig().Prefix
	if len(args) == 0 {
		common.ReplyWithError(s, m.ChannelID, fmt.Sprintf("Usage: `%splay <song>`", prefix))
		return
	}

	voiceChannelID := f.userVoiceChannel(s, m.GuildID, m.Author.ID)
	title := strings.Join(args, " ")

	result, err := f.service.Play(m.GuildID, m.ChannelID, voiceChannelID, m.Author.ID, title)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotInVoiceChannel):
			f.replyVoiceRequired(s, m)
		case errors.Is(err, services.ErrQueueFull):
			common.ReplyWithError(s, m.ChannelID, "The queue is full.")
		default:
			common.HandleError(s, m, "play", err)
		}
		return
	}

	var message string
	if result.StartedPlayback {
		message = fmt.Sprintf("🎵 Now playing: **%s**", result.Item.Title)
	} else {
		message = fmt.Sprintf("➕ Queued **%s** at position %d", result.Item.Title, result.Position)
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
		log.Errorf("Error responding to play command: %v", err)
	}
}

// HandleSkip drops the current song. Honors the DJ restriction when enabled.
func (f *Feature) HandleSkip(s *discordgo.Session, m *discordgo.MessageCreate) {
	if f.store.GetMusicSettings().RestrictSkipCommand && !f.isDJ(s, m) {
		f.replyDJRequired(s, m)
		return
	}

	next, hasNext, err := f.service.Skip(m.GuildID, f.userVoiceChannel(s, m.GuildID, m.Author.ID))
	if err != nil {
		if errors.Is(err, services.ErrNotInVoiceChannel) {
			f.replyVoiceRequired(s, m)
			return
		}
		common.ReplyWithError(s, m.ChannelID, "Nothing is playing.")
		return
	}

	message := "⏭️ Skipped. The queue is now empty."
	if hasNext {
		message = fmt.Sprintf("⏭️ Skipped. Now playing: **%s**", next.Title)
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
		log.Errorf("Error responding to skip command: %v", err)
	}
}

// HandleStop clears the queue.
func (f *Feature) HandleStop(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := f.service.Stop(m.GuildID, f.userVoiceChannel(s, m.GuildID, m.Author.ID)); err != nil {
		if errors.Is(err, services.ErrNotInVoiceChannel) {
			f.replyVoiceRequired(s, m)
			return
		}
		common.ReplyWithError(s, m.ChannelID, "Nothing is playing.")
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, "⏹️ Stopped playback and cleared the queue."); err != nil {
		log.Errorf("Error responding to stop command: %v", err)
	}
}

// HandleQueue shows the queued songs.
func (f *Feature) HandleQueue(s *discordgo.Session, m *discordgo.MessageCreate) {
	queue, err := f.service.Queue(m.GuildID)
	if err != nil {
		common.ReplyWithError(s, m.ChannelID, "The queue is empty.")
		return
	}

	embed := buildQueueEmbed(queue)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Errorf("Error sending queue embed: %v", err)
	}
}

// HandlePause pauses playback.
func (f *Feature) HandlePause(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := f.service.Pause(m.GuildID, f.userVoiceChannel(s, m.GuildID, m.Author.ID)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotInVoiceChannel):
			f.replyVoiceRequired(s, m)
		case errors.Is(err, services.ErrAlreadyPaused):
			common.ReplyWithError(s, m.ChannelID, "Playback is already paused.")
		default:
			common.ReplyWithError(s, m.ChannelID, "Nothing is playing.")
		}
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, "⏸️ Paused."); err != nil {
		log.Errorf("Error responding to pause command: %v", err)
	}
}

// HandleResume resumes paused playback.
func (f *Feature) HandleResume(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := f.service.Resume(m.GuildID, f.userVoiceChannel(s, m.GuildID, m.Author.ID)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotInVoiceChannel):
			f.replyVoiceRequired(s, m)
		case errors.Is(err, services.ErrAlreadyPlaying):
			common.ReplyWithError(s, m.ChannelID, "Playback isn't paused.")
		default:
			common.ReplyWithError(s, m.ChannelID, "Nothing is playing.")
		}
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, "▶️ Resumed."); err != nil {
		log.Errorf("Error responding to resume command: %v", err)
	}
}

// HandleVolume shows or changes the volume: volume [0-100]
func (f *Feature) HandleVolume(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	voiceChannelID := f.userVoiceChannel(s, m.GuildID, m.Author.ID)
	if voiceChannelID == "" {
		f.replyVoiceRequired(s, m)
		return
	}

	if len(args) == 0 {
		queue, err := f.service.Queue(m.GuildID)
		if err != nil {
			common.ReplyWithError(s, m.ChannelID, "Nothing is playing.")
			return
		}
		if _, err := s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("🔊 Volume: **%d**", queue.Volume)); err != nil {
			log.Errorf("Error responding to volume command: %v", err)
		}
		return
	}

	if f.store.GetMusicSettings().RestrictVolumeCommand && !f.isDJ(s, m) {
		f.replyDJRequired(s, m)
		return
	}

	volume, err := strconv.Atoi(args[0])
	if err != nil {
		common.ReplyWithError(s, m.ChannelID, "The volume must be a number between 0 and 100.")
		return
	}

	if err := f.service.SetVolume(m.GuildID, voiceChannelID, volume); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidVolume):
			common.ReplyWithError(s, m.ChannelID, "The volume must be between 0 and 100.")
		default:
			common.ReplyWithError(s, m.ChannelID, "Nothing is playing.")
		}
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("🔊 Volume set to **%d**", volume)); err != nil {
		log.Errorf("Error responding to volume command: %v", err)
	}
}

func (f *Feature) isDJ(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	return common.UserHasRole(s, m.GuildID, m.Author.ID, f.store.GetMusicSettings().DJRoleName)
}

func (f *Feature) replyDJRequired(s *discordgo.Session, m *discordgo.MessageCreate) {
	common.ReplyWithError(s, m.ChannelID, fmt.Sprintf(
		"You need the **%s** role to do that.", f.store.GetMusicSettings().DJRoleName))
}

func (f *Feature) replyVoiceRequired(s *discordgo.Session, m *discordgo.MessageCreate) {
	common.ReplyWithError(s, m.ChannelID, "You need to be in a voice channel to do that.")
}

// userVoiceChannel returns the voice channel the user currently sits in, or
// an empty string when they are not connected.
func (f *Feature) userVoiceChannel(s *discordgo.Session, guildID, userID string) string {
	voiceState, err := s.State.VoiceState(guildID, userID)
	if err != nil || voiceState == nil {
		return ""
	}
	return voiceState.ChannelID
}
