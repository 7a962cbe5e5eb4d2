package levels

import (
	"bytes"
	"context"
	"fmt"

	"jahbot/bot/common"
	"jahbot/settings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleMessage is the passive XP listener, called for every guild message.
// On a level-up it routes the notification and grants any due role rewards.
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	result := f.service.RecordMessage(context.Background(), m.Author.ID, m.Author.Username)
	if !result.LeveledUp() {
		return
	}

	f.notifyLevelUp(s, m, result.NewLevel)
	f.grantRoleRewards(s, m, result.OldLevel, result.NewLevel)
}

// notifyLevelUp delivers the level-up announcement per the configured
// notification type. A failed DM falls back to the channel so the
// announcement is never lost.
func (f *Feature) notifyLevelUp(s *discordgo.Session, m *discordgo.MessageCreate, newLevel int) {
	message := fmt.Sprintf("🎉 %s leveled up to **level %d**!", common.GetUserMention(m.Author.ID), newLevel)

	notificationType := f.store.GetLevelSettings().NotificationType
	toChannel := notificationType == "channel" || notificationType == "both"
	toDM := notificationType == "dm" || notificationType == "both"

	if toDM {
		if err := f.sendDM(s, m.Author.ID, message); err != nil {
			log.WithFields(log.Fields{
				"user_id": m.Author.ID,
				"error":   err,
			}).Warn("Level-up DM failed, falling back to channel")
			toChannel = true
		}
	}
	if toChannel {
		if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
			log.Errorf("Error sending level-up announcement: %v", err)
		}
	}
}

func (f *Feature) sendDM(s *discordgo.Session, userID, message string) error {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSend(channel.ID, message)
	return err
}

// grantRoleRewards assigns the roles configured for every level crossed by
// this award. Granting an already-held role is skipped.
func (f *Feature) grantRoleRewards(s *discordgo.Session, m *discordgo.MessageCreate, oldLevel, newLevel int) {
	if !f.store.GetLevelSettings().EnableRoleRewards {
		return
	}

	for _, reward := range f.store.GetLevelRewards() {
		if reward.Level <= oldLevel || reward.Level > newLevel {
			continue
		}
		role, found := common.FindRoleByName(s, m.GuildID, reward.RoleName)
		if !found {
			log.WithFields(log.Fields{
				"guild_id":  m.GuildID,
				"role_name": reward.RoleName,
			}).Warn("Level reward role does not exist in guild")
			continue
		}
		if common.UserHasRole(s, m.GuildID, m.Author.ID, reward.RoleName) {
			continue
		}
		if err := s.GuildMemberRoleAdd(m.GuildID, m.Author.ID, role.ID); err != nil {
			log.Errorf("Error granting level reward role %s: %v", reward.RoleName, err)
			continue
		}
		log.WithFields(log.Fields{
			"user_id":   m.Author.ID,
			"role_name": reward.RoleName,
			"level":     reward.Level,
		}).Info("Granted level reward role")
	}
}

// HandleLevel shows the caller's (or a mentioned user's) level card.
func (f *Feature) HandleLevel(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	targetID := m.Author.ID
	if len(args) > 0 {
		if id, ok := common.ParseUserMention(args[0]); ok {
			targetID = id
		}
	}

	displayName := common.GetDisplayName(s, m.GuildID, targetID)
	profile := f.service.Profile(targetID, displayName)
	progress := profile.Progress(f.store.GetLevelSettings().LevelMultiplier)
	rank := f.service.Rank(targetID)

	embed := buildLevelEmbed(displayName, progress, rank)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Errorf("Error responding to level command: %v", err)
	}
}

// HandleLeaderboard renders the XP ranking as an image.
func (f *Feature) HandleLeaderboard(s *discordgo.Session, m *discordgo.MessageCreate) {
	entries := f.service.Leaderboard(common.MaxLeaderboardRows)
	if len(entries) == 0 {
		if _, err := s.ChannelMessageSend(m.ChannelID, "No one has earned XP yet. Start chatting!"); err != nil {
			log.Errorf("Error responding to leaderboard command: %v", err)
		}
		return
	}

	image, err := f.generator.GenerateXPLeaderboard(entries, f.store.GetLevelSettings().LevelMultiplier)
	if err != nil {
		log.Errorf("Error generating leaderboard image: %v", err)
		common.ReplyWithError(s, m.ChannelID, "Couldn't render the leaderboard. Please try again.")
		return
	}

	if _, err := s.ChannelFileSend(m.ChannelID, "leaderboard.png", bytes.NewReader(image)); err != nil {
		log.Errorf("Error sending leaderboard image: %v", err)
	}
}

// HandleRewards lists the configured level role rewards.
func (f *Feature) HandleRewards(s *discordgo.Session, m *discordgo.MessageCreate) {
	message, embed := rewardsResponse(f.store.GetLevelSettings(), f.store.GetLevelRewards())
	if embed == nil {
		if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
			log.Errorf("Error responding to rewards command: %v", err)
		}
		return
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Errorf("Error sending rewards embed: %v", err)
	}
}

// rewardsResponse picks the rewards command reply: a notice when role rewards
// are switched off or none are configured, otherwise the rewards embed.
func rewardsResponse(levelSettings settings.LevelSettings, rewards []settings.LevelReward) (string, *discordgo.MessageEmbed) {
	if !levelSettings.EnableRoleRewards {
		return "Level rewards are currently disabled.", nil
	}
	if len(rewards) == 0 {
		return "No level rewards are configured.", nil
	}
	return "", buildRewardsEmbed(rewards, levelSettings.LevelMultiplier)
}
