package levels

import (
	"fmt"
	"strings"

	"jahbot/bot/common"
	"jahbot/domain/entities"
	"jahbot/settings"

	"github.com/bwmarrin/discordgo"
)

const progressBarWidth = 12

// progressBar renders a text progress bar like ▰▰▰▱▱ for embed display.
func progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * progressBarWidth / 100

	var b strings.Builder
	for i := 0; i < progressBarWidth; i++ {
		if i < filled {
			b.WriteRune('▰')
		} else {
			b.WriteRune('▱')
		}
	}
	return b.String()
}

func buildLevelEmbed(displayName string, progress entities.LevelProgress, rank int) *discordgo.MessageEmbed {
	rankValue := "unranked"
	if rank > 0 {
		rankValue = fmt.Sprintf("#%d", rank)
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📈 %s", displayName),
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", progress.Level), Inline: true},
			{Name: "Rank", Value: rankValue, Inline: true},
			{Name: "XP", Value: common.FormatBalance(progress.XP), Inline: true},
			{
				Name: "Progress",
				Value: fmt.Sprintf("%s %d%% (%s XP to level %d)",
					progressBar(progress.Percent),
					progress.Percent,
					common.FormatBalance(progress.XPToNext),
					progress.Level+1),
			},
		},
	}
}

func buildRewardsEmbed(rewards []settings.LevelReward, multiplier int) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, len(rewards))
	for i, reward := range rewards {
		fields[i] = &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("Level %d", reward.Level),
			Value: fmt.Sprintf("@%s (%s XP)", reward.RoleName,
				common.FormatBalance(entities.XPForLevel(reward.Level, multiplier))),
			Inline: true,
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "Level Rewards",
		Description: "Roles granted automatically as you level up.",
		Color:       common.ColorSuccess,
		Fields:      fields,
	}
}
