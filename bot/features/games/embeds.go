package games

import (
	"fmt"

	"jahbot/bot/common"
	"jahbot/domain/entities"
	"jahbot/domain/services"

	"github.com/bwmarrin/discordgo"
)

func buildRoundStartEmbed(round entities.GameRound, timeLimitSeconds int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎮 Guess the Anime!",
		Description: "Type the exact title in this channel. First correct answer wins.",
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Difficulty", Value: round.Difficulty, Inline: true},
			{Name: "Reward", Value: common.FormatBalance(round.Reward), Inline: true},
			{Name: "Time limit", Value: fmt.Sprintf("%ds", timeLimitSeconds), Inline: true},
		},
	}
}

func buildWinEmbed(winnerID string, result *services.GuessResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🏆 Correct!",
		Description: fmt.Sprintf("%s guessed **%s** and won **%s**! New balance: **%s**",
			common.GetUserMention(winnerID),
			result.Round.Answer,
			common.FormatBalance(result.Reward),
			common.FormatBalance(result.NewBalance)),
		Color: common.ColorSuccess,
	}
}
