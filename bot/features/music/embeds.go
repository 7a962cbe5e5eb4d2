package music

import (
	"fmt"
	"strings"

	"jahbot/bot/common"
	"jahbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// buildQueueEmbed renders the queue: the current song plus the next entries.
func buildQueueEmbed(queue entities.MusicQueue) *discordgo.MessageEmbed {
	var b strings.Builder

	if current, ok := queue.NowPlaying(); ok {
		state := "▶️"
		if !queue.Playing {
			state = "⏸️"
		}
		fmt.Fprintf(&b, "%s **%s** (requested by %s)\n", state, current.Title, common.GetUserMention(current.RequestedBy))
	}

	upcoming := queue.Songs
	if len(upcoming) > 1 {
		b.WriteString("\n**Up next**\n")
		shown := upcoming[1:]
		if len(shown) > common.MaxQueueRowsShown {
			shown = shown[:common.MaxQueueRowsShown]
		}
		for i, item := range shown {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item.Title)
		}
		if remaining := len(upcoming) - 1 - len(shown); remaining > 0 {
			fmt.Fprintf(&b, "…and %d more\n", remaining)
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "🎵 Queue",
		Description: b.String(),
		Color:       common.ColorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d song(s) · volume %d", queue.Len(), queue.Volume),
		},
	}
}
