package general

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"jahbot/bot/common"
	"jahbot/settings"

	"github.com/bwmarrin/discordgo"
)

// categoryOrder fixes the listing order regardless of catalog order
var categoryOrder = []string{
	common.CategoryGeneral,
	common.CategoryEconomy,
	common.CategoryLevels,
	common.CategoryMusic,
	common.CategoryGames,
	common.CategoryModeration,
}

func groupByCategory(commands []settings.BotCommand) map[string][]settings.BotCommand {
	grouped := make(map[string][]settings.BotCommand)
	for _, command := range commands {
		grouped[command.Category] = append(grouped[command.Category], command)
	}
	return grouped
}

// buildHelpEmbed renders the grouped command listing as an embed.
func buildHelpEmbed(commands []settings.BotCommand, prefix string, helpSettings settings.HelpCommandSettings) *discordgo.MessageEmbed {
	grouped := groupByCategory(commands)

	var fields []*discordgo.MessageEmbedField
	for _, category := range categoryOrder {
		group := grouped[category]
		if len(group) == 0 {
			continue
		}
		names := make([]string, len(group))
		for i, command := range group {
			names[i] = fmt.Sprintf("`%s%s`", prefix, command.Name)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", common.CategoryEmoji[category], category),
			Value: strings.Join(names, " "),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Commands",
		Description: fmt.Sprintf("Use `%shelp <command>` for details.", prefix),
		Color:       parseHexColor(helpSettings.EmbedColor, common.ColorPrimary),
		Fields:      fields,
		Footer:      helpFooter(helpSettings),
	}
}

// buildHelpText renders the same listing as plain text for the text appearance.
func buildHelpText(commands []settings.BotCommand, prefix string, helpSettings settings.HelpCommandSettings) string {
	grouped := groupByCategory(commands)

	var b strings.Builder
	b.WriteString("**Commands**\n")
	for _, category := range categoryOrder {
		group := grouped[category]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s **%s**: ", common.CategoryEmoji[category], category)
		names := make([]string, len(group))
		for i, command := range group {
			names[i] = fmt.Sprintf("`%s%s`", prefix, command.Name)
		}
		b.WriteString(strings.Join(names, " "))
		b.WriteString("\n")
	}
	if helpSettings.FooterText != "" {
		b.WriteString(helpSettings.FooterText)
	}
	return b.String()
}

func buildCommandDetailEmbed(command settings.BotCommand, prefix string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s%s", prefix, command.Name),
		Description: command.Description,
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Category", Value: fmt.Sprintf("%s %s", common.CategoryEmoji[command.Category], command.Category), Inline: true},
		},
	}
}

func buildInfoEmbed(prefix string, guilds, commands int, uptime time.Duration) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Bot Info",
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Servers", Value: strconv.Itoa(guilds), Inline: true},
			{Name: "Commands", Value: strconv.Itoa(commands), Inline: true},
			{Name: "Prefix", Value: fmt.Sprintf("`%s`", prefix), Inline: true},
			{Name: "Uptime", Value: common.FormatDuration(uptime), Inline: true},
		},
	}
}

func helpFooter(helpSettings settings.HelpCommandSettings) *discordgo.MessageEmbedFooter {
	if helpSettings.FooterText == "" {
		return nil
	}
	return &discordgo.MessageEmbedFooter{Text: helpSettings.FooterText}
}

// parseHexColor converts "#5865F2" to its integer value, falling back when
// the configured string is malformed.
func parseHexColor(hex string, fallback int) int {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fallback
	}
	value, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return fallback
	}
	return int(value)
}
