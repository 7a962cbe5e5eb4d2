package economy

import (
	"fmt"

	"jahbot/bot/common"
	"jahbot/settings"

	"github.com/bwmarrin/discordgo"
)

// buildShopEmbed renders the item shop listing.
func buildShopEmbed(items []settings.ShopItem, economySettings settings.EconomySettings, prefix string) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, len(items))
	for i, item := range items {
		description := item.Description
		if description == "" {
			description = "No description."
		}
		fields[i] = &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s · %s %s", item.Name,
				common.FormatBalance(item.Price), economySettings.CurrencyName),
			Value: description,
		}
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Shop", economySettings.CurrencySymbol),
		Description: fmt.Sprintf("Buy with `%sbuy <item name>`.", prefix),
		Color:       common.ColorWarning,
		Fields:      fields,
	}
}
