package economy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"jahbot/bot/common"
	"jahbot/domain/services"
	"jahbot/settings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleBalance replies with the caller's balance, or a mentioned user's:
// balance [@user]
func (f *Feature) HandleBalance(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !f.store.GetEconomySettings().BalanceCommandEnabled {
		return
	}

	targetID := resolveTargetUser(m.Author.ID, args)
	displayName := common.GetDisplayName(s, m.GuildID, targetID)
	account := f.service.Account(targetID, displayName)

	message := balanceMessage(f.store.GetEconomySettings(), displayName, targetID == m.Author.ID, account.Balance)
	if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

// resolveTargetUser picks the mentioned user when the first argument is a
// mention, otherwise the caller.
func resolveTargetUser(authorID string, args []string) string {
	if len(args) > 0 {
		if id, ok := common.ParseUserMention(args[0]); ok {
			return id
		}
	}
	return authorID
}

func balanceMessage(economySettings settings.EconomySettings, displayName string, self bool, balance int64) string {
	owner := fmt.Sprintf("%s, your", displayName)
	if !self {
		owner = fmt.Sprintf("%s's", displayName)
	}
	return fmt.Sprintf("%s %s balance: **%s %s**",
		economySettings.CurrencySymbol,
		owner,
		common.FormatBalance(balance),
		economySettings.CurrencyName)
}

// HandleDaily claims the daily bonus.
func (f *Feature) HandleDaily(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !f.store.GetEconomySettings().DailyCommandEnabled {
		return
	}

	result, err := f.service.ClaimDaily(context.Background(), m.Author.ID, m.Author.Username)
	if err != nil {
		if cooldownErr, ok := services.AsCooldownError(err); ok {
			common.ReplyWithError(s, m.ChannelID, fmt.Sprintf(
				"You already claimed today. Try again in **%s**.",
				common.FormatDuration(cooldownErr.Remaining)))
			return
		}
		common.HandleError(s, m, "daily", err)
		return
	}

	economySettings := f.store.GetEconomySettings()
	message := fmt.Sprintf("%s You claimed **%s %s**! New balance: **%s**",
		economySettings.CurrencySymbol,
		common.FormatBalance(result.Amount),
		economySettings.CurrencyName,
		common.FormatBalance(result.NewBalance))
	if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
		log.Errorf("Error responding to daily command: %v", err)
	}
}

// HandleTransfer moves coins to the mentioned user: transfer <@user> <amount>
func (f *Feature) HandleTransfer(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !f.store.GetEconomySettings().TransferCommandEnabled {
		return
	}

	prefix := f.store.GetBotConfig().Prefix
	if len(args) < 2 {
		common.ReplyWithError(s, m.ChannelID, fmt.Sprintf("Usage: `%stransfer @user <amount>`", prefix))
		return
	}

	targetID, ok := common.ParseUserMention(args[0])
	if !ok {
		common.ReplyWithError(s, m.ChannelID, "Please mention the user you want to send coins to.")
		return
	}

	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		common.ReplyWithError(s, m.ChannelID, "The amount must be a whole number.")
		return
	}

	targetName := common.GetDisplayName(s, m.GuildID, targetID)
	result, err := f.service.Transfer(context.Background(), m.Author.ID, m.Author.Username, targetID, targetName, amount)
	if err != nil {
		f.replyTransferError(s, m, err)
		return
	}

	economySettings := f.store.GetEconomySettings()
	message := fmt.Sprintf("✅ Sent **%s %s** to %s. Your balance: **%s**",
		common.FormatBalance(result.Amount),
		economySettings.CurrencyName,
		common.GetUserMention(targetID),
		common.FormatBalance(result.SenderBalance))
	if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
		log.Errorf("Error responding to transfer command: %v", err)
	}
}

func (f *Feature) replyTransferError(s *discordgo.Session, m *discordgo.MessageCreate, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidTarget):
		common.ReplyWithError(s, m.ChannelID, "You can't send coins to yourself.")
	case errors.Is(err, services.ErrInvalidAmount):
		common.ReplyWithError(s, m.ChannelID, "The amount must be greater than zero.")
	case errors.Is(err, services.ErrInsufficientFunds):
		common.ReplyWithError(s, m.ChannelID, "You don't have enough coins for that.")
	default:
		common.HandleError(s, m, "transfer", err)
	}
}

// HandleShop lists the purchasable items.
func (f *Feature) HandleShop(s *discordgo.Session, m *discordgo.MessageCreate) {
	items := f.store.GetShopItems()
	if len(items) == 0 {
		if _, err := s.ChannelMessageSend(m.ChannelID, "The shop is empty right now. Check back later!"); err != nil {
			log.Errorf("Error responding to shop command: %v", err)
		}
		return
	}

	embed := buildShopEmbed(items, f.store.GetEconomySettings(), f.store.GetBotConfig().Prefix)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Errorf("Error sending shop embed: %v", err)
	}
}

// HandleBuy purchases an item by name: buy <item name>
func (f *Feature) HandleBuy(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	prefix := f.store.GetBotConfig().Prefix
	if len(args) == 0 {
		common.ReplyWithError(s, m.ChannelID, fmt.Sprintf("Usage: `%sbuy <item name>`", prefix))
		return
	}

	itemName := strings.Join(args, " ")
	result, err := f.service.Purchase(context.Background(), m.Author.ID, m.Author.Username, itemName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			common.ReplyWithError(s, m.ChannelID, fmt.Sprintf("There is no `%s` in the shop. Try `%sshop`.", itemName, prefix))
		case errors.Is(err, services.ErrInsufficientFunds):
			common.ReplyWithError(s, m.ChannelID, "You don't have enough coins for that.")
		default:
			common.HandleError(s, m, "buy", err)
		}
		return
	}

	message := fmt.Sprintf("🛍️ You bought **%s** for **%s**. Balance: **%s**",
		result.Item.Name,
		common.FormatBalance(result.Item.Price),
		common.FormatBalance(result.NewBalance))
	if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
		log.Errorf("Error responding to buy command: %v", err)
	}
}

// HandleInventory replies with the caller's owned items. Purchases are not
// recorded anywhere yet, so the inventory is always empty.
func (f *Feature) HandleInventory(s *discordgo.Session, m *discordgo.MessageCreate) {
	message := fmt.Sprintf("%s, your inventory is empty.", common.GetDisplayName(s, m.GuildID, m.Author.ID))
	if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
		log.Errorf("Error responding to inventory command: %v", err)
	}
}
