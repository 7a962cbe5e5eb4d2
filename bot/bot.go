package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"jahbot/bot/common"
	"jahbot/bot/features/economy"
	"jahbot/bot/features/games"
	"jahbot/bot/features/general"
	"jahbot/bot/features/levels"
	"jahbot/bot/features/music"
	"jahbot/domain/services"
	"jahbot/events"
	"jahbot/settings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token string
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config  Config
	session *discordgo.Session
	store   settings.Store
	bus     *events.Bus

	// Engines
	economyService  *services.EconomyService
	levelingService *services.LevelingService
	gameService     *services.GameService
	musicService    *services.MusicService

	// Feature modules
	general *general.Feature
	economy *economy.Feature
	levels  *levels.Feature
	games   *games.Feature
	music   *music.Feature

	// Worker cleanup functions
	stopAnalyticsWorker func()
}

// New creates a new bot instance with all features and opens the session
func New(config Config, store settings.Store, bus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsAll

	bot := &Bot{
		config:  config,
		session: dg,
		store:   store,
		bus:     bus,
	}

	// Create engines
	bot.economyService = services.NewEconomyService(store, bus)
	bot.levelingService = services.NewLevelingService(store, bus)
	bot.gameService = services.NewGameService(store, bot.economyService, bus)
	bot.musicService = services.NewMusicService(store)

	// Create feature modules
	bot.general = general.New(store)
	bot.economy = economy.New(store, bot.economyService)
	bot.levels = levels.New(store, bot.levelingService)
	bot.games = games.New(dg, store, bot.gameService)
	bot.music = music.New(store, bot.musicService)

	// Expired rounds are announced from the event bus; wins are announced
	// synchronously by the guess path.
	bus.Subscribe(events.EventTypeRoundEnded, bot.games.HandleRoundEnded)

	// Register handlers
	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleMessageCreate)
	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleGuildDelete)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Start background workers
	analytics := NewAnalyticsCollector(store, bus)
	bot.stopAnalyticsWorker = analytics.StartSnapshotWorker(context.Background(), time.Hour)
	log.Info("Background workers started")

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	if b.stopAnalyticsWorker != nil {
		b.stopAnalyticsWorker()
	}
	log.Info("Background workers stopped")

	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleReady applies the configured presence once the gateway is up
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	botConfig := b.store.GetBotConfig()
	if err := s.UpdateStatusComplex(presenceUpdate(botConfig)); err != nil {
		log.Errorf("Error setting presence: %v", err)
	}
	log.WithFields(log.Fields{
		"username": r.User.Username,
		"guilds":   len(r.Guilds),
	}).Info("Bot is ready")
}

// presenceUpdate maps the configured activity type onto a gateway status update
func presenceUpdate(botConfig settings.BotConfig) discordgo.UpdateStatusData {
	activityType := discordgo.ActivityTypeGame
	switch strings.ToUpper(botConfig.ActivityType) {
	case "WATCHING":
		activityType = discordgo.ActivityTypeWatching
	case "LISTENING":
		activityType = discordgo.ActivityTypeListening
	case "STREAMING":
		activityType = discordgo.ActivityTypeStreaming
	case "COMPETING":
		activityType = discordgo.ActivityTypeCompeting
	}

	return discordgo.UpdateStatusData{
		Status: string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{{
			Name: botConfig.ActivityText,
			Type: activityType,
		}},
	}
}

// handleMessageCreate is the single entry point for chat traffic. Every
// non-bot guild message feeds the XP engine; prefixed messages are routed to
// a command handler and plain text goes to the game guess listener.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		log.Debugf("Skipping message %s - not from a guild (possibly a DM)", m.ID)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"panic":      r,
				"message_id": m.ID,
				"stack":      string(debug.Stack()),
			}).Error("Recovered from panic in message handler")
			common.ReplyWithError(s, m.ChannelID, "Something went wrong. Please try again later.")
		}
	}()

	ctx := context.Background()
	b.bus.Publish(ctx, events.MessageObservedEvent{
		UserID:    m.Author.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
	})

	features := b.store.GetFeatureSettings()

	// XP accrues on every message, commands included.
	if features.LevelSystemEnabled {
		b.levels.HandleMessage(s, m)
	}

	inbound := ClassifyMessage(m.Content, b.store.GetBotConfig().Prefix)
	if inbound.Kind == KindPlainText {
		if features.MiniGamesEnabled {
			b.games.HandleMessage(s, m)
		}
		return
	}

	if b.dispatchCommand(s, m, inbound, features) {
		b.bus.Publish(ctx, events.CommandExecutedEvent{
			Command:   inbound.Command,
			UserID:    m.Author.ID,
			ChannelID: m.ChannelID,
			GuildID:   m.GuildID,
		})
	}
}

// commandFeatureEnabled gates a command verb on its feature toggle. Verbs of
// disabled features are silently ignored, matching the help listing.
func commandFeatureEnabled(command string, features settings.FeatureSettings) bool {
	switch command {
	case "balance", "daily", "transfer", "shop", "buy", "inventory":
		return features.EconomyEnabled
	case "level", "rank", "leaderboard", "rewards":
		return features.LevelSystemEnabled
	case "anime":
		return features.MiniGamesEnabled
	case "play", "skip", "stop", "queue", "pause", "resume", "volume":
		return features.MusicPlayerEnabled
	default:
		return true
	}
}

// dispatchCommand routes a parsed command to its feature. It reports whether
// a handler claimed the command; catalog-only commands fall through to the
// unclaimed reply.
func (b *Bot) dispatchCommand(s *discordgo.Session, m *discordgo.MessageCreate, inbound InboundMessage, features settings.FeatureSettings) bool {
	if !commandFeatureEnabled(inbound.Command, features) {
		return false
	}

	switch inbound.Command {
	case "help":
		b.general.HandleHelp(s, m, inbound.Args)
	case "ping":
		b.general.HandlePing(s, m)
	case "info":
		b.general.HandleInfo(s, m)

	case "balance":
		b.economy.HandleBalance(s, m, inbound.Args)
	case "daily":
		b.economy.HandleDaily(s, m)
	case "transfer":
		b.economy.HandleTransfer(s, m, inbound.Args)
	case "shop":
		b.economy.HandleShop(s, m)
	case "buy":
		b.economy.HandleBuy(s, m, inbound.Args)
	case "inventory":
		b.economy.HandleInventory(s, m)

	case "level", "rank":
		b.levels.HandleLevel(s, m, inbound.Args)
	case "leaderboard":
		b.levels.HandleLeaderboard(s, m)
	case "rewards":
		b.levels.HandleRewards(s, m)

	case "anime":
		b.games.HandleStart(s, m, inbound.Args)

	case "play":
		b.music.HandlePlay(s, m, inbound.Args)
	case "skip":
		b.music.HandleSkip(s, m)
	case "stop":
		b.music.HandleStop(s, m)
	case "queue":
		b.music.HandleQueue(s, m)
	case "pause":
		b.music.HandlePause(s, m)
	case "resume":
		b.music.HandleResume(s, m)
	case "volume":
		b.music.HandleVolume(s, m, inbound.Args)

	default:
		b.general.HandleUnclaimed(s, m, inbound.Command)
		return false
	}
	return true
}

// handleGuildCreate tracks guild membership in the settings store
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	b.store.CreateDiscordServer(settings.DiscordServer{
		ServerID:    g.ID,
		ServerName:  g.Name,
		MemberCount: g.MemberCount,
		JoinedAt:    time.Now(),
	})
	log.WithFields(log.Fields{
		"guild_id":     g.ID,
		"guild_name":   g.Name,
		"member_count": g.MemberCount,
	}).Info("Joined guild")
}

// handleGuildDelete removes the guild record when the bot is kicked
func (b *Bot) handleGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		// Outage, not a removal
		return
	}
	b.store.DeleteDiscordServer(g.ID)
	log.WithField("guild_id", g.ID).Info("Left guild")
}
