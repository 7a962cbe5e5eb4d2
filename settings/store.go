package settings

import "sync"

// Store is the read contract the engines depend on, plus the runtime records
// the bot process writes itself (server tracking, analytics samples).
// Configuration writes belong to the dashboard layer and are not part of it.
type Store interface {
	GetBotConfig() BotConfig
	GetFeatureSettings() FeatureSettings
	GetEconomySettings() EconomySettings
	GetLevelSettings() LevelSettings
	GetMusicSettings() MusicSettings
	GetAnimeGameSettings() AnimeGameSettings
	GetHelpCommandSettings() HelpCommandSettings
	GetLevelRewards() []LevelReward
	GetShopItems() []ShopItem
	GetAnimeDatabase() []AnimeEntry
	GetBotCommands() []BotCommand

	GetDiscordServers() []DiscordServer
	CreateDiscordServer(server DiscordServer)
	UpdateDiscordServer(serverID string, memberCount int)
	DeleteDiscordServer(serverID string)

	CreateAnalyticsSnapshot(snapshot AnalyticsSnapshot)
	GetAnalyticsSnapshots() []AnalyticsSnapshot
}

// MemoryStore is the in-memory reference implementation of Store.
// All state is lost on restart; durability belongs to the dashboard layer.
type MemoryStore struct {
	mu sync.RWMutex

	botConfig     BotConfig
	features      FeatureSettings
	economy       EconomySettings
	levels        LevelSettings
	music         MusicSettings
	animeGame     AnimeGameSettings
	help          HelpCommandSettings
	levelRewards  []LevelReward
	shopItems     []ShopItem
	animeEntries  []AnimeEntry
	commands      []BotCommand
	servers       []DiscordServer
	analytics     []AnalyticsSnapshot
}

// NewMemoryStore creates a store populated with the default records.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		botConfig: BotConfig{
			Prefix:       "!!",
			ActivityType: "PLAYING",
			ActivityText: "JAH MADE IT",
			AdminRole:    "Administrator",
		},
		features: FeatureSettings{
			EconomyEnabled:     true,
			LevelSystemEnabled: true,
			MusicPlayerEnabled: true,
			MiniGamesEnabled:   true,
			ModerationEnabled:  false,
		},
		economy: EconomySettings{
			CurrencyName:              "Coins",
			CurrencySymbol:            "🪙",
			StartingBalance:           100,
			DailyBonus:                50,
			BalanceCommandEnabled:     true,
			DailyCommandEnabled:       true,
			TransferCommandEnabled:    true,
			LeaderboardCommandEnabled: true,
		},
		levels: LevelSettings{
			XPPerMessage:      15,
			XPCooldownSeconds: 60,
			LevelMultiplier:   15,
			NotificationType:  "channel",
			EnableRoleRewards: true,
		},
		music: MusicSettings{
			DefaultVolume:         70,
			MaxQueueSize:          100,
			DisconnectTimeout:     5,
			DJRoleName:            "DJ",
			RestrictVolumeCommand: true,
			RestrictSkipCommand:   false,
		},
		animeGame: AnimeGameSettings{
			Difficulty:       "Medium",
			TimeLimitSeconds: 60,
			Reward:           50,
			CooldownMinutes:  30,
			Channels:         []string{"main-chat", "gaming"},
		},
		help: HelpCommandSettings{
			Appearance: "embed",
			EmbedColor: "#5865F2",
			FooterText: "Powered by jahceere's Discord Bot",
		},
		commands: defaultCommands(),
	}
}

// defaultCommands is the out-of-the-box command catalog the dashboard edits.
func defaultCommands() []BotCommand {
	return []BotCommand{
		{Name: "help", Description: "List available commands", Category: "General", IsEnabled: true},
		{Name: "ping", Description: "Check bot latency", Category: "General", IsEnabled: true},
		{Name: "info", Description: "Show bot information", Category: "General", IsEnabled: true},
		{Name: "balance", Description: "Check your coin balance", Category: "Economy", IsEnabled: true},
		{Name: "daily", Description: "Claim your daily reward", Category: "Economy", IsEnabled: true},
		{Name: "transfer", Description: "Send coins to another user", Category: "Economy", IsEnabled: true},
		{Name: "shop", Description: "Browse the item shop", Category: "Economy", IsEnabled: true},
		{Name: "buy", Description: "Purchase an item from the shop", Category: "Economy", IsEnabled: true},
		{Name: "inventory", Description: "View your items", Category: "Economy", IsEnabled: true},
		{Name: "level", Description: "Show your level and XP", Category: "Levels", IsEnabled: true},
		{Name: "rank", Description: "Show your level and XP", Category: "Levels", IsEnabled: true},
		{Name: "leaderboard", Description: "Show the XP leaderboard", Category: "Levels", IsEnabled: true},
		{Name: "rewards", Description: "List level role rewards", Category: "Levels", IsEnabled: true},
		{Name: "play", Description: "Queue a song", Category: "Music", IsEnabled: true},
		{Name: "skip", Description: "Skip the current song", Category: "Music", IsEnabled: true},
		{Name: "stop", Description: "Stop playback and clear the queue", Category: "Music", IsEnabled: true},
		{Name: "queue", Description: "Show the song queue", Category: "Music", IsEnabled: true},
		{Name: "pause", Description: "Pause playback", Category: "Music", IsEnabled: true},
		{Name: "resume", Description: "Resume playback", Category: "Music", IsEnabled: true},
		{Name: "volume", Description: "Show or set the volume", Category: "Music", IsEnabled: true},
		{Name: "anime", Description: "Start a guess-the-anime round", Category: "Games", IsEnabled: true},
		{Name: "kick", Description: "Kick a member", Category: "Moderation", IsEnabled: true},
		{Name: "ban", Description: "Ban a member", Category: "Moderation", IsEnabled: true},
	}
}

func (s *MemoryStore) GetBotConfig() BotConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.botConfig
}

func (s *MemoryStore) GetFeatureSettings() FeatureSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.features
}

func (s *MemoryStore) GetEconomySettings() EconomySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.economy
}

func (s *MemoryStore) GetLevelSettings() LevelSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levels
}

func (s *MemoryStore) GetMusicSettings() MusicSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.music
}

func (s *MemoryStore) GetAnimeGameSettings() AnimeGameSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.animeGame
	cfg.Channels = append([]string(nil), s.animeGame.Channels...)
	return cfg
}

func (s *MemoryStore) GetHelpCommandSettings() HelpCommandSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.help
}

func (s *MemoryStore) GetLevelRewards() []LevelReward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]LevelReward(nil), s.levelRewards...)
}

func (s *MemoryStore) GetShopItems() []ShopItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ShopItem(nil), s.shopItems...)
}

func (s *MemoryStore) GetAnimeDatabase() []AnimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]AnimeEntry(nil), s.animeEntries...)
}

func (s *MemoryStore) GetBotCommands() []BotCommand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]BotCommand(nil), s.commands...)
}

func (s *MemoryStore) GetDiscordServers() []DiscordServer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]DiscordServer(nil), s.servers...)
}

func (s *MemoryStore) CreateDiscordServer(server DiscordServer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.servers {
		if s.servers[i].ServerID == server.ServerID {
			s.servers[i] = server
			return
		}
	}
	s.servers = append(s.servers, server)
}

func (s *MemoryStore) UpdateDiscordServer(serverID string, memberCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.servers {
		if s.servers[i].ServerID == serverID {
			s.servers[i].MemberCount = memberCount
			return
		}
	}
}

func (s *MemoryStore) DeleteDiscordServer(serverID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.servers {
		if s.servers[i].ServerID == serverID {
			s.servers = append(s.servers[:i], s.servers[i+1:]...)
			return
		}
	}
}

func (s *MemoryStore) CreateAnalyticsSnapshot(snapshot AnalyticsSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics = append(s.analytics, snapshot)
}

func (s *MemoryStore) GetAnalyticsSnapshots() []AnalyticsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]AnalyticsSnapshot(nil), s.analytics...)
}

// Setters below exist for the dashboard layer and for tests. The engines
// themselves never write configuration.

func (s *MemoryStore) SetBotConfig(cfg BotConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.botConfig = cfg
}

func (s *MemoryStore) SetFeatureSettings(cfg FeatureSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.features = cfg
}

func (s *MemoryStore) SetEconomySettings(cfg EconomySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.economy = cfg
}

func (s *MemoryStore) SetLevelSettings(cfg LevelSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels = cfg
}

func (s *MemoryStore) SetMusicSettings(cfg MusicSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.music = cfg
}

func (s *MemoryStore) SetAnimeGameSettings(cfg AnimeGameSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animeGame = cfg
}

func (s *MemoryStore) SetHelpCommandSettings(cfg HelpCommandSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.help = cfg
}

func (s *MemoryStore) SetLevelRewards(rewards []LevelReward) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levelRewards = append([]LevelReward(nil), rewards...)
}

func (s *MemoryStore) SetShopItems(items []ShopItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopItems = append([]ShopItem(nil), items...)
}

func (s *MemoryStore) SetAnimeDatabase(entries []AnimeEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animeEntries = append([]AnimeEntry(nil), entries...)
}

func (s *MemoryStore) SetBotCommands(commands []BotCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append([]BotCommand(nil), commands...)
}
