package settings

import "time"

// BotConfig holds the bot-wide configuration record edited from the dashboard.
type BotConfig struct {
	Prefix       string
	ActivityType string // PLAYING, WATCHING, LISTENING, STREAMING, COMPETING
	ActivityText string
	AdminRole    string
}

// FeatureSettings holds the per-feature enable flags.
type FeatureSettings struct {
	EconomyEnabled     bool
	LevelSystemEnabled bool
	MusicPlayerEnabled bool
	MiniGamesEnabled   bool
	ModerationEnabled  bool
}

// EconomySettings holds the economy engine configuration record.
type EconomySettings struct {
	CurrencyName              string
	CurrencySymbol            string
	StartingBalance           int64
	DailyBonus                int64
	BalanceCommandEnabled     bool
	DailyCommandEnabled       bool
	TransferCommandEnabled    bool
	LeaderboardCommandEnabled bool
}

// ShopItem is a purchasable item configured from the dashboard.
type ShopItem struct {
	Name        string
	Description string
	Price       int64
	Type        string
}

// LevelSettings holds the leveling engine configuration record.
type LevelSettings struct {
	XPPerMessage      int64
	XPCooldownSeconds int
	LevelMultiplier   int
	NotificationType  string // channel, dm, both
	EnableRoleRewards bool
}

// LevelReward maps a level threshold to a role granted when reached.
type LevelReward struct {
	Level    int
	RoleName string
}

// MusicSettings holds the music engine configuration record.
type MusicSettings struct {
	DefaultVolume         int
	MaxQueueSize          int
	DisconnectTimeout     int
	DJRoleName            string
	RestrictVolumeCommand bool
	RestrictSkipCommand   bool
}

// AnimeGameSettings holds the guessing game configuration record.
type AnimeGameSettings struct {
	Difficulty       string
	TimeLimitSeconds int
	Reward           int64
	CooldownMinutes  int
	Channels         []string // channel names where rounds may be started
}

// AnimeEntry is one title in the guessing game pool.
type AnimeEntry struct {
	Title      string
	Difficulty string
	ImageCount int
}

// BotCommand describes one chat command known to the dashboard.
type BotCommand struct {
	Name        string
	Description string
	Category    string // General, Economy, Levels, Music, Games, Moderation
	IsEnabled   bool
}

// HelpCommandSettings controls the rendering of the help listing.
type HelpCommandSettings struct {
	Appearance string // embed or text
	EmbedColor string // hex string, e.g. "#5865F2"
	FooterText string
}

// DiscordServer is a guild the bot is a member of.
type DiscordServer struct {
	ServerID    string
	ServerName  string
	MemberCount int
	JoinedAt    time.Time
}

// AnalyticsSnapshot is one hourly usage sample.
type AnalyticsSnapshot struct {
	Timestamp     time.Time
	CommandsUsed  int
	ActiveUsers   int
	UptimeSeconds int64
}
