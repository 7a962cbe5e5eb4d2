package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorError   = 0xED4245 // Red (alias for ColorDanger)
	ColorWarning = 0xFEE75C // Yellow
	ColorInfo    = 0x3498DB // Blue
)

// Command category names as stored in the command catalog
const (
	CategoryGeneral    = "General"
	CategoryEconomy    = "Economy"
	CategoryLevels     = "Levels"
	CategoryMusic      = "Music"
	CategoryGames      = "Games"
	CategoryModeration = "Moderation"
)

// CategoryEmoji maps a command category to its listing emoji
var CategoryEmoji = map[string]string{
	CategoryGeneral:    "📌",
	CategoryEconomy:    "💰",
	CategoryLevels:     "📈",
	CategoryMusic:      "🎵",
	CategoryGames:      "🎮",
	CategoryModeration: "🛡️",
}

// UI constants
const (
	MaxLeaderboardRows = 10
	MaxQueueRowsShown  = 10
)
