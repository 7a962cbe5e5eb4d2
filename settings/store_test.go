package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreDefaults(t *testing.T) {
	store := NewMemoryStore()

	assert.Equal(t, "!!", store.GetBotConfig().Prefix)
	assert.Equal(t, int64(100), store.GetEconomySettings().StartingBalance)
	assert.Equal(t, int64(50), store.GetEconomySettings().DailyBonus)
	assert.Equal(t, int64(15), store.GetLevelSettings().XPPerMessage)
	assert.Equal(t, 60, store.GetLevelSettings().XPCooldownSeconds)
	assert.Equal(t, 15, store.GetLevelSettings().LevelMultiplier)
	assert.Equal(t, 70, store.GetMusicSettings().DefaultVolume)
	assert.Equal(t, "DJ", store.GetMusicSettings().DJRoleName)
	assert.Equal(t, 30, store.GetAnimeGameSettings().CooldownMinutes)
	assert.Equal(t, []string{"main-chat", "gaming"}, store.GetAnimeGameSettings().Channels)
	assert.Empty(t, store.GetShopItems())
	assert.Empty(t, store.GetAnimeDatabase())
	assert.NotEmpty(t, store.GetBotCommands())
}

func TestMemoryStoreServerTracking(t *testing.T) {
	store := NewMemoryStore()

	store.CreateDiscordServer(DiscordServer{
		ServerID:    "100",
		ServerName:  "test guild",
		MemberCount: 5,
		JoinedAt:    time.Now(),
	})
	require.Len(t, store.GetDiscordServers(), 1)

	// Creating the same server again replaces the record instead of duplicating it.
	store.CreateDiscordServer(DiscordServer{ServerID: "100", ServerName: "test guild", MemberCount: 6})
	require.Len(t, store.GetDiscordServers(), 1)
	assert.Equal(t, 6, store.GetDiscordServers()[0].MemberCount)

	store.UpdateDiscordServer("100", 10)
	assert.Equal(t, 10, store.GetDiscordServers()[0].MemberCount)

	store.DeleteDiscordServer("100")
	assert.Empty(t, store.GetDiscordServers())
}

func TestMemoryStoreGettersReturnCopies(t *testing.T) {
	store := NewMemoryStore()
	store.SetShopItems([]ShopItem{{Name: "VIP Role", Price: 1000, Type: "role"}})

	items := store.GetShopItems()
	items[0].Price = 1

	assert.Equal(t, int64(1000), store.GetShopItems()[0].Price)
}

func TestLoadSeedOverridesOnlyPresentSections(t *testing.T) {
	seed := `
[bot]
Prefix = "??"
ActivityType = "WATCHING"
ActivityText = "the chat"
AdminRole = "Admin"

[[shop]]
Name = "VIP Role"
Price = 1000
Type = "role"

[[anime]]
Title = "Cowboy Bebop"
Difficulty = "Easy"
ImageCount = 3
`
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	store := NewMemoryStore()
	require.NoError(t, store.LoadSeed(path))

	assert.Equal(t, "??", store.GetBotConfig().Prefix)
	require.Len(t, store.GetShopItems(), 1)
	assert.Equal(t, int64(1000), store.GetShopItems()[0].Price)
	require.Len(t, store.GetAnimeDatabase(), 1)
	assert.Equal(t, "Cowboy Bebop", store.GetAnimeDatabase()[0].Title)

	// Sections absent from the seed keep their defaults.
	assert.Equal(t, int64(50), store.GetEconomySettings().DailyBonus)
	assert.Equal(t, 70, store.GetMusicSettings().DefaultVolume)
}

func TestLoadSeedMissingFile(t *testing.T) {
	store := NewMemoryStore()
	err := store.LoadSeed(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
