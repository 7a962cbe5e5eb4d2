package general

import (
	"strings"
	"testing"

	"jahbot/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleCommandsRespectsFeatureToggles(t *testing.T) {
	store := settings.NewMemoryStore()
	feature := New(store)

	features := store.GetFeatureSettings()
	features.MusicPlayerEnabled = false
	store.SetFeatureSettings(features)

	for _, command := range feature.visibleCommands() {
		assert.NotEqual(t, "Music", command.Category)
	}

	// General commands always survive.
	names := make(map[string]bool)
	for _, command := range feature.visibleCommands() {
		names[command.Name] = true
	}
	assert.True(t, names["help"])
	assert.True(t, names["ping"])
}

func TestVisibleCommandsSkipsDisabledCommands(t *testing.T) {
	store := settings.NewMemoryStore()
	feature := New(store)

	store.SetBotCommands([]settings.BotCommand{
		{Name: "help", Category: "General", IsEnabled: true},
		{Name: "ping", Category: "General", IsEnabled: false},
	})

	visible := feature.visibleCommands()
	require.Len(t, visible, 1)
	assert.Equal(t, "help", visible[0].Name)
}

func TestBuildHelpTextGroupsByCategory(t *testing.T) {
	commands := []settings.BotCommand{
		{Name: "help", Category: "General", IsEnabled: true},
		{Name: "balance", Category: "Economy", IsEnabled: true},
		{Name: "daily", Category: "Economy", IsEnabled: true},
	}

	text := buildHelpText(commands, "!!", settings.HelpCommandSettings{FooterText: "powered by jah"})
	assert.Contains(t, text, "`!!help`")
	assert.Contains(t, text, "`!!balance` `!!daily`")
	assert.Contains(t, text, "powered by jah")

	// General is listed before Economy.
	assert.Less(t, strings.Index(text, "General"), strings.Index(text, "Economy"))
}

func TestBuildHelpEmbedUsesConfiguredColor(t *testing.T) {
	commands := []settings.BotCommand{{Name: "help", Category: "General", IsEnabled: true}}

	embed := buildHelpEmbed(commands, "!!", settings.HelpCommandSettings{EmbedColor: "#FF0000"})
	assert.Equal(t, 0xFF0000, embed.Color)
	require.Len(t, embed.Fields, 1)
	assert.Contains(t, embed.Fields[0].Name, "General")
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, 0x5865F2, parseHexColor("#5865F2", 0))
	assert.Equal(t, 0x5865F2, parseHexColor("5865F2", 0))
	assert.Equal(t, 42, parseHexColor("", 42))
	assert.Equal(t, 42, parseHexColor("#xyz", 42))
	assert.Equal(t, 42, parseHexColor("#12345", 42))
}
