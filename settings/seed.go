package settings

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// seedFile mirrors the store records as optional TOML sections. Only sections
// present in the file override the defaults.
type seedFile struct {
	Bot      *BotConfig           `toml:"bot"`
	Features *FeatureSettings     `toml:"features"`
	Economy  *EconomySettings     `toml:"economy"`
	Levels   *LevelSettings       `toml:"levels"`
	Music    *MusicSettings       `toml:"music"`
	Game     *AnimeGameSettings   `toml:"game"`
	Help     *HelpCommandSettings `toml:"help"`
	Rewards  []LevelReward        `toml:"rewards"`
	Shop     []ShopItem           `toml:"shop"`
	Anime    []AnimeEntry         `toml:"anime"`
	Commands []BotCommand         `toml:"commands"`
}

// LoadSeed overlays records from a TOML file onto the store. It stands in for
// the dashboard's persistence layer: the bot only ever reads the result.
func (s *MemoryStore) LoadSeed(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open settings seed: %w", err)
	}
	defer file.Close()

	var seed seedFile
	if err := toml.NewDecoder(file).Decode(&seed); err != nil {
		return fmt.Errorf("failed to decode settings seed: %w", err)
	}

	if seed.Bot != nil {
		s.SetBotConfig(*seed.Bot)
	}
	if seed.Features != nil {
		s.SetFeatureSettings(*seed.Features)
	}
	if seed.Economy != nil {
		s.SetEconomySettings(*seed.Economy)
	}
	if seed.Levels != nil {
		s.SetLevelSettings(*seed.Levels)
	}
	if seed.Music != nil {
		s.SetMusicSettings(*seed.Music)
	}
	if seed.Game != nil {
		s.SetAnimeGameSettings(*seed.Game)
	}
	if seed.Help != nil {
		s.SetHelpCommandSettings(*seed.Help)
	}
	if seed.Rewards != nil {
		s.SetLevelRewards(seed.Rewards)
	}
	if seed.Shop != nil {
		s.SetShopItems(seed.Shop)
	}
	if seed.Anime != nil {
		s.SetAnimeDatabase(seed.Anime)
	}
	if seed.Commands != nil {
		s.SetBotCommands(seed.Commands)
	}
	return nil
}
