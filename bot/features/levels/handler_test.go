package levels

import (
	"testing"

	"jahbot/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewardsResponseDisabled(t *testing.T) {
	levelSettings := settings.LevelSettings{EnableRoleRewards: false, LevelMultiplier: 15}
	rewards := []settings.LevelReward{{Level: 5, RoleName: "Regular"}}

	message, embed := rewardsResponse(levelSettings, rewards)
	assert.Equal(t, "Level rewards are currently disabled.", message)
	assert.Nil(t, embed)
}

func TestRewardsResponseEmpty(t *testing.T) {
	levelSettings := settings.LevelSettings{EnableRoleRewards: true, LevelMultiplier: 15}

	message, embed := rewardsResponse(levelSettings, nil)
	assert.Equal(t, "No level rewards are configured.", message)
	assert.Nil(t, embed)
}

func TestRewardsResponseConfigured(t *testing.T) {
	levelSettings := settings.LevelSettings{EnableRoleRewards: true, LevelMultiplier: 15}
	rewards := []settings.LevelReward{
		{Level: 5, RoleName: "Regular"},
		{Level: 10, RoleName: "Veteran"},
	}

	message, embed := rewardsResponse(levelSettings, rewards)
	assert.Empty(t, message)
	require.NotNil(t, embed)
	assert.Len(t, embed.Fields, 2)
}
