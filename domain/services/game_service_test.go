package services

import (
	"context"
	"testing"
	"time"

	"jahbot/domain/entities"
	"jahbot/domain/testhelpers"
	"jahbot/events"
	"jahbot/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGameService(t *testing.T) (*GameService, *testhelpers.MockRewardLedger, *testhelpers.EventRecorder) {
	t.Helper()

	store := settings.NewMemoryStore()
	store.SetAnimeDatabase([]settings.AnimeEntry{
		{Title: "Cowboy Bebop", Difficulty: "Medium", ImageCount: 4},
		{Title: "One Piece", Difficulty: "Easy", ImageCount: 6},
	})

	ledger := &testhelpers.MockRewardLedger{}
	recorder := &testhelpers.EventRecorder{}
	service := NewGameService(store, ledger, recorder)
	service.randIntn = func(n int) int { return 0 }
	return service, ledger, recorder
}

func TestGameStartRound(t *testing.T) {
	service, _, _ := newTestGameService(t)

	round, err := service.StartRound(context.Background(), "123", "chan1", "main-chat", "guild1", "")
	require.NoError(t, err)

	// Only the "Medium" entry survives the difficulty filter.
	assert.Equal(t, "Cowboy Bebop", round.Answer)
	assert.Equal(t, int64(50), round.Reward)
	assert.Equal(t, "123", round.StartedBy)
	assert.NotEmpty(t, round.ID)

	active, ok := service.ActiveRound("chan1")
	require.True(t, ok)
	assert.Equal(t, round.ID, active.ID)
}

func TestGameStartRoundDifficultyArgument(t *testing.T) {
	service, _, _ := newTestGameService(t)
	ctx := context.Background()

	// The argument overrides the configured "Medium" difficulty.
	round, err := service.StartRound(ctx, "123", "chan1", "main-chat", "guild1", "easy")
	require.NoError(t, err)
	assert.Equal(t, "One Piece", round.Answer)

	// A difficulty with no entries fails even though the full pool has some.
	_, err = service.StartRound(ctx, "456", "chan2", "gaming", "guild1", "Hard")
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestGameStartRoundChannelNotAllowed(t *testing.T) {
	service, _, _ := newTestGameService(t)

	_, err := service.StartRound(context.Background(), "123", "chan1", "off-topic", "guild1", "")
	assert.ErrorIs(t, err, ErrChannelNotAllowed)
}

func TestGameStartRoundNoEntries(t *testing.T) {
	service, _, _ := newTestGameService(t)
	service.store.(*settings.MemoryStore).SetAnimeDatabase(nil)

	_, err := service.StartRound(context.Background(), "123", "chan1", "main-chat", "guild1", "")
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestGameStartRoundAlreadyActive(t *testing.T) {
	service, _, _ := newTestGameService(t)
	ctx := context.Background()

	_, err := service.StartRound(ctx, "123", "chan1", "main-chat", "guild1", "")
	require.NoError(t, err)

	_, err = service.StartRound(ctx, "456", "chan1", "main-chat", "guild1", "")
	assert.ErrorIs(t, err, ErrRoundAlreadyActive)
}

func TestGameStartRoundUserCooldown(t *testing.T) {
	service, ledger, _ := newTestGameService(t)
	ctx := context.Background()
	ledger.On("Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(150))

	_, err := service.StartRound(ctx, "123", "chan1", "main-chat", "guild1", "")
	require.NoError(t, err)

	// End the round so the channel is free again.
	_, won := service.SubmitGuess(ctx, "123", "alice", "chan1", "Cowboy Bebop")
	require.True(t, won)

	// The starter is still on their 30 minute cooldown, even elsewhere.
	_, err = service.StartRound(ctx, "123", "chan2", "gaming", "guild1", "")
	cooldownErr, ok := AsCooldownError(err)
	require.True(t, ok, "expected CooldownError, got %v", err)
	assert.Greater(t, cooldownErr.Remaining, 29*time.Minute)

	// A different user is unaffected.
	_, err = service.StartRound(ctx, "456", "chan2", "gaming", "guild1", "")
	assert.NoError(t, err)
}

func TestGameSubmitGuess(t *testing.T) {
	service, ledger, recorder := newTestGameService(t)
	ctx := context.Background()
	ledger.On("Deposit", mock.Anything, "456", "bob", int64(50), events.TransactionTypeGameReward).Return(int64(150))

	round, err := service.StartRound(ctx, "123", "chan1", "main-chat", "guild1", "")
	require.NoError(t, err)

	// Wrong guesses are silently ignored.
	_, won := service.SubmitGuess(ctx, "456", "bob", "chan1", "Naruto")
	assert.False(t, won)

	// Matching is case-insensitive.
	result, won := service.SubmitGuess(ctx, "456", "bob", "chan1", "cowboy bebop")
	require.True(t, won)
	assert.Equal(t, int64(50), result.Reward)
	assert.Equal(t, int64(150), result.NewBalance)
	assert.Equal(t, "456", result.Round.WinnerID)
	assert.Equal(t, entities.RoundOutcomeGuessed, result.Round.Outcome)

	_, ok := service.ActiveRound("chan1")
	assert.False(t, ok)

	ledger.AssertExpectations(t)

	published := recorder.EventsOfType(events.EventTypeRoundEnded)
	require.Len(t, published, 1)
	ended := published[0].(events.RoundEndedEvent)
	assert.Equal(t, round.ID, ended.RoundID)
	assert.Equal(t, "guessed", ended.Outcome)
	assert.Equal(t, "456", ended.WinnerID)
}

func TestGameGuessInChannelWithoutRound(t *testing.T) {
	service, _, _ := newTestGameService(t)

	_, won := service.SubmitGuess(context.Background(), "456", "bob", "chan1", "Cowboy Bebop")
	assert.False(t, won)
}

func TestGameExpireBeatsLateGuess(t *testing.T) {
	service, ledger, recorder := newTestGameService(t)
	ctx := context.Background()

	round, err := service.StartRound(ctx, "123", "chan1", "main-chat", "guild1", "")
	require.NoError(t, err)

	service.expireRound(ctx, "chan1", round.ID)

	// The correct answer after expiry wins nothing.
	_, won := service.SubmitGuess(ctx, "456", "bob", "chan1", "Cowboy Bebop")
	assert.False(t, won)
	ledger.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	published := recorder.EventsOfType(events.EventTypeRoundEnded)
	require.Len(t, published, 1)
	ended := published[0].(events.RoundEndedEvent)
	assert.Equal(t, "expired", ended.Outcome)
	assert.Empty(t, ended.WinnerID)
	assert.Equal(t, "Cowboy Bebop", ended.Answer)
}

func TestGameExpireIsIdempotent(t *testing.T) {
	service, _, recorder := newTestGameService(t)
	ctx := context.Background()

	round, err := service.StartRound(ctx, "123", "chan1", "main-chat", "guild1", "")
	require.NoError(t, err)

	service.expireRound(ctx, "chan1", round.ID)
	service.expireRound(ctx, "chan1", round.ID)

	assert.Len(t, recorder.EventsOfType(events.EventTypeRoundEnded), 1)
}

func TestGameStaleTimerIgnoresNewerRound(t *testing.T) {
	service, _, recorder := newTestGameService(t)
	ctx := context.Background()

	first, err := service.StartRound(ctx, "123", "chan1", "main-chat", "guild1", "")
	require.NoError(t, err)
	service.expireRound(ctx, "chan1", first.ID)

	second, err := service.StartRound(ctx, "456", "chan1", "main-chat", "guild1", "")
	require.NoError(t, err)

	// The first round's timer firing late must not touch the new round.
	service.expireRound(ctx, "chan1", first.ID)

	active, ok := service.ActiveRound("chan1")
	require.True(t, ok)
	assert.Equal(t, second.ID, active.ID)
	assert.Len(t, recorder.EventsOfType(events.EventTypeRoundEnded), 1)
}

func TestGameTimeoutFires(t *testing.T) {
	service, _, recorder := newTestGameService(t)

	animeSettings := service.store.GetAnimeGameSettings()
	animeSettings.TimeLimitSeconds = 0
	service.store.(*settings.MemoryStore).SetAnimeGameSettings(animeSettings)

	_, err := service.StartRound(context.Background(), "123", "chan1", "main-chat", "guild1", "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(recorder.EventsOfType(events.EventTypeRoundEnded)) == 1
	}, time.Second, 5*time.Millisecond)

	_, ok := service.ActiveRound("chan1")
	assert.False(t, ok)
}
