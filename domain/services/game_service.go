package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"jahbot/domain/entities"
	"jahbot/events"
	"jahbot/settings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RewardLedger credits game winnings to a user's balance.
type RewardLedger interface {
	Deposit(ctx context.Context, userID, displayName string, amount int64, txType events.TransactionType) int64
}

// GuessResult describes a winning guess.
type GuessResult struct {
	Round      entities.GameRound
	Reward     int64
	NewBalance int64
}

// GameService runs guess-the-title rounds. One round may be live per channel;
// a correct guess and the round timeout race on the round's terminal state,
// and exactly one of them wins.
type GameService struct {
	mu     sync.Mutex
	rounds map[string]*entities.GameRound // keyed by channel ID
	timers map[string]*time.Timer

	startCooldown *CooldownTracker
	store         settings.Store
	ledger        RewardLedger
	publisher     events.Publisher
	now           func() time.Time
	randIntn      func(n int) int
}

// NewGameService creates a new game service. Rewards are paid through the
// given ledger.
func NewGameService(store settings.Store, ledger RewardLedger, publisher events.Publisher) *GameService {
	return &GameService{
		rounds:        make(map[string]*entities.GameRound),
		timers:        make(map[string]*time.Timer),
		startCooldown: NewCooldownTracker(),
		store:         store,
		ledger:        ledger,
		publisher:     publisher,
		now:           time.Now,
		randIntn:      rand.Intn,
	}
}

// StartRound begins a round in the given channel. The channel must be on the
// configured allow-list by name, the starter must be off their per-user start
// cooldown, and no other round may be live in the channel. An explicit
// difficulty overrides the configured one; empty falls back to the setting.
func (s *GameService) StartRound(ctx context.Context, userID, channelID, channelName, guildID, difficulty string) (entities.GameRound, error) {
	gameSettings := s.store.GetAnimeGameSettings()
	if difficulty == "" {
		difficulty = gameSettings.Difficulty
	}

	if !channelAllowed(gameSettings.Channels, channelName) {
		return entities.GameRound{}, ErrChannelNotAllowed
	}

	window := time.Duration(gameSettings.CooldownMinutes) * time.Minute

	s.mu.Lock()
	defer s.mu.Unlock()

	if remaining := s.startCooldown.Remaining(userID, window); remaining > 0 {
		return entities.GameRound{}, &CooldownError{Remaining: remaining}
	}
	if round, ok := s.rounds[channelID]; ok && round.IsActive() {
		return entities.GameRound{}, ErrRoundAlreadyActive
	}

	entry, ok := s.pickEntry(difficulty)
	if !ok {
		return entities.GameRound{}, ErrNoEntries
	}

	// All checks passed; the stamp cannot fail under s.mu.
	s.startCooldown.TryAcquire(userID, window)

	round := &entities.GameRound{
		ID:         uuid.New().String(),
		ChannelID:  channelID,
		GuildID:    guildID,
		Answer:     entry.Title,
		Difficulty: entry.Difficulty,
		Reward:     gameSettings.Reward,
		StartedBy:  userID,
		StartedAt:  s.now(),
	}
	s.rounds[channelID] = round

	roundID := round.ID
	timeout := time.Duration(gameSettings.TimeLimitSeconds) * time.Second
	s.timers[channelID] = time.AfterFunc(timeout, func() {
		s.expireRound(context.Background(), channelID, roundID)
	})

	log.WithFields(log.Fields{
		"round_id":   round.ID,
		"channel_id": channelID,
		"difficulty": round.Difficulty,
		"timeout":    timeout,
	}).Info("Started game round")

	return *round, nil
}

// SubmitGuess checks a plain message against the live round in its channel.
// It returns false when there is no live round or the guess does not match.
// On a win the reward is credited before returning.
func (s *GameService) SubmitGuess(ctx context.Context, userID, displayName, channelID, text string) (*GuessResult, bool) {
	s.mu.Lock()
	round, ok := s.rounds[channelID]
	if !ok || !round.MatchGuess(text) {
		s.mu.Unlock()
		return nil, false
	}
	if !round.End(entities.RoundOutcomeGuessed) {
		s.mu.Unlock()
		return nil, false
	}
	round.WinnerID = userID
	snapshot := *round
	delete(s.rounds, channelID)
	if timer, ok := s.timers[channelID]; ok {
		timer.Stop()
		delete(s.timers, channelID)
	}
	s.mu.Unlock()

	newBalance := s.ledger.Deposit(ctx, userID, displayName, snapshot.Reward, events.TransactionTypeGameReward)
	s.publishEnded(ctx, snapshot)

	return &GuessResult{Round: snapshot, Reward: snapshot.Reward, NewBalance: newBalance}, true
}

// ActiveRound returns a snapshot of the live round in a channel, if any.
func (s *GameService) ActiveRound(channelID string) (entities.GameRound, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.rounds[channelID]
	if !ok {
		return entities.GameRound{}, false
	}
	return *round, true
}

// expireRound is the timeout path. The round ID guard makes a late timer
// firing against a newer round in the same channel a no-op.
func (s *GameService) expireRound(ctx context.Context, channelID, roundID string) {
	s.mu.Lock()
	round, ok := s.rounds[channelID]
	if !ok || round.ID != roundID || !round.End(entities.RoundOutcomeExpired) {
		s.mu.Unlock()
		return
	}
	snapshot := *round
	delete(s.rounds, channelID)
	delete(s.timers, channelID)
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"round_id":   snapshot.ID,
		"channel_id": channelID,
	}).Info("Game round expired")

	s.publishEnded(ctx, snapshot)
}

func (s *GameService) publishEnded(ctx context.Context, round entities.GameRound) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, events.RoundEndedEvent{
		RoundID:   round.ID,
		ChannelID: round.ChannelID,
		Answer:    round.Answer,
		Outcome:   string(round.Outcome),
		WinnerID:  round.WinnerID,
		Reward:    round.Reward,
	})
}

// pickEntry draws uniformly from the entries matching the given difficulty.
// An empty or "any" difficulty uses the whole pool.
func (s *GameService) pickEntry(difficulty string) (settings.AnimeEntry, bool) {
	pool := s.store.GetAnimeDatabase()
	if difficulty != "" && !strings.EqualFold(difficulty, "any") {
		filtered := pool[:0:0]
		for _, entry := range pool {
			if strings.EqualFold(entry.Difficulty, difficulty) {
				filtered = append(filtered, entry)
			}
		}
		pool = filtered
	}
	if len(pool) == 0 {
		return settings.AnimeEntry{}, false
	}
	return pool[s.randIntn(len(pool))], true
}

func channelAllowed(allowed []string, channelName string) bool {
	for _, name := range allowed {
		if name == channelName {
			return true
		}
	}
	return false
}
