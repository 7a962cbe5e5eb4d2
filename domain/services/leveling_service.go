package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"jahbot/domain/entities"
	"jahbot/events"
	"jahbot/settings"
)

// XPAwardResult reports the outcome of a message observation.
type XPAwardResult struct {
	Awarded  bool
	XPGained int64
	XP       int64
	OldLevel int
	NewLevel int
}

// LeveledUp reports whether this award crossed a level boundary.
func (r *XPAwardResult) LeveledUp() bool {
	return r.Awarded && r.NewLevel > r.OldLevel
}

// LeaderboardEntry is one row of the XP ranking.
type LeaderboardEntry struct {
	Rank        int
	UserID      string
	DisplayName string
	XP          int64
	Level       int
}

// LevelingService accrues XP from observed messages. Awards are rate limited
// per user; the rejected path is silent and costs one mutex acquisition.
type LevelingService struct {
	mu       sync.Mutex
	profiles map[string]*entities.LevelProfile
	order    []string // insertion order, breaks leaderboard ties

	xpCooldown *CooldownTracker
	store      settings.Store
	publisher  events.Publisher
	now        func() time.Time
}

// NewLevelingService creates a new leveling service reading live configuration
// from the settings store.
func NewLevelingService(store settings.Store, publisher events.Publisher) *LevelingService {
	return &LevelingService{
		profiles:   make(map[string]*entities.LevelProfile),
		xpCooldown: NewCooldownTracker(),
		store:      store,
		publisher:  publisher,
		now:        time.Now,
	}
}

// RecordMessage awards XP for one observed message unless the user is inside
// the accrual cooldown. On a level-up it publishes a LevelUpEvent.
func (s *LevelingService) RecordMessage(ctx context.Context, userID, displayName string) *XPAwardResult {
	levelSettings := s.store.GetLevelSettings()
	window := time.Duration(levelSettings.XPCooldownSeconds) * time.Second

	s.mu.Lock()
	profile := s.getOrCreateLocked(userID, displayName)

	if _, ok := s.xpCooldown.TryAcquire(userID, window); !ok {
		s.mu.Unlock()
		return &XPAwardResult{Awarded: false, XP: profile.XP, OldLevel: profile.Level, NewLevel: profile.Level}
	}

	oldLevel := profile.Level
	profile.XP += levelSettings.XPPerMessage
	profile.Level = entities.LevelForXP(profile.XP, levelSettings.LevelMultiplier)
	awardedAt := s.now()
	profile.LastXPAt = &awardedAt

	result := &XPAwardResult{
		Awarded:  true,
		XPGained: levelSettings.XPPerMessage,
		XP:       profile.XP,
		OldLevel: oldLevel,
		NewLevel: profile.Level,
	}
	s.mu.Unlock()

	if result.LeveledUp() && s.publisher != nil {
		s.publisher.Publish(ctx, events.LevelUpEvent{
			UserID:   userID,
			OldLevel: result.OldLevel,
			NewLevel: result.NewLevel,
			XP:       result.XP,
		})
	}
	return result
}

// Profile returns a snapshot of a user's level profile, creating it if needed.
func (s *LevelingService) Profile(userID, displayName string) entities.LevelProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.getOrCreateLocked(userID, displayName)
}

// Rank returns a user's 1-based leaderboard position, or 0 when the user has
// no profile yet.
func (s *LevelingService) Rank(userID string) int {
	for _, entry := range s.Leaderboard(0) {
		if entry.UserID == userID {
			return entry.Rank
		}
	}
	return 0
}

// Leaderboard returns users ordered by XP descending. Ties keep the order in
// which the profiles were first seen. A limit of 0 returns everyone.
func (s *LevelingService) Leaderboard(limit int) []LeaderboardEntry {
	s.mu.Lock()
	entries := make([]LeaderboardEntry, 0, len(s.order))
	for _, userID := range s.order {
		profile := s.profiles[userID]
		entries = append(entries, LeaderboardEntry{
			UserID:      profile.UserID,
			DisplayName: profile.DisplayName,
			XP:          profile.XP,
			Level:       profile.Level,
		})
	}
	s.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func (s *LevelingService) getOrCreateLocked(userID, displayName string) *entities.LevelProfile {
	if profile, ok := s.profiles[userID]; ok {
		if displayName != "" {
			profile.DisplayName = displayName
		}
		return profile
	}
	profile := &entities.LevelProfile{
		UserID:      userID,
		DisplayName: displayName,
	}
	s.profiles[userID] = profile
	s.order = append(s.order, userID)
	return profile
}
