package entities

import (
	"strings"
	"time"
)

// RoundOutcome describes how a game round ended.
type RoundOutcome string

const (
	RoundOutcomeGuessed RoundOutcome = "guessed"
	RoundOutcomeExpired RoundOutcome = "expired"
)

// GameRound is one guess-the-answer round. At most one round may be live per
// channel; once Ended is set the round is terminal and a new round may start.
type GameRound struct {
	ID         string
	ChannelID  string
	GuildID    string
	Answer     string
	Difficulty string
	Reward     int64
	StartedBy  string
	StartedAt  time.Time
	Ended      bool
	Outcome    RoundOutcome
	WinnerID   string
}

// IsActive reports whether the round can still accept guesses.
func (r *GameRound) IsActive() bool {
	return !r.Ended
}

// MatchGuess reports whether a message body is the expected answer.
// Matching is case-insensitive and exact; no partial credit.
func (r *GameRound) MatchGuess(text string) bool {
	return strings.EqualFold(text, r.Answer)
}

// End transitions the round to a terminal state. It returns false if the
// round already ended, so a timeout firing after a correct guess (or the
// reverse) is a no-op.
func (r *GameRound) End(outcome RoundOutcome) bool {
	if r.Ended {
		return false
	}
	r.Ended = true
	r.Outcome = outcome
	return true
}
