package services

import (
	"errors"
	"fmt"
	"time"
)

// Precondition failures surfaced to the user as chat replies. None of these
// are fatal; the handler maps each to a specific message.
var (
	ErrInvalidTarget      = errors.New("invalid transfer target")
	ErrInvalidAmount      = errors.New("amount must be a positive integer")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrItemNotFound       = errors.New("item not found in the shop")
	ErrNoEntries          = errors.New("no entries match the requested difficulty")
	ErrChannelNotAllowed  = errors.New("channel is not in the game allow-list")
	ErrRoundAlreadyActive = errors.New("a round is already active in this channel")
	ErrNotInVoiceChannel  = errors.New("user is not in a voice channel")
	ErrNoActiveQueue      = errors.New("no music queue exists for this guild")
	ErrMissingDJRole      = errors.New("missing the DJ role")
	ErrQueueFull          = errors.New("the queue is full")
	ErrInvalidVolume      = errors.New("volume must be an integer between 0 and 100")
	ErrAlreadyPaused      = errors.New("playback is already paused")
	ErrAlreadyPlaying     = errors.New("playback is already running")
)

// CooldownError reports how long a user must wait before retrying.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("on cooldown for another %s", e.Remaining.Round(time.Second))
}

// AsCooldownError extracts a CooldownError from an error chain.
func AsCooldownError(err error) (*CooldownError, bool) {
	var cooldownErr *CooldownError
	if errors.As(err, &cooldownErr) {
		return cooldownErr, true
	}
	return nil, false
}
