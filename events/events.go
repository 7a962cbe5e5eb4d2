package events

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange   EventType = "balance_change"
	EventTypeLevelUp         EventType = "level_up"
	EventTypeRoundEnded      EventType = "round_ended"
	EventTypeCommandExecuted EventType = "command_executed"
	EventTypeMessageObserved EventType = "message_observed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// TransactionType classifies a balance mutation
type TransactionType string

const (
	TransactionTypeDailyClaim  TransactionType = "daily_claim"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypePurchase    TransactionType = "purchase"
	TransactionTypeGameReward  TransactionType = "game_reward"
)

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID          string
	OldBalance      int64
	NewBalance      int64
	ChangeAmount    int64
	TransactionType TransactionType
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// LevelUpEvent represents a user crossing a level boundary
type LevelUpEvent struct {
	UserID   string
	OldLevel int
	NewLevel int
	XP       int64
}

func (e LevelUpEvent) Type() EventType {
	return EventTypeLevelUp
}

// RoundEndedEvent represents a game round reaching a terminal state
type RoundEndedEvent struct {
	RoundID   string
	ChannelID string
	Answer    string
	Outcome   string // "guessed" or "expired"
	WinnerID  string
	Reward    int64
}

func (e RoundEndedEvent) Type() EventType {
	return EventTypeRoundEnded
}

// CommandExecutedEvent represents a successfully dispatched chat command
type CommandExecutedEvent struct {
	Command   string
	UserID    string
	ChannelID string
	GuildID   string
}

func (e CommandExecutedEvent) Type() EventType {
	return EventTypeCommandExecuted
}

// MessageObservedEvent represents any non-bot message seen by the dispatcher
type MessageObservedEvent struct {
	UserID    string
	ChannelID string
	GuildID   string
}

func (e MessageObservedEvent) Type() EventType {
	return EventTypeMessageObserved
}
