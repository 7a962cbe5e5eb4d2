package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string      // Message shown to Discord user
	LogMessage  string      // Internal message for logging
	Err         error       // Underlying error
	Context     interface{} // Additional context for logging
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues (validation, insufficient funds, etc)
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
	}
}

// NewSystemError creates an error for system issues (unexpected state, Discord API failures)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: "❌ Something went wrong. Please try again later.",
		LogMessage:  logMessage,
		Err:         err,
	}
}

// ReplyWithError sends an error message to the channel the command came from
func ReplyWithError(s *discordgo.Session, channelID, message string) {
	if _, err := s.ChannelMessageSend(channelID, fmt.Sprintf("❌ %s", message)); err != nil {
		log.Errorf("Error sending error reply: %v", err)
	}
}

// HandleError processes a command error and replies appropriately
func HandleError(s *discordgo.Session, m *discordgo.MessageCreate, command string, err error) {
	if botErr, ok := err.(*BotError); ok {
		// Log the full error with context
		log.WithFields(log.Fields{
			"user_id":      m.Author.ID,
			"command":      command,
			"error":        botErr.Error(),
			"user_message": botErr.UserMessage,
			"context":      botErr.Context,
		}).Error(botErr.LogMessage)

		ReplyWithError(s, m.ChannelID, botErr.UserMessage)
	} else {
		// Unexpected error - log full details but show generic message to user
		log.WithFields(log.Fields{
			"user_id": m.Author.ID,
			"command": command,
			"error":   err.Error(),
		}).Error("Unexpected error in bot command")

		ReplyWithError(s, m.ChannelID, "Something went wrong. Please try again later.")
	}
}
