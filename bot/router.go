package bot

import "strings"

// MessageKind distinguishes prefixed commands from ordinary chat messages.
type MessageKind int

const (
	KindPlainText MessageKind = iota
	KindCommand
)

// InboundMessage is the classification of one incoming chat message. Plain
// text keeps the original body for the passive listeners (XP accrual, game
// guesses); commands carry the lowercased verb and its raw arguments.
type InboundMessage struct {
	Kind    MessageKind
	Command string
	Args    []string
	Body    string
}

// ClassifyMessage splits a message into command and arguments when it starts
// with the configured prefix. The verb is case-insensitive; arguments keep
// their case. A bare prefix with nothing after it is ordinary text.
func ClassifyMessage(content, prefix string) InboundMessage {
	if prefix != "" && strings.HasPrefix(content, prefix) {
		fields := strings.Fields(content[len(prefix):])
		if len(fields) > 0 {
			return InboundMessage{
				Kind:    KindCommand,
				Command: strings.ToLower(fields[0]),
				Args:    fields[1:],
				Body:    content,
			}
		}
	}
	return InboundMessage{Kind: KindPlainText, Body: content}
}
