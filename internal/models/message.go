// Package models defines the conversation data types shared by the client.
package models

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Advisor"
	default:
		return string(s)
	}
}

// Known source values attached to advisor answers.
const (
	// SourceCompanyPolicy marks answers grounded in company policy documents.
	SourceCompanyPolicy = "Company Policy"

	// SourceStandards marks answers grounded in the ISO/NIST standards corpus.
	SourceStandards = "ISO/NIST Standards"

	// SourceError is the sentinel attached to synthetic failure messages.
	// Never shown as a label.
	SourceError = "error"
)

// Message is one turn in the conversation. Messages are immutable once
// created and only ever appended to a conversation.
type Message struct {
	Text   string
	Sender Sender
	Source string
}

// NewUserMessage creates a user message with the given text.
func NewUserMessage(text string) Message {
	return Message{Text: text, Sender: SenderUser}
}

// NewBotMessage creates a bot message with the given text and source.
func NewBotMessage(text, source string) Message {
	return Message{Text: text, Sender: SenderBot, Source: source}
}

// DisplayableSource reports whether the message carries a source label that
// should be shown to the user. Only the two recognized provenance labels
// qualify; anything else (including the error sentinel) is suppressed.
func (m Message) DisplayableSource() bool {
	if m.Sender != SenderBot {
		return false
	}
	switch m.Source {
	case SourceCompanyPolicy, SourceStandards:
		return true
	default:
		return false
	}
}
