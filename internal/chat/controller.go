// Package chat holds the conversation state machine driving the client.
//
// The controller is deliberately synchronous and UI-agnostic: the TUI and
// the one-shot command own the actual network call and report its outcome
// back through Resolve or Fail.
package chat

import (
	"strings"

	"policyadvisor/internal/models"
)

// FallbackAnswer is the fixed text shown when a request fails for any
// reason (network failure, non-2xx status, malformed body).
const FallbackAnswer = "Sorry, I couldn't reach the advisor service. Please try again."

// State is the request lifecycle state.
type State int

const (
	// StateIdle means no request is in flight.
	StateIdle State = iota

	// StateAwaiting means exactly one request is in flight.
	StateAwaiting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaiting:
		return "awaiting"
	default:
		return "unknown"
	}
}

// Controller owns the append-only conversation and the in-flight guard.
// It is not safe for concurrent use; the bubbletea update loop (or the
// one-shot command) is the single caller.
type Controller struct {
	messages []models.Message
	state    State
}

// NewController creates an empty conversation in the idle state.
func NewController() *Controller {
	return &Controller{}
}

// Submit attempts to start a request for the given input text.
//
// When the trimmed input is empty, or a request is already in flight, the
// submission is silently ignored and ok is false. Otherwise the user
// message is appended (raw text), the controller enters the awaiting
// state, and the question to send is returned. The caller must issue
// exactly one request and settle it with Resolve or Fail.
func (c *Controller) Submit(input string) (question string, ok bool) {
	if strings.TrimSpace(input) == "" {
		return "", false
	}
	if c.state != StateIdle {
		return "", false
	}

	c.messages = append(c.messages, models.NewUserMessage(input))
	c.state = StateAwaiting
	return input, true
}

// Resolve settles the in-flight request with a successful answer.
func (c *Controller) Resolve(text, source string) {
	c.messages = append(c.messages, models.NewBotMessage(text, source))
	c.state = StateIdle
}

// Fail settles the in-flight request with the fixed fallback message.
// The synthetic message carries the error sentinel source, which never
// matches the display allow-list.
func (c *Controller) Fail() {
	c.messages = append(c.messages, models.NewBotMessage(FallbackAnswer, models.SourceError))
	c.state = StateIdle
}

// InFlight reports whether a request is currently awaiting a response.
func (c *Controller) InFlight() bool {
	return c.state == StateAwaiting
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Messages returns a copy of the conversation in display order.
func (c *Controller) Messages() []models.Message {
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the conversation.
func (c *Controller) Len() int {
	return len(c.messages)
}
