package chat

import (
	"testing"

	"policyadvisor/internal/models"
)

func TestSubmitEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"spaces only", "   "},
		{"tabs and newlines", "\t\n  \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()

			question, ok := c.Submit(tt.input)
			if ok {
				t.Errorf("Submit(%q) accepted, want rejected", tt.input)
			}
			if question != "" {
				t.Errorf("Submit(%q) returned question %q, want empty", tt.input, question)
			}
			if c.Len() != 0 {
				t.Errorf("conversation has %d messages, want 0", c.Len())
			}
			if c.InFlight() {
				t.Error("controller in flight after rejected submit")
			}
		})
	}
}

func TestSubmitAppendsUserMessage(t *testing.T) {
	c := NewController()

	if c.InFlight() {
		t.Fatal("new controller should start idle")
	}

	question, ok := c.Submit("How do I secure my account?")
	if !ok {
		t.Fatal("Submit rejected valid input")
	}
	if question != "How do I secure my account?" {
		t.Errorf("question = %q, want original input", question)
	}

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("conversation has %d messages, want 1", len(msgs))
	}
	if msgs[0].Sender != models.SenderUser {
		t.Errorf("sender = %q, want user", msgs[0].Sender)
	}
	if msgs[0].Text != "How do I secure my account?" {
		t.Errorf("text = %q, want raw input", msgs[0].Text)
	}
	if !c.InFlight() {
		t.Error("controller should be awaiting after submit")
	}
	if c.State() != StateAwaiting {
		t.Errorf("state = %v, want awaiting", c.State())
	}
}

func TestSubmitWhileAwaitingIsRejected(t *testing.T) {
	c := NewController()

	if _, ok := c.Submit("first question"); !ok {
		t.Fatal("first submit rejected")
	}

	question, ok := c.Submit("second question")
	if ok {
		t.Error("second submit accepted while awaiting, want rejected")
	}
	if question != "" {
		t.Errorf("second submit returned question %q, want empty", question)
	}
	if c.Len() != 1 {
		t.Errorf("conversation has %d messages, want 1", c.Len())
	}
}

func TestResolveAppendsAnswerAndReturnsToIdle(t *testing.T) {
	c := NewController()
	c.Submit("How do I secure my account?")
	c.Resolve("Use 2FA.", models.SourceCompanyPolicy)

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("conversation has %d messages, want 2", len(msgs))
	}
	if msgs[1].Sender != models.SenderBot {
		t.Errorf("sender = %q, want bot", msgs[1].Sender)
	}
	if msgs[1].Text != "Use 2FA." {
		t.Errorf("text = %q, want answer", msgs[1].Text)
	}
	if msgs[1].Source != models.SourceCompanyPolicy {
		t.Errorf("source = %q, want %q", msgs[1].Source, models.SourceCompanyPolicy)
	}
	if c.InFlight() {
		t.Error("controller should be idle after resolve")
	}
}

func TestFailAppendsFallbackMessage(t *testing.T) {
	c := NewController()
	c.Submit("test")
	c.Fail()

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("conversation has %d messages, want 2", len(msgs))
	}
	if msgs[1].Text != FallbackAnswer {
		t.Errorf("text = %q, want fixed fallback text", msgs[1].Text)
	}
	if msgs[1].Source != models.SourceError {
		t.Errorf("source = %q, want error sentinel", msgs[1].Source)
	}
	if msgs[1].DisplayableSource() {
		t.Error("error sentinel should never be displayable")
	}
	if c.InFlight() {
		t.Error("controller should be idle after failure")
	}
}

func TestInFlightNeverLeftTrue(t *testing.T) {
	c := NewController()

	if c.InFlight() {
		t.Error("in flight before first submit")
	}

	c.Submit("one")
	c.Resolve("answer", "")
	if c.InFlight() {
		t.Error("in flight after successful settle")
	}

	c.Submit("two")
	c.Fail()
	if c.InFlight() {
		t.Error("in flight after failed settle")
	}
}

func TestSubmitAfterSettle(t *testing.T) {
	c := NewController()

	c.Submit("first")
	c.Fail()

	if _, ok := c.Submit("second"); !ok {
		t.Error("submit rejected after previous request settled")
	}
	if c.Len() != 3 {
		t.Errorf("conversation has %d messages, want 3", c.Len())
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	c := NewController()
	c.Submit("hello")

	msgs := c.Messages()
	msgs[0].Text = "mutated"

	if c.Messages()[0].Text != "hello" {
		t.Error("mutating the returned slice changed the conversation")
	}
}

func TestStateString(t *testing.T) {
	if StateIdle.String() != "idle" {
		t.Errorf("StateIdle.String() = %q", StateIdle.String())
	}
	if StateAwaiting.String() != "awaiting" {
		t.Errorf("StateAwaiting.String() = %q", StateAwaiting.String())
	}
}
