// Package assistant is the bridge to the external text-completion
// service. It keeps no state beyond a linear transcript per chat.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agrocycle/agrocycle/internal/model"
)

// Speaker identifies who produced a transcript message.
type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerModel Speaker = "model"
)

// Message is one entry in the linear transcript.
type Message struct {
	Speaker Speaker
	Text    string
}

// ErrBusy is returned when a send arrives while a call is outstanding;
// the send control is disabled until the pending call resolves.
var ErrBusy = errors.New("assistant request already outstanding")

// ErrEmpty is returned for blank input.
var ErrEmpty = errors.New("empty message")

// Shown in place of a reply when the completion call fails. Matches the
// inline recovery behavior: the failure is surfaced in the transcript,
// never fatal.
const failurePlaceholder = "Bio-intelligence core is recalibrating. Try again shortly."

// Shown when the service resolves with no text at all.
const emptyReplyPlaceholder = "Connection glitch in the network."

// Chat is a per-role transcript over a Completer. It is driven from a
// single goroutine: Begin marks the request pending, the (blocking)
// Request call may run elsewhere, and Resolve applies the outcome.
type Chat struct {
	completer Completer
	role      model.Role
	messages  []Message
	pending   bool
}

// NewChat seeds the transcript with the per-role greeting.
func NewChat(completer Completer, role model.Role) *Chat {
	return &Chat{
		completer: completer,
		role:      role,
		messages:  []Message{{Speaker: SpeakerModel, Text: greeting(role)}},
	}
}

// Messages returns a copy of the transcript.
func (c *Chat) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Pending reports whether a completion call is outstanding.
func (c *Chat) Pending() bool { return c.pending }

// Begin appends the user message and marks the chat pending. It fails
// if another request is outstanding or the input is blank.
func (c *Chat) Begin(text string) error {
	if c.pending {
		return ErrBusy
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmpty
	}

	c.messages = append(c.messages, Message{Speaker: SpeakerUser, Text: text})
	c.pending = true
	return nil
}

// Request performs the blocking completion call for a begun message.
// Safe to run off the driving goroutine; it touches no chat state.
func (c *Chat) Request(ctx context.Context, text string) (string, error) {
	return c.completer.Complete(ctx, Instruction(c.role), text)
}

// Resolve applies the outcome of the outstanding call to the
// transcript. A failed or empty reply becomes a placeholder message.
func (c *Chat) Resolve(reply string, err error) Message {
	switch {
	case err != nil:
		reply = failurePlaceholder
	case reply == "":
		reply = emptyReplyPlaceholder
	}

	msg := Message{Speaker: SpeakerModel, Text: reply}
	c.messages = append(c.messages, msg)
	c.pending = false
	return msg
}

// Send is the synchronous convenience path: Begin, Request, Resolve.
func (c *Chat) Send(ctx context.Context, text string) (Message, error) {
	if err := c.Begin(text); err != nil {
		return Message{}, err
	}

	reply, err := c.Request(ctx, text)
	return c.Resolve(reply, err), nil
}

// Instruction is the fixed per-role system instruction sent with every
// completion request.
func Instruction(role model.Role) string {
	return fmt.Sprintf("Nature-themed authoritative expert on bio-economy for %ss. Deeply knowledgeable on agriculture, logistics, and carbon offsets.", role)
}

func greeting(role model.Role) string {
	topic := "industrial biomass procurement"
	if role == model.RoleFarmer {
		topic = "cluster residue management"
	}
	return fmt.Sprintf("Greetings! I'm the AgroCycle Intelligence Core. How can I optimize your %s operations today?", topic)
}
