package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocycle/agrocycle/internal/model"
)

type fakeCompleter struct {
	reply       string
	err         error
	instruction string
	contents    string
	calls       int
}

func (f *fakeCompleter) Complete(_ context.Context, systemInstruction, contents string) (string, error) {
	f.calls++
	f.instruction = systemInstruction
	f.contents = contents
	return f.reply, f.err
}

func TestChat_Greeting(t *testing.T) {
	farmer := NewChat(&fakeCompleter{}, model.RoleFarmer)
	buyer := NewChat(&fakeCompleter{}, model.RoleBuyer)

	require.Len(t, farmer.Messages(), 1)
	assert.Equal(t, SpeakerModel, farmer.Messages()[0].Speaker)
	assert.Contains(t, farmer.Messages()[0].Text, "cluster residue management")
	assert.Contains(t, buyer.Messages()[0].Text, "industrial biomass procurement")
}

func TestChat_Send_Success(t *testing.T) {
	completer := &fakeCompleter{reply: "Bale the paddy straw dry."}
	c := NewChat(completer, model.RoleFarmer)

	msg, err := c.Send(context.Background(), "How should I store straw?")
	require.NoError(t, err)
	assert.Equal(t, SpeakerModel, msg.Speaker)
	assert.Equal(t, "Bale the paddy straw dry.", msg.Text)

	assert.Contains(t, completer.instruction, "farmers")
	assert.Equal(t, "How should I store straw?", completer.contents)

	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, SpeakerUser, msgs[1].Speaker)
	assert.False(t, c.Pending())
}

func TestChat_Send_FailurePlaceholder(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("network down")}
	c := NewChat(completer, model.RoleBuyer)

	msg, err := c.Send(context.Background(), "price trends?")
	require.NoError(t, err)
	assert.Equal(t, failurePlaceholder, msg.Text)
	assert.False(t, c.Pending())
}

func TestChat_Send_EmptyReplyPlaceholder(t *testing.T) {
	c := NewChat(&fakeCompleter{reply: ""}, model.RoleBuyer)

	msg, err := c.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, emptyReplyPlaceholder, msg.Text)
}

func TestChat_PendingGate(t *testing.T) {
	c := NewChat(&fakeCompleter{}, model.RoleFarmer)

	require.NoError(t, c.Begin("first"))
	assert.True(t, c.Pending())

	// The send control is disabled while a call is outstanding.
	assert.ErrorIs(t, c.Begin("second"), ErrBusy)

	c.Resolve("done", nil)
	assert.False(t, c.Pending())
	require.NoError(t, c.Begin("third"))
}

func TestChat_RejectsBlankInput(t *testing.T) {
	completer := &fakeCompleter{}
	c := NewChat(completer, model.RoleFarmer)

	_, err := c.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Zero(t, completer.calls)
	assert.Len(t, c.Messages(), 1)
}
