package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrocycle/agrocycle/internal/assistant"
	"github.com/agrocycle/agrocycle/internal/model"
)

// chatModel renders one assistant transcript. While a call is
// outstanding the input is disabled and a pending indicator runs; there
// is no cancellation and no timeout.
type chatModel struct {
	ctx   context.Context
	chat  *assistant.Chat
	input textinput.Model
	spin  spinner.Model
}

func newChatModel(ctx context.Context, completer assistant.Completer, role model.Role) *chatModel {
	in := textinput.New()
	in.Placeholder = "Query the Bio-Intelligence Hub..."
	in.CharLimit = 500
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &chatModel{
		ctx:   ctx,
		chat:  assistant.NewChat(completer, role),
		input: in,
		spin:  sp,
	}
}

func (m *chatModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m.send()
		}

	case chatReplyMsg:
		m.chat.Resolve(msg.reply, msg.err)
		return nil

	case spinner.TickMsg:
		if !m.chat.Pending() {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd
	}

	if m.chat.Pending() {
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *chatModel) send() tea.Cmd {
	text := m.input.Value()
	if err := m.chat.Begin(text); err != nil {
		return nil
	}
	m.input.SetValue("")

	request := func() tea.Msg {
		reply, err := m.chat.Request(m.ctx, text)
		return chatReplyMsg{reply: reply, err: err}
	}

	return tea.Batch(request, m.spin.Tick)
}

func (m *chatModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AgroCycle Intelligence") + "\n\n")

	for _, msg := range m.chat.Messages() {
		if msg.Speaker == assistant.SpeakerUser {
			b.WriteString("  " + userBubbleStyle.Render(msg.Text) + "\n")
		} else {
			b.WriteString(modelBubbleStyle.Render(msg.Text) + "\n")
		}
	}

	b.WriteString("\n")
	if m.chat.Pending() {
		b.WriteString(m.spin.View() + subtleStyle.Render(" Processing Neural Data...") + "\n")
	} else {
		b.WriteString(m.input.View() + "\n")
	}

	return b.String()
}
