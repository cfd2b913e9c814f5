package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrocycle/agrocycle/internal/model"
)

// roleChoice is a role selector entry: which role, and whether the
// auth screen should open in register mode.
type roleChoice struct {
	title       string
	caption     string
	role        model.Role
	registering bool
}

type roleSelectModel struct {
	choices []roleChoice
	cursor  int
}

func newRoleSelect() *roleSelectModel {
	return &roleSelectModel{
		choices: []roleChoice{
			{title: "Login Cluster", caption: "Existing Farmer Groups", role: model.RoleFarmer},
			{title: "Buyer Portal", caption: "Industrial Sourcing", role: model.RoleBuyer},
			{title: "Register New Cluster", caption: "Start a new Bio-Hub", role: model.RoleFarmer, registering: true},
		},
	}
}

// update returns the confirmed choice, if any.
func (m *roleSelectModel) update(msg tea.Msg) (roleChoice, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return roleChoice{}, false
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		return m.choices[m.cursor], true
	}

	return roleChoice{}, false
}

func (m *roleSelectModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AgroCycle") + "\n")
	b.WriteString(subtleStyle.Render("Circular Bio-Economy") + "\n\n")

	for i, c := range m.choices {
		cursor := "  "
		title := c.title
		if i == m.cursor {
			cursor = "> "
			title = selectedStyle.Render(title)
		}
		b.WriteString(cursor + title + "\n")
		b.WriteString("    " + subtleStyle.Render(c.caption) + "\n")
	}

	b.WriteString("\n" + subtleStyle.Render("↑/↓ select · enter confirm · ctrl+c quit"))

	return panelStyle.Render(b.String())
}
