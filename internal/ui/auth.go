package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrocycle/agrocycle/internal/apperr"
	"github.com/agrocycle/agrocycle/internal/model"
	"github.com/agrocycle/agrocycle/internal/nav"
	"github.com/agrocycle/agrocycle/internal/service"
)

// The original surfaces one generic line for both unknown email and
// role mismatch; the distinct kinds exist below the presentation.
const invalidCredentialsText = "Invalid credentials or role mismatch."

const emailExistsText = "Email already exists in our ecosystem."

type authField struct {
	label string
	input textinput.Model
}

// authModel is the login/register form for a selected role. The form
// collects a password, but authentication never verifies it.
type authModel struct {
	role    model.Role
	mode    nav.AuthMode
	fields  []authField
	focus   int
	errText string
}

func newAuthPage(role model.Role, mode nav.AuthMode) *authModel {
	m := &authModel{role: role, mode: mode}

	if mode == nav.ModeRegister {
		m.addField("Personal Name", "John Doe", 0)
		if role == model.RoleFarmer {
			m.addField("Cluster Identity", "Green Valley Punjab", 0)
		}
	}
	m.addField("Email Address", "manager@agrocycle.com", 0)
	m.addField("Access Key", "••••••••", textinput.EchoPassword)

	m.fields[0].input.Focus()
	return m
}

func (m *authModel) addField(label, placeholder string, echo textinput.EchoMode) {
	in := textinput.New()
	in.Placeholder = placeholder
	in.EchoMode = echo
	in.CharLimit = 120
	m.fields = append(m.fields, authField{label: label, input: in})
}

func (m *authModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m *authModel) update(a *App, msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return a, func() tea.Msg { return backMsg{} }
		case "ctrl+t":
			return a, func() tea.Msg { return toggleModeMsg{} }
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return a, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return a, nil
		case "enter":
			if m.focus < len(m.fields)-1 {
				m.setFocus(m.focus + 1)
				return a, nil
			}
			return m.submit(a)
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return a, cmd
}

func (m *authModel) setFocus(i int) {
	if i < 0 {
		i = len(m.fields) - 1
	}
	if i >= len(m.fields) {
		i = 0
	}
	m.fields[m.focus].input.Blur()
	m.focus = i
	m.fields[m.focus].input.Focus()
}

func (m *authModel) value(label string) string {
	for _, f := range m.fields {
		if f.label == label {
			return strings.TrimSpace(f.input.Value())
		}
	}
	return ""
}

func (m *authModel) submit(a *App) (tea.Model, tea.Cmd) {
	m.errText = ""

	var (
		user model.User
		err  error
	)
	if m.mode == nav.ModeLogin {
		user, err = a.auth.Login(a.ctx, m.value("Email Address"), m.role)
	} else {
		user, err = a.auth.Register(a.ctx, service.RegisterParams{
			Name:        m.value("Personal Name"),
			Email:       m.value("Email Address"),
			Role:        m.role,
			ClusterName: m.value("Cluster Identity"),
		})
	}

	if err != nil {
		m.errText = authErrorText(err)
		return a, nil
	}

	return a, func() tea.Msg { return authSuccessMsg{user: user} }
}

func authErrorText(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindUserNotFound, apperr.KindRoleMismatch, apperr.KindInvalidCredentials:
		return invalidCredentialsText
	case apperr.KindEmailExists:
		return emailExistsText
	}

	var e *apperr.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

func marketErrorText(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindListingUnavailable:
		return "That stock was just claimed by another buyer."
	}

	var e *apperr.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

func (m *authModel) view() string {
	var b strings.Builder

	heading := "Welcome Back"
	if m.mode == nav.ModeRegister {
		heading = "Join Supply"
		if m.role == model.RoleFarmer {
			heading = "Cluster Startup"
		}
	}
	b.WriteString(titleStyle.Render(heading) + "\n")

	tagline := "Securing bulk biomass for industrial scale."
	if m.role == model.RoleFarmer {
		tagline = "Cultivating wealth from harvest residue."
	}
	b.WriteString(subtleStyle.Render(tagline) + "\n\n")

	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText) + "\n\n")
	}

	for _, f := range m.fields {
		b.WriteString(labelStyle.Render(f.label) + "\n")
		b.WriteString(f.input.View() + "\n")
	}

	toggle := "Need a new portal? Register here."
	action := "authenticate"
	if m.mode == nav.ModeRegister {
		toggle = "Already have access? Log in."
		action = "launch profile"
	}
	b.WriteString("\n" + subtleStyle.Render(toggle+" (ctrl+t)") + "\n")
	b.WriteString(subtleStyle.Render("enter " + action + " · tab next field · esc back"))

	return panelStyle.Render(b.String())
}
