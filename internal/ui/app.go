// Package ui is the terminal presentation shell. It renders the view
// the navigation machine selects and delegates every data path to the
// services; no invariant lives here.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrocycle/agrocycle/internal/assistant"
	"github.com/agrocycle/agrocycle/internal/logger"
	"github.com/agrocycle/agrocycle/internal/model"
	"github.com/agrocycle/agrocycle/internal/nav"
	"github.com/agrocycle/agrocycle/internal/service"
)

// App is the root bubbletea model.
type App struct {
	ctx       context.Context
	machine   *nav.Machine
	auth      *service.Auth
	market    *service.Market
	completer assistant.Completer
	logger    *logger.Logger

	roleSel *roleSelectModel
	authPg  *authModel
	farmer  *farmerModel
	buyer   *buyerModel

	quitting bool
}

// Messages emitted by pages toward the root model.
type (
	authSuccessMsg struct{ user model.User }
	backMsg        struct{}
	toggleModeMsg  struct{}
	logoutMsg      struct{}
	chatReplyMsg   struct {
		reply string
		err   error
	}
)

// NewApp builds the shell. When restored is non-nil the machine starts
// directly at the matching dashboard, bypassing role selection.
func NewApp(
	ctx context.Context,
	auth *service.Auth,
	market *service.Market,
	completer assistant.Completer,
	log *logger.Logger,
	restored *model.User,
) (*App, error) {
	a := &App{
		ctx:       ctx,
		auth:      auth,
		market:    market,
		completer: completer,
		logger:    log,
		roleSel:   newRoleSelect(),
	}

	if restored != nil {
		machine, err := nav.NewRestored(*restored)
		if err != nil {
			return nil, err
		}
		a.machine = machine
		a.mountDashboard(*restored)
		return a, nil
	}

	a.machine = nav.New()
	return a, nil
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}

	case authSuccessMsg:
		if err := a.machine.Transition(nav.AuthSuccess{User: msg.user}); err != nil {
			a.logger.Error("navigation rejected auth success", "error", err.Error())
			return a, nil
		}
		if err := a.auth.PersistSession(a.ctx, msg.user); err != nil {
			a.logger.Error("failed to persist session", "error", err.Error())
		}
		a.mountDashboard(msg.user)
		return a, nil

	case backMsg:
		if err := a.machine.Transition(nav.Back{}); err == nil {
			a.authPg = nil
		}
		return a, nil

	case toggleModeMsg:
		if err := a.machine.Transition(nav.ToggleMode{}); err != nil {
			return a, nil
		}
		a.authPg = newAuthPage(a.machine.Role(), a.machine.Mode())
		return a, a.authPg.focusCmd()

	case logoutMsg:
		if err := a.machine.Transition(nav.Logout{}); err != nil {
			return a, nil
		}
		if err := a.auth.EndSession(a.ctx); err != nil {
			a.logger.Error("failed to clear session", "error", err.Error())
		}
		a.farmer = nil
		a.buyer = nil
		a.roleSel = newRoleSelect()
		return a, nil
	}

	switch a.machine.View() {
	case nav.ViewRoleSelection:
		return a.updateRoleSelection(msg)
	case nav.ViewAuthenticating:
		return a.authPg.update(a, msg)
	case nav.ViewFarmerDashboard:
		return a.farmer.update(a, msg)
	case nav.ViewBuyerDashboard:
		return a.buyer.update(a, msg)
	}

	return a, nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.machine.View() {
	case nav.ViewRoleSelection:
		return a.roleSel.view()
	case nav.ViewAuthenticating:
		return a.authPg.view()
	case nav.ViewFarmerDashboard:
		return a.farmer.view()
	case nav.ViewBuyerDashboard:
		return a.buyer.view()
	}

	return ""
}

func (a *App) updateRoleSelection(msg tea.Msg) (tea.Model, tea.Cmd) {
	choice, ok := a.roleSel.update(msg)
	if !ok {
		return a, nil
	}

	event := nav.SelectRole{Role: choice.role, Registering: choice.registering}
	if err := a.machine.Transition(event); err != nil {
		a.logger.Error("navigation rejected role selection", "error", err.Error())
		return a, nil
	}

	a.authPg = newAuthPage(choice.role, a.machine.Mode())
	return a, a.authPg.focusCmd()
}

func (a *App) mountDashboard(user model.User) {
	switch user.Role {
	case model.RoleFarmer:
		a.farmer = newFarmerDashboard(a.ctx, user, a.market, a.completer, a.logger)
	case model.RoleBuyer:
		a.buyer = newBuyerDashboard(a.ctx, user, a.market, a.completer, a.logger)
	}
}
