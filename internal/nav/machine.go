// Package nav holds the view-navigation state machine: role selection,
// authentication, and the role-specific dashboards. It is independent
// of any rendering concern.
package nav

import (
	"fmt"

	"github.com/agrocycle/agrocycle/internal/model"
)

// View is a top-level navigation state.
type View int

const (
	ViewRoleSelection View = iota
	ViewAuthenticating
	ViewFarmerDashboard
	ViewBuyerDashboard
)

func (v View) String() string {
	switch v {
	case ViewRoleSelection:
		return "role_selection"
	case ViewAuthenticating:
		return "authenticating"
	case ViewFarmerDashboard:
		return "farmer_dashboard"
	case ViewBuyerDashboard:
		return "buyer_dashboard"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// AuthMode distinguishes login from registration while authenticating.
type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeRegister
)

// Event is a navigation transition trigger.
type Event interface{ isNavEvent() }

// SelectRole leaves role selection for the auth screen.
type SelectRole struct {
	Role        model.Role
	Registering bool
}

// Back abandons the auth screen, discarding in-progress form state.
type Back struct{}

// ToggleMode flips the auth screen between login and registration for
// the already-selected role.
type ToggleMode struct{}

// AuthSuccess carries the authenticated user onto their dashboard.
type AuthSuccess struct {
	User model.User
}

// Logout returns to role selection from either dashboard.
type Logout struct{}

func (SelectRole) isNavEvent()  {}
func (Back) isNavEvent()        {}
func (ToggleMode) isNavEvent()  {}
func (AuthSuccess) isNavEvent() {}
func (Logout) isNavEvent()      {}

// Machine sequences RoleSelection -> Authenticating -> dashboard. The
// zero value is not usable; construct with New or NewRestored.
type Machine struct {
	view View
	role model.Role
	mode AuthMode
	user model.User
}

// New returns a machine at role selection.
func New() *Machine {
	return &Machine{view: ViewRoleSelection, role: model.RoleNone}
}

// NewRestored returns a machine already at the dashboard matching the
// restored user's role, bypassing role selection and authentication.
func NewRestored(user model.User) (*Machine, error) {
	m := &Machine{role: user.Role, user: user}
	switch user.Role {
	case model.RoleFarmer:
		m.view = ViewFarmerDashboard
	case model.RoleBuyer:
		m.view = ViewBuyerDashboard
	default:
		return nil, fmt.Errorf("cannot restore session for role %q", user.Role)
	}
	return m, nil
}

// View returns the active top-level view.
func (m *Machine) View() View { return m.view }

// Role returns the role selected for authentication, or the signed-in
// user's role on a dashboard. RoleNone at role selection.
func (m *Machine) Role() model.Role { return m.role }

// Mode returns the auth mode; meaningful only while authenticating.
func (m *Machine) Mode() AuthMode { return m.mode }

// User returns the signed-in user; meaningful only on a dashboard.
func (m *Machine) User() model.User { return m.user }

// Transition applies an event. An event that is not legal in the
// current view is rejected and the machine is left unchanged.
func (m *Machine) Transition(event Event) error {
	switch e := event.(type) {
	case SelectRole:
		if m.view != ViewRoleSelection {
			return fmt.Errorf("cannot select role from %s", m.view)
		}
		if !e.Role.Valid() {
			return fmt.Errorf("cannot authenticate as role %q", e.Role)
		}
		m.role = e.Role
		m.mode = ModeLogin
		if e.Registering {
			m.mode = ModeRegister
		}
		m.view = ViewAuthenticating
		return nil

	case Back:
		if m.view != ViewAuthenticating {
			return fmt.Errorf("cannot go back from %s", m.view)
		}
		m.view = ViewRoleSelection
		m.role = model.RoleNone
		m.mode = ModeLogin
		return nil

	case ToggleMode:
		if m.view != ViewAuthenticating {
			return fmt.Errorf("cannot switch auth mode from %s", m.view)
		}
		if m.mode == ModeLogin {
			m.mode = ModeRegister
		} else {
			m.mode = ModeLogin
		}
		return nil

	case AuthSuccess:
		if m.view != ViewAuthenticating {
			return fmt.Errorf("cannot complete authentication from %s", m.view)
		}
		switch e.User.Role {
		case model.RoleFarmer:
			m.view = ViewFarmerDashboard
		case model.RoleBuyer:
			m.view = ViewBuyerDashboard
		default:
			return fmt.Errorf("authenticated user has no persisted role")
		}
		m.user = e.User
		m.role = e.User.Role
		return nil

	case Logout:
		if m.view != ViewFarmerDashboard && m.view != ViewBuyerDashboard {
			return fmt.Errorf("cannot log out from %s", m.view)
		}
		*m = *New()
		return nil
	}

	return fmt.Errorf("unknown navigation event %T", event)
}
