package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocycle/agrocycle/internal/model"
)

func TestMachine_LoginFlow(t *testing.T) {
	m := New()
	assert.Equal(t, ViewRoleSelection, m.View())
	assert.Equal(t, model.RoleNone, m.Role())

	require.NoError(t, m.Transition(SelectRole{Role: model.RoleFarmer}))
	assert.Equal(t, ViewAuthenticating, m.View())
	assert.Equal(t, model.RoleFarmer, m.Role())
	assert.Equal(t, ModeLogin, m.Mode())

	user := model.User{ID: "u1", Role: model.RoleFarmer}
	require.NoError(t, m.Transition(AuthSuccess{User: user}))
	assert.Equal(t, ViewFarmerDashboard, m.View())
	assert.Equal(t, user, m.User())
}

func TestMachine_RegisterFlow(t *testing.T) {
	m := New()

	require.NoError(t, m.Transition(SelectRole{Role: model.RoleFarmer, Registering: true}))
	assert.Equal(t, ModeRegister, m.Mode())
}

func TestMachine_ToggleMode(t *testing.T) {
	m := New()

	require.NoError(t, m.Transition(SelectRole{Role: model.RoleBuyer}))
	assert.Equal(t, ModeLogin, m.Mode())

	require.NoError(t, m.Transition(ToggleMode{}))
	assert.Equal(t, ModeRegister, m.Mode())
	assert.Equal(t, ViewAuthenticating, m.View())
	assert.Equal(t, model.RoleBuyer, m.Role())

	require.NoError(t, m.Transition(ToggleMode{}))
	assert.Equal(t, ModeLogin, m.Mode())
}

func TestMachine_ToggleModeOutsideAuth(t *testing.T) {
	m := New()
	require.Error(t, m.Transition(ToggleMode{}))

	require.NoError(t, m.Transition(SelectRole{Role: model.RoleFarmer}))
	require.NoError(t, m.Transition(AuthSuccess{User: model.User{ID: "u1", Role: model.RoleFarmer}}))
	require.Error(t, m.Transition(ToggleMode{}))
}

func TestMachine_BuyerDashboard(t *testing.T) {
	m := New()

	require.NoError(t, m.Transition(SelectRole{Role: model.RoleBuyer}))
	require.NoError(t, m.Transition(AuthSuccess{User: model.User{ID: "b1", Role: model.RoleBuyer}}))
	assert.Equal(t, ViewBuyerDashboard, m.View())
}

func TestMachine_BackDiscardsSelection(t *testing.T) {
	m := New()

	require.NoError(t, m.Transition(SelectRole{Role: model.RoleBuyer}))
	require.NoError(t, m.Transition(Back{}))
	assert.Equal(t, ViewRoleSelection, m.View())
	assert.Equal(t, model.RoleNone, m.Role())
}

func TestMachine_Logout(t *testing.T) {
	m := New()

	require.NoError(t, m.Transition(SelectRole{Role: model.RoleFarmer}))
	require.NoError(t, m.Transition(AuthSuccess{User: model.User{ID: "u1", Role: model.RoleFarmer}}))
	require.NoError(t, m.Transition(Logout{}))
	assert.Equal(t, ViewRoleSelection, m.View())
	assert.Equal(t, model.RoleNone, m.Role())
}

func TestMachine_Restored(t *testing.T) {
	m, err := NewRestored(model.User{ID: "u1", Role: model.RoleFarmer})
	require.NoError(t, err)
	assert.Equal(t, ViewFarmerDashboard, m.View())

	m, err = NewRestored(model.User{ID: "b1", Role: model.RoleBuyer})
	require.NoError(t, err)
	assert.Equal(t, ViewBuyerDashboard, m.View())

	_, err = NewRestored(model.User{ID: "x", Role: model.RoleNone})
	require.Error(t, err)
}

func TestMachine_InvalidTransitions(t *testing.T) {
	m := New()

	// Nothing but role selection is legal at the start.
	assert.Error(t, m.Transition(Back{}))
	assert.Error(t, m.Transition(Logout{}))
	assert.Error(t, m.Transition(AuthSuccess{User: model.User{Role: model.RoleFarmer}}))
	assert.Error(t, m.Transition(SelectRole{Role: model.RoleNone}))
	assert.Equal(t, ViewRoleSelection, m.View())

	require.NoError(t, m.Transition(SelectRole{Role: model.RoleFarmer}))
	assert.Error(t, m.Transition(SelectRole{Role: model.RoleBuyer}))
	assert.Error(t, m.Transition(Logout{}))
	assert.Error(t, m.Transition(AuthSuccess{User: model.User{Role: model.RoleNone}}))
	assert.Equal(t, ViewAuthenticating, m.View())

	require.NoError(t, m.Transition(AuthSuccess{User: model.User{ID: "u1", Role: model.RoleFarmer}}))
	assert.Error(t, m.Transition(Back{}))
	assert.Error(t, m.Transition(SelectRole{Role: model.RoleBuyer}))
	assert.Equal(t, ViewFarmerDashboard, m.View())
}
