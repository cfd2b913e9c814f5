package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agrocycle/agrocycle/internal/apperr"
	"github.com/agrocycle/agrocycle/internal/mocks"
	"github.com/agrocycle/agrocycle/internal/model"
	"github.com/agrocycle/agrocycle/internal/testutil"
)

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	stored := model.User{ID: "u1", Email: "a@agro.in", Role: model.RoleFarmer, ClusterName: "Green Valley"}
	userStore.On("GetByEmail", mock.Anything, "a@agro.in").Return(stored, nil)

	a := NewAuth(userStore, sessionStore, tokMan, log)

	user, err := a.Login(ctx, "a@agro.in", model.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "missing@agro.in").Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, &mocks.SessionStore{}, &mocks.TokenManager{}, log)

	_, err := a.Login(ctx, "missing@agro.in", model.RoleBuyer)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUserNotFound, apperr.KindOf(err))
}

func TestAuth_Login_RoleMismatch(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	log := testutil.MakeNoopLogger()

	stored := model.User{ID: "u1", Email: "a@agro.in", Role: model.RoleFarmer}
	userStore.On("GetByEmail", mock.Anything, "a@agro.in").Return(stored, nil)

	a := NewAuth(userStore, &mocks.SessionStore{}, &mocks.TokenManager{}, log)

	// Same email, wrong side of the marketplace.
	_, err := a.Login(ctx, "a@agro.in", model.RoleBuyer)
	require.Error(t, err)
	assert.Equal(t, apperr.KindRoleMismatch, apperr.KindOf(err))
}

func TestAuth_Login_RequiresRole(t *testing.T) {
	a := NewAuth(&mocks.UserStore{}, &mocks.SessionStore{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	_, err := a.Login(context.Background(), "a@agro.in", model.RoleNone)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))
}

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	log := testutil.MakeNoopLogger()

	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.ID != "" && u.Email == "new@agro.in" && u.Role == model.RoleFarmer && u.ClusterName == "Green Valley Punjab"
	})).Return(model.User{ID: "generated", Email: "new@agro.in", Role: model.RoleFarmer}, nil)

	a := NewAuth(userStore, &mocks.SessionStore{}, &mocks.TokenManager{}, log)

	user, err := a.Register(ctx, RegisterParams{Name: "Jas", Email: "new@agro.in", Role: model.RoleFarmer, ClusterName: "Green Valley Punjab"})
	require.NoError(t, err)
	assert.Equal(t, "generated", user.ID)
	userStore.AssertExpectations(t)
}

func TestAuth_Register_BuyerDropsClusterName(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Role == model.RoleBuyer && u.ClusterName == ""
	})).Return(model.User{ID: "u2", Role: model.RoleBuyer}, nil)

	a := NewAuth(userStore, &mocks.SessionStore{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	_, err := a.Register(ctx, RegisterParams{Name: "Mill Co", Email: "mill@agro.in", Role: model.RoleBuyer, ClusterName: "ignored"})
	require.NoError(t, err)
	userStore.AssertExpectations(t)
}

func TestAuth_Register_EmailExists(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, apperr.NewEmailExists("dup@agro.in"))

	a := NewAuth(userStore, &mocks.SessionStore{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	_, err := a.Register(ctx, RegisterParams{Name: "Dup", Email: "dup@agro.in", Role: model.RoleBuyer})
	require.Error(t, err)
	assert.Equal(t, apperr.KindEmailExists, apperr.KindOf(err))
}

func TestAuth_Register_Validation(t *testing.T) {
	a := NewAuth(&mocks.UserStore{}, &mocks.SessionStore{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	_, err := a.Register(context.Background(), RegisterParams{Name: "", Email: "x@agro.in", Role: model.RoleFarmer})
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))

	_, err = a.Register(context.Background(), RegisterParams{Name: "X", Email: "  ", Role: model.RoleFarmer})
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))

	_, err = a.Register(context.Background(), RegisterParams{Name: "X", Email: "x@agro.in", Role: model.RoleNone})
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))
}

func TestAuth_Register_FarmerRequiresClusterName(t *testing.T) {
	a := NewAuth(&mocks.UserStore{}, &mocks.SessionStore{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	_, err := a.Register(context.Background(), RegisterParams{Name: "Jas", Email: "new@agro.in", Role: model.RoleFarmer, ClusterName: "  "})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationFailed, apperr.KindOf(err))

	// Buyers have no cluster, so the field is not demanded of them.
	userStore := &mocks.UserStore{}
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{ID: "u3", Role: model.RoleBuyer}, nil)
	b := NewAuth(userStore, &mocks.SessionStore{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	_, err = b.Register(context.Background(), RegisterParams{Name: "Mill Co", Email: "mill2@agro.in", Role: model.RoleBuyer})
	require.NoError(t, err)
}

func TestAuth_PersistSession(t *testing.T) {
	ctx := context.Background()
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}

	user := model.User{ID: "u1", Role: model.RoleFarmer}
	tokMan.On("GenerateSessionToken", "u1", model.RoleFarmer).Return("tok", nil)
	sessionStore.On("Put", mock.Anything, model.Session{User: user, Token: "tok"}).Return(nil)

	a := NewAuth(&mocks.UserStore{}, sessionStore, tokMan, testutil.MakeNoopLogger())

	require.NoError(t, a.PersistSession(ctx, user))
	sessionStore.AssertExpectations(t)
}

func TestAuth_RestoreSession_Success(t *testing.T) {
	ctx := context.Background()
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}

	user := model.User{ID: "u1", Email: "a@agro.in", Role: model.RoleFarmer}
	sessionStore.On("Get", mock.Anything).Return(model.Session{User: user, Token: "tok"}, nil)
	tokMan.On("ParseSessionToken", "tok").Return("u1", model.RoleFarmer, nil)

	a := NewAuth(&mocks.UserStore{}, sessionStore, tokMan, testutil.MakeNoopLogger())

	got, ok := a.RestoreSession(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestAuth_RestoreSession_NoRecord(t *testing.T) {
	sessionStore := &mocks.SessionStore{}
	sessionStore.On("Get", mock.Anything).Return(model.Session{}, model.ErrNotFound)

	a := NewAuth(&mocks.UserStore{}, sessionStore, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	_, ok := a.RestoreSession(context.Background())
	assert.False(t, ok)
}

func TestAuth_RestoreSession_TokenMismatch(t *testing.T) {
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}

	user := model.User{ID: "u1", Role: model.RoleFarmer}
	sessionStore.On("Get", mock.Anything).Return(model.Session{User: user, Token: "tok"}, nil)
	tokMan.On("ParseSessionToken", "tok").Return("someone-else", model.RoleFarmer, nil)

	a := NewAuth(&mocks.UserStore{}, sessionStore, tokMan, testutil.MakeNoopLogger())

	_, ok := a.RestoreSession(context.Background())
	assert.False(t, ok)
}

func TestAuth_EndSession(t *testing.T) {
	sessionStore := &mocks.SessionStore{}
	sessionStore.On("Delete", mock.Anything).Return(nil)

	a := NewAuth(&mocks.UserStore{}, sessionStore, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	require.NoError(t, a.EndSession(context.Background()))
	sessionStore.AssertExpectations(t)
}
