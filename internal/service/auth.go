package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/agrocycle/agrocycle/internal/apperr"
	"github.com/agrocycle/agrocycle/internal/logger"
	"github.com/agrocycle/agrocycle/internal/model"
)

// Auth owns the identity of the signed-in actor: credential lookup,
// registration, and the persisted session record.
//
// Password is collected by the presentation layer but never stored or
// compared; authentication is an exact (email, role) lookup. Real
// credential verification is an explicit non-goal.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Login resolves a user by exact (email, role) match. A missing email
// and a role mismatch are distinct failures; the presentation layer may
// collapse them into one message.
func (a *Auth) Login(ctx context.Context, email string, role model.Role) (model.User, error) {
	a.logger.Debug("Auth service: login attempt", "email", email, "role", role)

	if !role.Valid() {
		return model.User{}, apperr.NewValidationFailed("a role must be selected before signing in")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: unknown email", "email", email)
		return model.User{}, apperr.NewUserNotFound(email)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.Role != role {
		a.logger.Info("Auth service: role mismatch", "email", email, "want", role, "have", user.Role)
		return model.User{}, apperr.NewRoleMismatch(email)
	}

	return user, nil
}

// RegisterParams contains parameters to register a user. ClusterName is
// only meaningful for farmer-role users and is dropped otherwise.
type RegisterParams struct {
	Name        string
	Email       string
	Role        model.Role
	ClusterName string
	Location    string
}

// Register creates a new user with a fresh id. Email uniqueness across
// all roles is enforced by the store.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	a.logger.Debug("Auth service: registering user", "email", params.Email, "role", params.Role)

	if !params.Role.Valid() {
		return model.User{}, apperr.NewValidationFailed("a role must be selected before registering")
	}
	if strings.TrimSpace(params.Name) == "" {
		return model.User{}, apperr.NewValidationFailed("name is required")
	}
	if strings.TrimSpace(params.Email) == "" {
		return model.User{}, apperr.NewValidationFailed("email is required")
	}
	if params.Role == model.RoleFarmer && strings.TrimSpace(params.ClusterName) == "" {
		return model.User{}, apperr.NewValidationFailed("cluster name is required")
	}

	user := model.User{
		ID:       uuid.NewString(),
		Name:     params.Name,
		Email:    params.Email,
		Role:     params.Role,
		Location: params.Location,
	}
	if params.Role == model.RoleFarmer {
		user.ClusterName = params.ClusterName
	}

	user, err := a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user", "email", params.Email, "error", err.Error())
		return model.User{}, err
	}

	a.logger.Info("Auth service: user registered", "email", params.Email, "role", params.Role)

	return user, nil
}

// PersistSession overwrites the single session record with the user and
// a signed session token.
func (a *Auth) PersistSession(ctx context.Context, user model.User) error {
	token, err := a.tokenManager.GenerateSessionToken(user.ID, user.Role)
	if err != nil {
		return fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := a.sessionStore.Put(ctx, model.Session{User: user, Token: token}); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

// RestoreSession reads the persisted session record, if any. The user
// collection is not consulted; identity is integrity-checked against
// the session token instead. A missing, corrupt, expired, or tampered
// record restores to no session rather than erroring.
func (a *Auth) RestoreSession(ctx context.Context) (model.User, bool) {
	session, err := a.sessionStore.Get(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, false
	}
	if err != nil {
		a.logger.Error("Auth service: unreadable session record, starting signed out", "error", err.Error())
		return model.User{}, false
	}

	userID, role, err := a.tokenManager.ParseSessionToken(session.Token)
	if err != nil {
		a.logger.Info("Auth service: session token rejected, starting signed out", "error", err.Error())
		return model.User{}, false
	}
	if userID != session.User.ID || role != session.User.Role {
		a.logger.Info("Auth service: session token does not match stored user, starting signed out")
		return model.User{}, false
	}

	a.logger.Debug("Auth service: session restored", "email", session.User.Email, "role", session.User.Role)

	return session.User, true
}

// EndSession clears the session record.
func (a *Auth) EndSession(ctx context.Context) error {
	if err := a.sessionStore.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
