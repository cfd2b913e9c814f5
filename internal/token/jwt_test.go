package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrocycle/agrocycle/internal/model"
)

func TestJWT_SessionToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")

	tok, err := j.GenerateSessionToken("user-1", model.RoleFarmer)
	require.NoError(t, err)

	gotID, gotRole, err := j.ParseSessionToken(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", gotID)
	require.Equal(t, model.RoleFarmer, gotRole)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret")
	other := NewJWT("another")

	tok, err := j.GenerateSessionToken("user-1", model.RoleBuyer)
	require.NoError(t, err)

	_, _, err = other.ParseSessionToken(tok)
	require.Error(t, err)
}

func TestJWT_Tampered(t *testing.T) {
	j := NewJWT("secret")

	tok, err := j.GenerateSessionToken("user-1", model.RoleBuyer)
	require.NoError(t, err)

	_, _, err = j.ParseSessionToken(tok + "x")
	require.Error(t, err)
}

func TestJWT_RejectsNoneRole(t *testing.T) {
	j := NewJWT("secret")

	tok, err := j.GenerateSessionToken("user-1", model.RoleNone)
	require.NoError(t, err)

	_, _, err = j.ParseSessionToken(tok)
	require.Error(t, err)
}
