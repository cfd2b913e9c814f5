package model

// TokenManager generates and validates session tokens.
type TokenManager interface {
	GenerateSessionToken(userID string, role Role) (string, error)
	ParseSessionToken(token string) (userID string, role Role, err error)
}
