package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agrocycle/agrocycle/internal/model"
)

// Claims represents session token claims with the user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

const (
	sessionTTL  = 30 * 24 * time.Hour
	typeSession = "session"
)

// GenerateSessionToken creates a signed token identifying the user and role.
func (j *JWT) GenerateSessionToken(userID string, role model.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		UserID:    userID,
		Role:      string(role),
		TokenType: typeSession,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// ParseSessionToken validates a session token and extracts the user identity.
func (j *JWT) ParseSessionToken(tokenString string) (string, model.Role, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", model.RoleNone, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return "", model.RoleNone, fmt.Errorf("session token is invalid")
	}
	if claims.TokenType != typeSession {
		return "", model.RoleNone, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}

	role := model.Role(claims.Role)
	if !role.Valid() {
		return "", model.RoleNone, fmt.Errorf("token role %q is not a persisted role", claims.Role)
	}

	return claims.UserID, role, nil
}
