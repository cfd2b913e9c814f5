package model

import "context"

// SessionStore persists the single session record for this device.
// Get returns ErrNotFound when no session exists.
type SessionStore interface {
	Get(ctx context.Context) (Session, error)
	Put(ctx context.Context, session Session) error
	Delete(ctx context.Context) error
}

// Session identifies the currently authenticated user. Token is a
// signed session token carrying the same identity, used to
// integrity-check the record on restore.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
