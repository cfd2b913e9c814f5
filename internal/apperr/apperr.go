package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so callers can branch on it
// without parsing messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCredentials
	KindUserNotFound
	KindRoleMismatch
	KindEmailExists
	KindOwnerNotFound
	KindValidationFailed
	KindListingUnavailable
	KindStoreReadCorrupt
	KindStoreWriteFailed
	KindAssistantRequestFailed
)

// Error is a typed domain error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two domain errors by kind, so errors.Is works with
// the sentinel constructors below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the kind of err, or KindUnknown if err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func NewInvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
}

func NewUserNotFound(email string) *Error {
	return &Error{Kind: KindUserNotFound, Message: fmt.Sprintf("no user with email %q", email)}
}

func NewRoleMismatch(email string) *Error {
	return &Error{Kind: KindRoleMismatch, Message: fmt.Sprintf("user %q exists under a different role", email)}
}

func NewEmailExists(email string) *Error {
	return &Error{Kind: KindEmailExists, Message: fmt.Sprintf("email %q is already registered", email)}
}

func NewOwnerNotFound(id string) *Error {
	return &Error{Kind: KindOwnerNotFound, Message: fmt.Sprintf("no user with id %q", id)}
}

func NewValidationFailed(reason string) *Error {
	return &Error{Kind: KindValidationFailed, Message: reason}
}

func NewListingUnavailable(id string) *Error {
	return &Error{Kind: KindListingUnavailable, Message: fmt.Sprintf("listing %q is not available", id)}
}

func NewStoreReadCorrupt(key string, cause error) *Error {
	return &Error{Kind: KindStoreReadCorrupt, Message: fmt.Sprintf("stored record %q is corrupt", key), Err: cause}
}

func NewStoreWriteFailed(key string, cause error) *Error {
	return &Error{Kind: KindStoreWriteFailed, Message: fmt.Sprintf("failed to write record %q", key), Err: cause}
}

func NewAssistantRequestFailed(cause error) *Error {
	return &Error{Kind: KindAssistantRequestFailed, Message: "assistant request failed", Err: cause}
}
