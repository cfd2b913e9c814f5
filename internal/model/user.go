package model

import "context"

// Role identifies which side of the marketplace a user acts on.
// RoleNone exists only before a role is chosen and is never persisted.
type Role string

const (
	RoleNone   Role = "none"
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
)

// Valid reports whether the role may be attached to a persisted user.
func (r Role) Valid() bool {
	return r == RoleFarmer || r == RoleBuyer
}

// UserStore defines persistence operations for users.
// Users are append-only: no update or delete exists.
type UserStore interface {
	List(ctx context.Context) ([]User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User is an identity record, immutable after registration.
// ClusterName is set for farmer-role users only.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	ClusterName string `json:"clusterName,omitempty"`
	Location    string `json:"location,omitempty"`
}
