package bolt

import (
	"context"

	"github.com/agrocycle/agrocycle/internal/apperr"
	"github.com/agrocycle/agrocycle/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// List returns all users in append order.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return r.readAll()
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	users, err := r.readAll()
	if err != nil {
		return model.User{}, err
	}

	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	users, err := r.readAll()
	if err != nil {
		return model.User{}, err
	}

	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

// Create appends the user. Email uniqueness across all roles is a
// store-level precondition.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	users, err := r.readAll()
	if err != nil {
		return model.User{}, err
	}

	for _, u := range users {
		if u.Email == user.Email {
			return model.User{}, apperr.NewEmailExists(user.Email)
		}
	}

	return user, writeAll(r.db, keyUsers, append(users, user))
}

func (r *UserRepository) readAll() ([]model.User, error) {
	return readAll[model.User](r.db, keyUsers)
}
