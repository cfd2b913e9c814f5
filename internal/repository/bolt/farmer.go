package bolt

import (
	"context"
	"errors"

	"github.com/agrocycle/agrocycle/internal/apperr"
	"github.com/agrocycle/agrocycle/internal/model"
)

var _ model.FarmerStore = (*FarmerRepository)(nil)

type FarmerRepository struct {
	db    *Connection
	users model.UserStore
}

func NewFarmerRepository(db *Connection, users model.UserStore) *FarmerRepository {
	return &FarmerRepository{
		db:    db,
		users: users,
	}
}

// List returns farmer profiles newest-first.
func (r *FarmerRepository) List(ctx context.Context) ([]model.FarmerProfile, error) {
	return readAll[model.FarmerProfile](r.db, keyFarmers)
}

// Create prepends the profile. RegisteredBy must reference an existing
// user; referential linkage is a store-level precondition.
func (r *FarmerRepository) Create(ctx context.Context, farmer model.FarmerProfile) (model.FarmerProfile, error) {
	if _, err := r.users.GetByID(ctx, farmer.RegisteredBy); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.FarmerProfile{}, apperr.NewOwnerNotFound(farmer.RegisteredBy)
		}
		return model.FarmerProfile{}, err
	}

	farmers, err := readAll[model.FarmerProfile](r.db, keyFarmers)
	if err != nil {
		return model.FarmerProfile{}, err
	}

	return farmer, writeAll(r.db, keyFarmers, append([]model.FarmerProfile{farmer}, farmers...))
}
