package bolt

import (
	"context"
	"errors"

	"github.com/agrocycle/agrocycle/internal/apperr"
	"github.com/agrocycle/agrocycle/internal/model"
)

var _ model.ListingStore = (*ListingRepository)(nil)

type ListingRepository struct {
	db    *Connection
	users model.UserStore
}

func NewListingRepository(db *Connection, users model.UserStore) *ListingRepository {
	return &ListingRepository{
		db:    db,
		users: users,
	}
}

// List returns listings newest-first.
func (r *ListingRepository) List(ctx context.Context) ([]model.BiomassListing, error) {
	return readAll[model.BiomassListing](r.db, keyListings)
}

// Create prepends the listing. OwnerID must reference an existing user.
func (r *ListingRepository) Create(ctx context.Context, listing model.BiomassListing) (model.BiomassListing, error) {
	if _, err := r.users.GetByID(ctx, listing.OwnerID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.BiomassListing{}, apperr.NewOwnerNotFound(listing.OwnerID)
		}
		return model.BiomassListing{}, err
	}

	listings, err := readAll[model.BiomassListing](r.db, keyListings)
	if err != nil {
		return model.BiomassListing{}, err
	}

	return listing, writeAll(r.db, keyListings, append([]model.BiomassListing{listing}, listings...))
}

// MarkSold flips the listing to sold. A listing already sold is rejected
// rather than silently re-sold.
func (r *ListingRepository) MarkSold(ctx context.Context, id string) (model.BiomassListing, error) {
	listings, err := readAll[model.BiomassListing](r.db, keyListings)
	if err != nil {
		return model.BiomassListing{}, err
	}

	for i, l := range listings {
		if l.ID != id {
			continue
		}
		if l.Status != model.ListingAvailable {
			return model.BiomassListing{}, apperr.NewListingUnavailable(id)
		}

		listings[i].Status = model.ListingSold
		if err := writeAll(r.db, keyListings, listings); err != nil {
			return model.BiomassListing{}, err
		}
		return listings[i], nil
	}

	return model.BiomassListing{}, model.ErrNotFound
}
