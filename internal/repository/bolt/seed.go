package bolt

import (
	"github.com/agrocycle/agrocycle/internal/model"
)

// Demo rows written on the first run of a fresh store file.
var (
	seedListings = []model.BiomassListing{
		{ID: "1", Type: model.MaterialPaddyStraw, Quantity: 45, Price: 2500, Location: "Punjab, District A", FarmerName: "Ranjit Singh", Date: "2024-10-24", Status: model.ListingAvailable, OwnerID: "demo"},
		{ID: "2", Type: model.MaterialWheatHay, Quantity: 20, Price: 3200, Location: "Haryana, District B", FarmerName: "Amit Kumar", Date: "2024-10-25", Status: model.ListingAvailable, OwnerID: "demo"},
	}

	seedFarmers = []model.FarmerProfile{
		{ID: "f1", Name: "Balvinder Singh", Location: "Section 4, Village North", RegisteredBy: "demo"},
		{ID: "f2", Name: "Gurpreet Kaur", Location: "Section 1, Village East", RegisteredBy: "demo"},
	}
)

// Seed writes the demo rows for any collection key that is entirely
// absent. A present key is left alone even when its collection is empty,
// so seeding is idempotent. Must run once at startup, before any other
// store operation.
func (c *Connection) Seed() error {
	raw, err := c.get(keyListings)
	if err != nil {
		return err
	}
	if raw == nil {
		if err := writeAll(c, keyListings, seedListings); err != nil {
			return err
		}
	}

	raw, err = c.get(keyFarmers)
	if err != nil {
		return err
	}
	if raw == nil {
		if err := writeAll(c, keyFarmers, seedFarmers); err != nil {
			return err
		}
	}

	return nil
}
