package model

import "context"

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

const (
	ListingAvailable ListingStatus = "available"
	ListingSold      ListingStatus = "sold"
)

// MaterialType enumerates the sellable biomass categories.
type MaterialType string

const (
	MaterialPaddyStraw       MaterialType = "Paddy Straw"
	MaterialWheatHay         MaterialType = "Wheat Hay"
	MaterialCoconutHusk      MaterialType = "Coconut Husk"
	MaterialSugarcaneBagasse MaterialType = "Sugarcane Bagasse"
)

// MaterialTypes lists the categories in form order.
func MaterialTypes() []MaterialType {
	return []MaterialType{MaterialPaddyStraw, MaterialWheatHay, MaterialCoconutHusk, MaterialSugarcaneBagasse}
}

// Valid reports whether the material type is a known category.
func (m MaterialType) Valid() bool {
	switch m {
	case MaterialPaddyStraw, MaterialWheatHay, MaterialCoconutHusk, MaterialSugarcaneBagasse:
		return true
	}
	return false
}

// ListingStore defines persistence operations for biomass listings.
// List returns newest-first. MarkSold is the single permitted mutation.
type ListingStore interface {
	List(ctx context.Context) ([]BiomassListing, error)
	Create(ctx context.Context, listing BiomassListing) (BiomassListing, error)
	MarkSold(ctx context.Context, id string) (BiomassListing, error)
}

// BiomassListing is a unit of sellable material. FarmerName is a
// denormalized display label, not a foreign key. Quantity is metric
// tons; Price is the unit price in rupees. Date is an ISO calendar date.
type BiomassListing struct {
	ID         string        `json:"id"`
	Type       MaterialType  `json:"type"`
	Quantity   float64       `json:"quantity"`
	Price      float64       `json:"price"`
	Location   string        `json:"location"`
	FarmerName string        `json:"farmerName"`
	Date       string        `json:"date"`
	Status     ListingStatus `json:"status"`
	OwnerID    string        `json:"ownerId"`
}

// ContractValue is the material cost of the full listed quantity.
func (l BiomassListing) ContractValue() float64 {
	return l.Price * l.Quantity
}
