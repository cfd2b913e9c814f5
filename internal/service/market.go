package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agrocycle/agrocycle/internal/apperr"
	"github.com/agrocycle/agrocycle/internal/logger"
	"github.com/agrocycle/agrocycle/internal/model"
)

// Market orchestrates the role-specific dashboards: listing and farmer
// creation on the cluster side, the purchase workflow on the buyer side.
type Market struct {
	listingStore model.ListingStore
	farmerStore  model.FarmerStore
	logger       *logger.Logger
	logisticsFee float64
	now          func() time.Time
}

func NewMarket(
	listingStore model.ListingStore,
	farmerStore model.FarmerStore,
	logger *logger.Logger,
	logisticsFee float64,
) *Market {
	return &Market{
		listingStore: listingStore,
		farmerStore:  farmerStore,
		logger:       logger,
		logisticsFee: logisticsFee,
		now:          time.Now,
	}
}

// Listings returns every listing, newest-first (the cluster market board).
func (s *Market) Listings(ctx context.Context) ([]model.BiomassListing, error) {
	return s.listingStore.List(ctx)
}

// AvailableListings returns listings a buyer can still secure; sold
// stock is filtered out.
func (s *Market) AvailableListings(ctx context.Context) ([]model.BiomassListing, error) {
	listings, err := s.listingStore.List(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]model.BiomassListing, 0, len(listings))
	for _, l := range listings {
		if l.Status == model.ListingAvailable {
			available = append(available, l)
		}
	}

	return available, nil
}

// Farmers returns the cluster's farm registry, newest-first.
func (s *Market) Farmers(ctx context.Context) ([]model.FarmerProfile, error) {
	return s.farmerStore.List(ctx)
}

// CreateListingParams contains validated inputs for a new listing.
type CreateListingParams struct {
	Owner      model.User
	FarmerName string
	Type       model.MaterialType
	Quantity   float64
	Price      float64
}

// CreateListing posts a new unit of material to the market board. The
// source farmer must be selected from the existing registry; quantity
// and price must be positive. Status starts available, the date is
// today, and the location is the owner's cluster.
func (s *Market) CreateListing(ctx context.Context, params CreateListingParams) (model.BiomassListing, error) {
	if params.Owner.Role != model.RoleFarmer {
		return model.BiomassListing{}, apperr.NewValidationFailed("only cluster managers may post listings")
	}
	if !params.Type.Valid() {
		return model.BiomassListing{}, apperr.NewValidationFailed(fmt.Sprintf("unknown material type %q", params.Type))
	}
	if params.Quantity <= 0 {
		return model.BiomassListing{}, apperr.NewValidationFailed("quantity must be greater than zero")
	}
	if params.Price <= 0 {
		return model.BiomassListing{}, apperr.NewValidationFailed("price must be greater than zero")
	}

	registered, err := s.farmerStore.List(ctx)
	if err != nil {
		return model.BiomassListing{}, fmt.Errorf("failed to list farmers: %w", err)
	}
	if !hasFarmerNamed(registered, params.FarmerName) {
		return model.BiomassListing{}, apperr.NewValidationFailed(fmt.Sprintf("source farmer %q is not in the registry", params.FarmerName))
	}

	location := params.Owner.ClusterName
	if location == "" {
		location = "Regional Hub"
	}

	listing := model.BiomassListing{
		ID:         uuid.NewString(),
		Type:       params.Type,
		Quantity:   params.Quantity,
		Price:      params.Price,
		Location:   location,
		FarmerName: params.FarmerName,
		Date:       s.now().Format("2006-01-02"),
		Status:     model.ListingAvailable,
		OwnerID:    params.Owner.ID,
	}

	listing, err = s.listingStore.Create(ctx, listing)
	if err != nil {
		s.logger.Error("Market service: failed to create listing", "owner", params.Owner.ID, "error", err.Error())
		return model.BiomassListing{}, err
	}

	s.logger.Info("Market service: listing posted", "id", listing.ID, "type", listing.Type, "quantity", listing.Quantity)

	return listing, nil
}

// RegisterFarmerParams contains validated inputs for a new farm profile.
type RegisterFarmerParams struct {
	Owner    model.User
	Name     string
	Location string
}

// RegisterFarmer adds a farm to the cluster registry under the current
// cluster manager.
func (s *Market) RegisterFarmer(ctx context.Context, params RegisterFarmerParams) (model.FarmerProfile, error) {
	if params.Owner.Role != model.RoleFarmer {
		return model.FarmerProfile{}, apperr.NewValidationFailed("only cluster managers may register farmers")
	}
	if strings.TrimSpace(params.Name) == "" {
		return model.FarmerProfile{}, apperr.NewValidationFailed("farmer name is required")
	}
	if strings.TrimSpace(params.Location) == "" {
		return model.FarmerProfile{}, apperr.NewValidationFailed("farm location is required")
	}

	farmer := model.FarmerProfile{
		ID:           uuid.NewString(),
		Name:         params.Name,
		Location:     params.Location,
		RegisteredBy: params.Owner.ID,
	}

	farmer, err := s.farmerStore.Create(ctx, farmer)
	if err != nil {
		s.logger.Error("Market service: failed to register farmer", "owner", params.Owner.ID, "error", err.Error())
		return model.FarmerProfile{}, err
	}

	s.logger.Info("Market service: farmer registered", "id", farmer.ID, "name", farmer.Name)

	return farmer, nil
}

// CheckoutSummary is the buyer-side cost breakdown for one listing.
type CheckoutSummary struct {
	Listing      model.BiomassListing
	MaterialCost float64
	LogisticsFee float64
	Total        float64
}

// Checkout computes the cost summary for securing a listing: the full
// contract value plus the fixed network logistics fee.
func (s *Market) Checkout(listing model.BiomassListing) CheckoutSummary {
	cost := listing.ContractValue()
	return CheckoutSummary{
		Listing:      listing,
		MaterialCost: cost,
		LogisticsFee: s.logisticsFee,
		Total:        cost + s.logisticsFee,
	}
}

// ConfirmPurchase marks the listing sold in the store and returns the
// updated record for the buyer's procurement history. The history
// itself is session-transient and never persisted.
func (s *Market) ConfirmPurchase(ctx context.Context, listingID string) (model.BiomassListing, error) {
	listing, err := s.listingStore.MarkSold(ctx, listingID)
	if err != nil {
		s.logger.Error("Market service: failed to confirm purchase", "listing", listingID, "error", err.Error())
		return model.BiomassListing{}, err
	}

	s.logger.Info("Market service: purchase confirmed", "listing", listingID)

	return listing, nil
}

func hasFarmerNamed(farmers []model.FarmerProfile, name string) bool {
	for _, f := range farmers {
		if f.Name == name {
			return true
		}
	}
	return false
}
