package model

import "context"

// FarmerStore defines persistence operations for farmer profiles.
// List returns newest-first; profiles are never mutated or deleted.
type FarmerStore interface {
	List(ctx context.Context) ([]FarmerProfile, error)
	Create(ctx context.Context, farmer FarmerProfile) (FarmerProfile, error)
}

// FarmerProfile is a farm registered under a cluster. RegisteredBy is
// the id of the cluster-manager user who created it.
type FarmerProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	RegisteredBy string `json:"registeredBy"`
}
