package usecase

import (
	"context"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PartnerListInput narrows partner browse listings.
type PartnerListInput struct {
	BusinessName string
	OwnerName    string
	City         string
	Pincode      string
	Category     string
	LocationID   uuid.UUID
	// Deleted includes soft-deleted partners when non-nil; the default hides them.
	Deleted *bool
}

// PartnerUsecase defines the public browse operations over partner profiles.
type PartnerUsecase interface {
	// ListRestaurants returns restaurant profiles matching the filter.
	ListRestaurants(ctx context.Context, input PartnerListInput) ([]*entity.RestaurantProfile, error)

	// GetRestaurant returns one restaurant profile by its owning identity.
	GetRestaurant(ctx context.Context, userID uuid.UUID) (*entity.RestaurantProfile, error)

	// ListShops returns shop profiles matching the filter.
	ListShops(ctx context.Context, input PartnerListInput) ([]*entity.ShopProfile, error)

	// GetShop returns one shop profile by its owning identity.
	GetShop(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error)

	// ListActivities returns activity profiles matching the filter.
	ListActivities(ctx context.Context, input PartnerListInput) ([]*entity.ActivityProfile, error)

	// GetActivity returns one activity profile by its owning identity.
	GetActivity(ctx context.Context, userID uuid.UUID) (*entity.ActivityProfile, error)
}
