package repository

import (
	"context"
	"errors"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a role profile does not exist for an identity.
var ErrProfileNotFound = errors.New("role profile not found")

// ProfileStore persists the role-specific half of an account. One
// implementation exists per role; callers select one through the registry
// instead of switching on role strings.
type ProfileStore interface {
	// Role identifies which role this store serves.
	Role() entity.Role

	// Create persists a new profile. The profile's role must match the store's.
	Create(ctx context.Context, profile entity.Profile) error

	// FindByUserID retrieves the profile linked to an identity.
	FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Profile, error)

	// FindByUserIDs retrieves profiles for a set of identities, keyed by user ID.
	// Missing profiles are simply absent from the result.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.Profile, error)

	// UpdateFields applies a column/value patch to the profile of an identity.
	// Unknown columns are dropped by the implementation's allowlist.
	UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error

	// DeleteByUserID permanently removes the profile of an identity.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// ProfileRegistry is the explicit lookup table from role to profile store.
type ProfileRegistry struct {
	stores map[entity.Role]ProfileStore
}

// NewProfileRegistry builds a registry from the given stores.
func NewProfileRegistry(stores ...ProfileStore) *ProfileRegistry {
	registry := &ProfileRegistry{stores: make(map[entity.Role]ProfileStore, len(stores))}
	for _, store := range stores {
		registry.stores[store.Role()] = store
	}

	return registry
}

// Lookup returns the store serving a role.
func (r *ProfileRegistry) Lookup(role entity.Role) (ProfileStore, bool) {
	store, ok := r.stores[role]

	return store, ok
}

// PartnerFilter narrows partner profile listings.
type PartnerFilter struct {
	BusinessName string
	OwnerName    string
	City         string
	Pincode      string
	Category     string
	LocationID   uuid.UUID
	// Deleted filters on the owning identity's soft-delete flag when non-nil;
	// nil keeps the default of hiding deleted partners.
	Deleted *bool
}

// AgentRepository exposes typed access to agent profiles beyond the generic store.
type AgentRepository interface {
	// FindAgent retrieves the agent profile of an identity.
	FindAgent(ctx context.Context, userID uuid.UUID) (*entity.AgentProfile, error)
}

// RestaurantRepository exposes typed access to restaurant profiles.
type RestaurantRepository interface {
	// FindRestaurant retrieves a restaurant profile by its owning identity.
	FindRestaurant(ctx context.Context, userID uuid.UUID) (*entity.RestaurantProfile, error)

	// ListRestaurants retrieves restaurant profiles matching the filter.
	ListRestaurants(ctx context.Context, filter PartnerFilter) ([]*entity.RestaurantProfile, error)
}

// ShopRepository exposes typed access to shop profiles.
type ShopRepository interface {
	// FindShop retrieves a shop profile by its owning identity.
	FindShop(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error)

	// ListShops retrieves shop profiles matching the filter.
	ListShops(ctx context.Context, filter PartnerFilter) ([]*entity.ShopProfile, error)
}

// ActivityRepository exposes typed access to activity profiles.
type ActivityRepository interface {
	// FindActivity retrieves an activity profile by its owning identity.
	FindActivity(ctx context.Context, userID uuid.UUID) (*entity.ActivityProfile, error)

	// ListActivities retrieves activity profiles matching the filter.
	ListActivities(ctx context.Context, filter PartnerFilter) ([]*entity.ActivityProfile, error)

	// UpdateActivityRating overwrites the rolled-up rating of an activity.
	UpdateActivityRating(ctx context.Context, userID uuid.UUID, rating float64) error
}
