package usecase

import (
	"context"

	"tripdesk/internal/domain/entity"
	"tripdesk/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LocationInput defines the data for creating or replacing a location.
type LocationInput struct {
	Name      string
	MapURL    string
	IframeURL string
}

// DestinationInput defines the data for creating or replacing a destination.
type DestinationInput struct {
	LocationID        uuid.UUID
	PlaceName         string
	MapLink           string
	IframeURL         string
	NearByAttractions string
	BestTimeToVisit   string
	ShortSummary      string
	ImageURLs         []string
	TopDestination    bool
}

// ThingToCarryInput defines the data for a packing-list item.
type ThingToCarryInput struct {
	LocationID uuid.UUID
	Name       string
}

// PlaceUsecase defines the reference-data business operations owned by the
// SuperAdmin: locations, destinations and packing lists.
type PlaceUsecase interface {
	CreateLocation(ctx context.Context, input LocationInput) (*entity.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	ListLocations(ctx context.Context) ([]*entity.Location, error)
	// ListLocationOptions returns compact id/name pairs for dropdowns.
	ListLocationOptions(ctx context.Context) ([]repository.LocationOption, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, input LocationInput) (*entity.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	CreateDestination(ctx context.Context, input DestinationInput) (*entity.Destination, error)
	GetDestination(ctx context.Context, id uuid.UUID) (*entity.Destination, error)
	// ListDestinations returns destinations under a location; the nil UUID
	// returns every destination.
	ListDestinations(ctx context.Context, locationID uuid.UUID) ([]*entity.Destination, error)
	UpdateDestination(ctx context.Context, id uuid.UUID, input DestinationInput) (*entity.Destination, error)
	DeleteDestination(ctx context.Context, id uuid.UUID) error

	// CreateThingToCarry validates the location exists before persisting.
	CreateThingToCarry(ctx context.Context, input ThingToCarryInput) (*entity.ThingToCarry, error)
	ListThingsToCarry(ctx context.Context, locationID uuid.UUID) ([]*entity.ThingToCarry, error)
	UpdateThingToCarry(ctx context.Context, id uuid.UUID, input ThingToCarryInput) (*entity.ThingToCarry, error)
	DeleteThingToCarry(ctx context.Context, id uuid.UUID) error
}
