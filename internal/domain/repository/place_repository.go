package repository

import (
	"context"
	"errors"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for reference-data persistence.
var (
	// ErrLocationNotFound is returned when a location does not exist or is soft-deleted.
	ErrLocationNotFound = errors.New("location not found")
	// ErrDestinationNotFound is returned when a destination does not exist or is soft-deleted.
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrThingToCarryNotFound is returned when a packing-list item does not exist.
	ErrThingToCarryNotFound = errors.New("thing to carry not found")
)

// LocationOption is a compact id/name pair for dropdown listings.
type LocationOption struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
}

// LocationRepository defines the standard operations for location persistence.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error

	// FindByID retrieves a non-deleted location.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// List retrieves non-deleted locations, newest first.
	List(ctx context.Context) ([]*entity.Location, error)

	// ListOptions retrieves id/name pairs of non-deleted locations for dropdowns.
	ListOptions(ctx context.Context) ([]LocationOption, error)

	Update(ctx context.Context, location *entity.Location) error

	// SoftDelete marks a location logically removed.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// DestinationRepository defines the standard operations for destination persistence.
type DestinationRepository interface {
	Create(ctx context.Context, destination *entity.Destination) error

	// FindByID retrieves a non-deleted destination.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error)

	// ListByLocation retrieves the non-deleted destinations under a location.
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Destination, error)

	// List retrieves every non-deleted destination.
	List(ctx context.Context) ([]*entity.Destination, error)

	Update(ctx context.Context, destination *entity.Destination) error

	// SoftDelete marks a destination logically removed.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// ThingsToCarryRepository defines the standard operations for packing-list persistence.
type ThingsToCarryRepository interface {
	Create(ctx context.Context, item *entity.ThingToCarry) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.ThingToCarry, error)

	// ListByLocation retrieves the packing-list items of a location.
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.ThingToCarry, error)

	Update(ctx context.Context, item *entity.ThingToCarry) error

	// Delete permanently removes a packing-list item.
	Delete(ctx context.Context, id uuid.UUID) error
}
