package repository

import (
	"context"
	"errors"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when a booking does not exist or is soft-deleted.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the standard operations for booking persistence.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *entity.Booking) error

	// FindByID retrieves a booking regardless of its soft-delete flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindActiveByID retrieves a booking that has not been soft-deleted.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// ListByAgent retrieves every booking created by an agent, deleted or not.
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Booking, error)

	// ListActive retrieves every non-deleted booking.
	ListActive(ctx context.Context) ([]*entity.Booking, error)

	// Update modifies an existing booking.
	Update(ctx context.Context, booking *entity.Booking) error

	// Delete permanently removes a booking owned by the given agent.
	// Returns ErrBookingNotFound when no such booking belongs to the agent.
	Delete(ctx context.Context, id, agentID uuid.UUID) error
}
