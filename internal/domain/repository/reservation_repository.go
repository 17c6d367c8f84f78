package repository

import (
	"context"
	"errors"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReservationNotFound is returned when a reservation does not exist.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationFilter narrows business-side reservation listings.
type ReservationFilter struct {
	Status entity.ReservationStatus
	Date   string
	// Deleted filters on the soft-delete mirror when non-nil.
	Deleted *bool
}

// ReservationRepository defines the standard operations for reservation persistence.
type ReservationRepository interface {
	// Create persists a new reservation.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// FindByID retrieves a reservation regardless of its soft-delete mirror.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

	// ListByBooking retrieves the non-deleted reservations of a booking.
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.Reservation, error)

	// ListByBusinesses retrieves reservations targeting any of the given
	// business IDs of one kind, with the backing booking preloaded so callers
	// can partition active from inactive entries.
	ListByBusinesses(ctx context.Context, kind entity.BusinessKind, businessIDs []uuid.UUID, filter ReservationFilter) ([]*entity.Reservation, error)

	// Update modifies an existing reservation. Implementations persist the
	// status and the is_deleted mirror in the same write.
	Update(ctx context.Context, reservation *entity.Reservation) error
}
