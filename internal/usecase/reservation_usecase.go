package usecase

import (
	"context"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BookReservationInput defines the data a verified customer supplies to
// reserve a restaurant table or a task slot.
type BookReservationInput struct {
	BookingID    uuid.UUID
	Business     entity.BusinessRef
	Date         string
	BookedTime   string
	TotalMembers int
	AdvanceAmt   float64
}

// ListBusinessReservationsInput narrows the business-side reservation listing.
type ListBusinessReservationsInput struct {
	// Kind is Restaurant or Task; for Task, BusinessID is the activity
	// identity and reservations of all its tasks are resolved.
	Kind       entity.BusinessKind
	BusinessID uuid.UUID
	Status     entity.ReservationStatus
	Date       string
}

// UpdateReservationInput carries a partial patch for a reservation. Nil fields
// are left untouched. Writing a status keeps the deleted mirror consistent.
type UpdateReservationInput struct {
	ReservationID uuid.UUID
	Date          *string
	BookedTime    *string
	TotalMembers  *int
	AdvanceAmt    *float64
	Status        *entity.ReservationStatus
}

// --- Output DTOs ---

// BusinessReservationsOutput partitions a business's reservations into active
// entries (not retired, booking still present) and everything else.
type BusinessReservationsOutput struct {
	Active   []*entity.Reservation
	Inactive []*entity.Reservation
}

// ReservationUsecase defines the reservation workflow business operations.
type ReservationUsecase interface {
	// Book opens a reservation in the Pending state against a reservable target.
	Book(ctx context.Context, input BookReservationInput) (*entity.Reservation, error)

	// ListByBooking returns the caller's active reservations with business
	// details resolved.
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.Reservation, error)

	// ListForBusiness returns a business's reservations partitioned into
	// active and inactive.
	ListForBusiness(ctx context.Context, input ListBusinessReservationsInput) (*BusinessReservationsOutput, error)

	// Update patches a reservation. Setting a terminal status retires it.
	Update(ctx context.Context, input UpdateReservationInput) (*entity.Reservation, error)

	// Cancel retires a reservation by moving it to the Cancelled state.
	Cancel(ctx context.Context, reservationID uuid.UUID) error
}
