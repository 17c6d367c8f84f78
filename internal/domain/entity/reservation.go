package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the state of a reservation.
// Pending is the initial state; Cancelled and Completed are terminal.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationCompleted ReservationStatus = "Completed"
)

// IsValid checks the status against the known set.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status retires the reservation.
// The is_deleted column mirrors this on every mutation path.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCancelled || s == ReservationCompleted
}

// Reservation links a booking to a restaurant or task slot.
type Reservation struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	Business     BusinessRef // Restaurant or Task only.
	Date         string      // Display date, e.g. "Mon Mar 17 2025".
	BookedTime   string      // "HH:mm".
	TotalMembers int
	AdvanceAmt   float64
	Status       ReservationStatus
	Deleted      bool // Mirror of Status.Terminal(); kept consistent by every write.
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Booking carries the reservation's booking when preloaded by list queries.
	Booking *Booking
	// BusinessDetails carries the resolved restaurant profile or task when preloaded.
	BusinessDetails any
}

// ApplyStatus sets the status and keeps the deleted mirror consistent.
func (r *Reservation) ApplyStatus(status ReservationStatus) {
	r.Status = status
	r.Deleted = status.Terminal()
}

// Active reports whether the reservation should appear in active listings:
// not retired, and its booking still exists and is not deleted.
func (r *Reservation) Active() bool {
	return !r.Deleted && r.Booking != nil && !r.Booking.Deleted
}
