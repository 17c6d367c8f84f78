package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is customer feedback left through a booking credential against a
// business entity. The referenced business keeps an aggregate rating equal to
// the arithmetic mean of its non-deleted reviews, recomputed on every write.
type Review struct {
	ID          uuid.UUID
	BookingID   uuid.UUID   // The booking the reviewer authenticated with.
	Business    BusinessRef // Tagged reference to the reviewed entity.
	Title       string
	Rating      int // 1 to 5.
	Description string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Reviewer carries the booking's customer contact when preloaded by list queries.
	Reviewer *Booking
}

// ValidRating reports whether the rating is inside the accepted range.
func (r *Review) ValidRating() bool {
	return r.Rating >= 1 && r.Rating <= 5
}
