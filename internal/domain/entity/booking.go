package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking is an agent-created envelope naming a customer. Verifying the
// customer name against a booking mints a scoped, non-identity credential
// used downstream for reservations and reviews.
type Booking struct {
	ID          uuid.UUID
	AgentID     uuid.UUID // Identity of the agent that created the booking.
	Name        string    // Customer name, matched case-insensitively at verification.
	Email       string
	PhoneNumber string
	LocationID  uuid.UUID // Location the derived credential is scoped to.
	AmtEarned   float64
	StartDate   time.Time
	EndDate     time.Time
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateDates reports whether the booking's date range is ordered.
func (b *Booking) ValidateDates() bool {
	return !b.StartDate.After(b.EndDate)
}

// MatchesCustomerName compares a claimed customer name against the stored one,
// ignoring case and surrounding whitespace.
func (b *Booking) MatchesCustomerName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(b.Name))
}
