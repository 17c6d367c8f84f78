package service

import (
	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the decoded content of a bearer credential. Two shapes exist:
// actor tokens carry (identity id, role); booking tokens carry (booking id,
// role "booking", location scope, owning agent's display logo).
type Claims struct {
	// SubjectID is the user ID for actor tokens, the booking ID for booking tokens.
	SubjectID uuid.UUID
	Role      entity.Role

	// LocationID scopes booking tokens to the booking's location. Nil for actor tokens.
	LocationID *uuid.UUID
	// AgentLogo is the owning agent's display logo, set on booking tokens only.
	AgentLogo string
	// Email is the booking's customer email, set on booking tokens only.
	Email string
}

// IsBooking reports whether the claims came from a booking-derived credential.
func (c *Claims) IsBooking() bool {
	return c.Role == entity.RoleBooking
}

// TokenService defines the interface for minting and validating bearer credentials.
type TokenService interface {
	// GenerateAccessToken creates a signed, time-limited token for an account.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// GenerateBookingToken mints a scoped credential from a verified booking.
	// The token has a fixed expiry and no revocation path: deleting the booking
	// afterwards does not invalidate credentials already issued.
	GenerateBookingToken(booking *entity.Booking, agentLogo string) (string, error)

	// ValidateToken checks a token string and returns its decoded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
