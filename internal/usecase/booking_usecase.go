package usecase

import (
	"context"
	"time"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBookingInput defines the data an agent supplies to open a booking.
type CreateBookingInput struct {
	AgentID     uuid.UUID
	Name        string
	Email       string
	PhoneNumber string
	LocationID  uuid.UUID
	AmtEarned   float64
	StartDate   time.Time
	EndDate     time.Time
}

// VerifyBookingInput defines the anonymous customer hand-off: a booking
// reference plus the claimed customer name.
type VerifyBookingInput struct {
	BookingID uuid.UUID
	Name      string
}

// VerifyBookingQRInput verifies through a scanned QR payload instead of a raw
// booking reference.
type VerifyBookingQRInput struct {
	QRData string
	Name   string
}

// UpdateBookingInput carries a partial patch for a booking. Nil fields are
// left untouched.
type UpdateBookingInput struct {
	BookingID   uuid.UUID
	AgentID     uuid.UUID
	Name        *string
	Email       *string
	PhoneNumber *string
	LocationID  *uuid.UUID
	AmtEarned   *float64
	StartDate   *time.Time
	EndDate     *time.Time
}

// --- Output DTOs ---

// VerifyBookingOutput returns the minted booking credential.
type VerifyBookingOutput struct {
	Token   string
	Booking *entity.Booking
}

// BookingProfileOutput is the customer-facing view of a verified booking,
// including the owning agent's display fields.
type BookingProfileOutput struct {
	Booking     *entity.Booking
	AgentName   string
	AgentLogo   string
	CompanyName string
}

// BookingUsecase defines the booking delegation business operations.
type BookingUsecase interface {
	// Create opens a booking for a customer. The date range must be ordered.
	Create(ctx context.Context, input CreateBookingInput) (*entity.Booking, error)

	// Verify matches the claimed customer name against a non-deleted booking,
	// ignoring case and surrounding whitespace, and mints a booking token.
	// Issued tokens are not revocable.
	Verify(ctx context.Context, input VerifyBookingInput) (*VerifyBookingOutput, error)

	// VerifyQR decodes a scanned QR payload and verifies like Verify.
	VerifyQR(ctx context.Context, input VerifyBookingQRInput) (*VerifyBookingOutput, error)

	// GetProfile returns the booking plus agent display fields for a verified customer.
	GetProfile(ctx context.Context, bookingID uuid.UUID) (*BookingProfileOutput, error)

	// List returns bookings visible to an actor: agents see their own
	// (including deleted), every other role sees all non-deleted bookings.
	List(ctx context.Context, actorID uuid.UUID, role entity.Role) ([]*entity.Booking, error)

	// Update patches a booking owned by the calling agent.
	Update(ctx context.Context, input UpdateBookingInput) (*entity.Booking, error)

	// Delete removes a booking owned by the calling agent.
	Delete(ctx context.Context, bookingID, agentID uuid.UUID) error

	// GenerateQR renders the hand-off QR code of a booking owned by the agent.
	GenerateQR(ctx context.Context, bookingID, agentID uuid.UUID) ([]byte, error)
}
