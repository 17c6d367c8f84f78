package service

import "github.com/google/uuid"

// QRCodeService renders booking hand-off codes.
type QRCodeService interface {
	// GenerateBookingQR renders a PNG QR code encoding a booking reference,
	// for the agent to hand to the customer ahead of verification.
	GenerateBookingQR(bookingID uuid.UUID) ([]byte, error)

	// ParseBookingQR decodes a scanned QR payload back into a booking ID.
	ParseBookingQR(qrData string) (uuid.UUID, error)
}
