package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/delivery/http/response"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookingHandler holds dependencies for the booking delegation handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{uc: uc, logger: logger}
}

type createBookingRequest struct {
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"omitempty,email"`
	PhoneNumber string    `json:"phone_number"`
	LocationID  uuid.UUID `json:"location_id" validate:"required"`
	AmtEarned   float64   `json:"amt_earned" validate:"omitempty,gte=0"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
}

// Create opens a booking for a customer on behalf of the calling agent.
func (h *BookingHandler) Create(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	booking, err := h.uc.Create(c.Request().Context(), usecase.CreateBookingInput{
		AgentID:     claims.SubjectID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		LocationID:  req.LocationID,
		AmtEarned:   req.AmtEarned,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, booking, "Booking created successfully")
}

type verifyBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
}

// Verify matches the claimed customer name against a booking and mints a
// scoped booking token. This endpoint is anonymous.
func (h *BookingHandler) Verify(c echo.Context) error {
	var req verifyBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.uc.Verify(c.Request().Context(), usecase.VerifyBookingInput{
		BookingID: req.BookingID,
		Name:      req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Booking verified successfully")
}

type verifyBookingQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

// VerifyQR verifies through a scanned QR payload instead of a raw booking reference.
func (h *BookingHandler) VerifyQR(c echo.Context) error {
	var req verifyBookingQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.uc.VerifyQR(c.Request().Context(), usecase.VerifyBookingQRInput{
		QRData: req.QRData,
		Name:   req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Booking verified successfully")
}

// GetProfile returns the booking plus agent display fields for a verified customer.
func (h *BookingHandler) GetProfile(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), claims.SubjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// List returns the bookings visible to the calling actor.
func (h *BookingHandler) List(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	bookings, err := h.uc.List(c.Request().Context(), claims.SubjectID, claims.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookings, "")
}

type updateBookingRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	PhoneNumber *string    `json:"phone_number"`
	LocationID  *uuid.UUID `json:"location_id"`
	AmtEarned   *float64   `json:"amt_earned"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// Update patches a booking owned by the calling agent.
func (h *BookingHandler) Update(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking patch")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	booking, err := h.uc.Update(c.Request().Context(), usecase.UpdateBookingInput{
		BookingID:   bookingID,
		AgentID:     claims.SubjectID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		LocationID:  req.LocationID,
		AmtEarned:   req.AmtEarned,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, booking, "Booking updated successfully")
}

// Delete removes a booking owned by the calling agent.
func (h *BookingHandler) Delete(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	if err := h.uc.Delete(c.Request().Context(), bookingID, claims.SubjectID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Booking deleted successfully")
}

// GenerateQR streams the hand-off QR code image of a booking owned by the agent.
func (h *BookingHandler) GenerateQR(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	png, err := h.uc.GenerateQR(c.Request().Context(), bookingID, claims.SubjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
