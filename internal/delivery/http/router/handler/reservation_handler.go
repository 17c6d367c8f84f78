package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/delivery/http/response"
	"tripdesk/internal/domain/entity"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReservationHandler holds dependencies for the reservation handlers.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{uc: uc, logger: logger}
}

type bookReservationRequest struct {
	BusinessType string    `json:"business_type" validate:"required,oneof=Restaurant Task"`
	BusinessID   uuid.UUID `json:"business_id" validate:"required"`
	Date         string    `json:"date" validate:"required"`
	BookedTime   string    `json:"booked_time" validate:"required"`
	TotalMembers int       `json:"total_members" validate:"omitempty,gte=1"`
	AdvanceAmt   float64   `json:"advance_amt" validate:"omitempty,gte=0"`
}

// Book opens a pending reservation for the verified customer.
func (h *ReservationHandler) Book(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	var req bookReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	kind := entity.BusinessKind(req.BusinessType)

	reservation, err := h.uc.Book(c.Request().Context(), usecase.BookReservationInput{
		BookingID:    claims.SubjectID,
		Business:     entity.BusinessRef{Kind: kind, ID: req.BusinessID},
		Date:         req.Date,
		BookedTime:   req.BookedTime,
		TotalMembers: req.TotalMembers,
		AdvanceAmt:   req.AdvanceAmt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reservation, "Reservation created successfully")
}

// ListByBooking returns the verified customer's active reservations.
func (h *ReservationHandler) ListByBooking(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	reservations, err := h.uc.ListByBooking(c.Request().Context(), claims.SubjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservations, "")
}

// ListForBusiness returns a business's reservations partitioned into active
// and inactive.
func (h *ReservationHandler) ListForBusiness(c echo.Context) error {
	kind := entity.BusinessKind(c.Param("type"))
	if !kind.Reservable() {
		return response.BadRequest(c, "INVALID_BUSINESS_TYPE", "Business type does not accept reservations")
	}

	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	output, err := h.uc.ListForBusiness(c.Request().Context(), usecase.ListBusinessReservationsInput{
		Kind:       kind,
		BusinessID: businessID,
		Status:     entity.ReservationStatus(c.QueryParam("status")),
		Date:       c.QueryParam("date"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

type updateReservationRequest struct {
	Date         *string  `json:"date" validate:"omitempty,min=1"`
	BookedTime   *string  `json:"booked_time" validate:"omitempty,min=1"`
	TotalMembers *int     `json:"total_members" validate:"omitempty,gte=1"`
	AdvanceAmt   *float64 `json:"advance_amt" validate:"omitempty,gte=0"`
	Status       *string  `json:"status" validate:"omitempty,oneof=Pending Confirmed Cancelled Completed"`
}

// Update patches a reservation; writing a terminal status retires it.
func (h *ReservationHandler) Update(c echo.Context) error {
	reservationID, err := uuid.Parse(c.Param("reservation_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation ID")
	}

	var req updateReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation patch")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	var status *entity.ReservationStatus
	if req.Status != nil {
		s := entity.ReservationStatus(*req.Status)
		status = &s
	}

	reservation, err := h.uc.Update(c.Request().Context(), usecase.UpdateReservationInput{
		ReservationID: reservationID,
		Date:          req.Date,
		BookedTime:    req.BookedTime,
		TotalMembers:  req.TotalMembers,
		AdvanceAmt:    req.AdvanceAmt,
		Status:        status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation updated successfully")
}

// Cancel retires a reservation by moving it to the cancelled state.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	reservationID, err := uuid.Parse(c.Param("reservation_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation ID")
	}

	if err := h.uc.Cancel(c.Request().Context(), reservationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reservation cancelled successfully")
}
