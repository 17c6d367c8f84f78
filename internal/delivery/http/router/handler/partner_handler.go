package handler

import (
	"log/slog"
	"net/http"

	"tripdesk/internal/delivery/http/response"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PartnerHandler holds dependencies for the public partner browse handlers.
type PartnerHandler struct {
	uc     usecase.PartnerUsecase
	logger *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(uc usecase.PartnerUsecase, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{uc: uc, logger: logger}
}

type partnerListRequest struct {
	BusinessName string    `query:"business_name"`
	OwnerName    string    `query:"owner_name"`
	City         string    `query:"city"`
	Pincode      string    `query:"pincode"`
	Category     string    `query:"category"`
	LocationID   uuid.UUID `query:"location_id"`
	Deleted      *bool     `query:"deleted"`
}

func (r *partnerListRequest) toInput() usecase.PartnerListInput {
	return usecase.PartnerListInput{
		BusinessName: r.BusinessName,
		OwnerName:    r.OwnerName,
		City:         r.City,
		Pincode:      r.Pincode,
		Category:     r.Category,
		LocationID:   r.LocationID,
		Deleted:      r.Deleted,
	}
}

// ListRestaurants returns restaurant profiles matching the query filter.
func (h *PartnerHandler) ListRestaurants(c echo.Context) error {
	var req partnerListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing filter")
	}

	profiles, err := h.uc.ListRestaurants(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "")
}

// GetRestaurant returns one restaurant profile.
func (h *PartnerHandler) GetRestaurant(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	profile, err := h.uc.GetRestaurant(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// ListShops returns shop profiles matching the query filter.
func (h *PartnerHandler) ListShops(c echo.Context) error {
	var req partnerListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing filter")
	}

	profiles, err := h.uc.ListShops(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "")
}

// GetShop returns one shop profile.
func (h *PartnerHandler) GetShop(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	profile, err := h.uc.GetShop(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// ListActivities returns activity profiles matching the query filter.
func (h *PartnerHandler) ListActivities(c echo.Context) error {
	var req partnerListRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing filter")
	}

	profiles, err := h.uc.ListActivities(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "")
}

// GetActivity returns one activity profile.
func (h *PartnerHandler) GetActivity(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid activity ID")
	}

	profile, err := h.uc.GetActivity(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}
