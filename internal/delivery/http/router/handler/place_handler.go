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

// PlaceHandler holds dependencies for the reference-data handlers.
type PlaceHandler struct {
	uc     usecase.PlaceUsecase
	logger *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(uc usecase.PlaceUsecase, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{uc: uc, logger: logger}
}

type locationRequest struct {
	Name      string `json:"name" validate:"required"`
	MapURL    string `json:"map_url"`
	IframeURL string `json:"iframe_url"`
}

// CreateLocation adds a location to the reference data.
func (h *PlaceHandler) CreateLocation(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	location, err := h.uc.CreateLocation(c.Request().Context(), usecase.LocationInput{
		Name:      req.Name,
		MapURL:    req.MapURL,
		IframeURL: req.IframeURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}

// GetLocation returns one location.
func (h *PlaceHandler) GetLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location ID")
	}

	location, err := h.uc.GetLocation(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "")
}

// ListLocations returns every location.
func (h *PlaceHandler) ListLocations(c echo.Context) error {
	locations, err := h.uc.ListLocations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}

// ListLocationOptions returns compact id/name pairs for dropdowns.
func (h *PlaceHandler) ListLocationOptions(c echo.Context) error {
	options, err := h.uc.ListLocationOptions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, options, "")
}

// UpdateLocation replaces a location's fields.
func (h *PlaceHandler) UpdateLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location ID")
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	location, err := h.uc.UpdateLocation(c.Request().Context(), id, usecase.LocationInput{
		Name:      req.Name,
		MapURL:    req.MapURL,
		IframeURL: req.IframeURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated successfully")
}

// DeleteLocation removes a location.
func (h *PlaceHandler) DeleteLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location ID")
	}

	if err := h.uc.DeleteLocation(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Location deleted successfully")
}

type destinationRequest struct {
	LocationID        uuid.UUID `json:"location_id" validate:"required"`
	PlaceName         string    `json:"place_name" validate:"required"`
	MapLink           string    `json:"map_link"`
	IframeURL         string    `json:"iframe_url"`
	NearByAttractions string    `json:"near_by_attractions"`
	BestTimeToVisit   string    `json:"best_time_to_visit"`
	ShortSummary      string    `json:"short_summary"`
	ImageURLs         []string  `json:"image_url"`
	TopDestination    bool      `json:"top_destination"`
}

func (r *destinationRequest) toInput() usecase.DestinationInput {
	return usecase.DestinationInput{
		LocationID:        r.LocationID,
		PlaceName:         r.PlaceName,
		MapLink:           r.MapLink,
		IframeURL:         r.IframeURL,
		NearByAttractions: r.NearByAttractions,
		BestTimeToVisit:   r.BestTimeToVisit,
		ShortSummary:      r.ShortSummary,
		ImageURLs:         r.ImageURLs,
		TopDestination:    r.TopDestination,
	}
}

// CreateDestination adds a destination under a location.
func (h *PlaceHandler) CreateDestination(c echo.Context) error {
	var req destinationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid destination input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	destination, err := h.uc.CreateDestination(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, destination, "Destination created successfully")
}

// GetDestination returns one destination.
func (h *PlaceHandler) GetDestination(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid destination ID")
	}

	destination, err := h.uc.GetDestination(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, destination, "")
}

// ListDestinations returns destinations, optionally scoped to a location; the
// nil UUID means every destination.
func (h *PlaceHandler) ListDestinations(c echo.Context) error {
	var locationID uuid.UUID
	if raw := c.Param("location_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid location ID")
		}
		locationID = id
	}

	destinations, err := h.uc.ListDestinations(c.Request().Context(), locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, destinations, "")
}

// UpdateDestination replaces a destination's fields.
func (h *PlaceHandler) UpdateDestination(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid destination ID")
	}

	var req destinationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid destination input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	destination, err := h.uc.UpdateDestination(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, destination, "Destination updated successfully")
}

// DeleteDestination removes a destination.
func (h *PlaceHandler) DeleteDestination(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid destination ID")
	}

	if err := h.uc.DeleteDestination(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Destination deleted successfully")
}

type thingToCarryRequest struct {
	LocationID uuid.UUID `json:"location_id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
}

// CreateThingToCarry adds a packing-list item under a location.
func (h *PlaceHandler) CreateThingToCarry(c echo.Context) error {
	var req thingToCarryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid packing-list input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	thing, err := h.uc.CreateThingToCarry(c.Request().Context(), usecase.ThingToCarryInput{
		LocationID: req.LocationID,
		Name:       req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, thing, "Packing-list item created successfully")
}

// ListThingsToCarry returns the packing list of a location.
func (h *PlaceHandler) ListThingsToCarry(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("location_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location ID")
	}

	things, err := h.uc.ListThingsToCarry(c.Request().Context(), locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, things, "")
}

// UpdateThingToCarry replaces a packing-list item's fields.
func (h *PlaceHandler) UpdateThingToCarry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	var req thingToCarryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid packing-list input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	thing, err := h.uc.UpdateThingToCarry(c.Request().Context(), id, usecase.ThingToCarryInput{
		LocationID: req.LocationID,
		Name:       req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, thing, "Packing-list item updated successfully")
}

// DeleteThingToCarry removes a packing-list item.
func (h *PlaceHandler) DeleteThingToCarry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	if err := h.uc.DeleteThingToCarry(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Packing-list item deleted successfully")
}
