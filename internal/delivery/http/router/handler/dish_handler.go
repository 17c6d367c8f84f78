package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/delivery/http/response"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DishHandler holds dependencies for the restaurant menu handlers.
type DishHandler struct {
	uc     usecase.DishUsecase
	logger *slog.Logger
}

// NewDishHandler is the constructor for DishHandler, injected by Fx.
func NewDishHandler(uc usecase.DishUsecase, logger *slog.Logger) *DishHandler {
	return &DishHandler{uc: uc, logger: logger}
}

type createDishRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	DiscountedPrice float64  `json:"discounted_price" validate:"omitempty,gte=0"`
	ImageURL        string   `json:"image_url"`
	Category        string   `json:"category"`
	Filter          []string `json:"filter"`
}

// Create adds a menu item owned by the calling restaurant.
func (h *DishHandler) Create(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	var req createDishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	dish, err := h.uc.Create(c.Request().Context(), usecase.CreateDishInput{
		OwnerID:         claims.SubjectID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		ImageURL:        req.ImageURL,
		Category:        req.Category,
		Filter:          req.Filter,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, dish, "Dish created successfully")
}

// Get returns a single menu item.
func (h *DishHandler) Get(c echo.Context) error {
	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dish ID")
	}

	dish, err := h.uc.Get(c.Request().Context(), dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "")
}

type listDishRequest struct {
	RestaurantID uuid.UUID `query:"restaurant_id"`
	Name         string    `query:"name"`
	Category     string    `query:"category"`
	MinPrice     *float64  `query:"min_price"`
	MaxPrice     *float64  `query:"max_price"`
	Filter       []string  `query:"filter"`
	Deleted      *bool     `query:"deleted"`
}

// List returns menu items matching the query filter.
func (h *DishHandler) List(c echo.Context) error {
	var req listDishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish filter")
	}

	dishes, err := h.uc.List(c.Request().Context(), usecase.ListDishInput{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Category:     req.Category,
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
		Filter:       req.Filter,
		Deleted:      req.Deleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes, "")
}

type updateDishRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0"`
	DiscountedPrice *float64 `json:"discounted_price" validate:"omitempty,gte=0"`
	ImageURL        *string  `json:"image_url"`
	Category        *string  `json:"category"`
	Filter          []string `json:"filter"`
	Deleted         *bool    `json:"deleted"`
}

// Update patches a menu item owned by the caller.
func (h *DishHandler) Update(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dish ID")
	}

	var req updateDishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish patch")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	dish, err := h.uc.Update(c.Request().Context(), usecase.UpdateDishInput{
		DishID:          dishID,
		CallerID:        claims.SubjectID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		ImageURL:        req.ImageURL,
		Category:        req.Category,
		Filter:          req.Filter,
		Deleted:         req.Deleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "Dish updated successfully")
}

// Delete permanently removes a menu item owned by the caller.
func (h *DishHandler) Delete(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dish ID")
	}

	if err := h.uc.Delete(c.Request().Context(), dishID, claims.SubjectID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dish deleted successfully")
}
