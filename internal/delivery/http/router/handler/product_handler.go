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

// ProductHandler holds dependencies for the shop catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

type createProductRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	DiscountedPrice float64  `json:"discounted_price" validate:"omitempty,gte=0"`
	ImageURLs       []string `json:"image_url"`
	Category        string   `json:"category"`
	Filter          []string `json:"filter"`
}

// Create adds a catalog item owned by the calling shop.
func (h *ProductHandler) Create(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		OwnerID:         claims.SubjectID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		ImageURLs:       req.ImageURLs,
		Category:        req.Category,
		Filter:          req.Filter,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Get returns a single catalog item.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.Get(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

type listProductRequest struct {
	ShopID   uuid.UUID `query:"shop_id"`
	Name     string    `query:"name"`
	Category string    `query:"category"`
	MinPrice *float64  `query:"min_price"`
	MaxPrice *float64  `query:"max_price"`
	Filter   []string  `query:"filter"`
	Deleted  *bool     `query:"deleted"`
}

// List returns catalog items matching the query filter.
func (h *ProductHandler) List(c echo.Context) error {
	var req listProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product filter")
	}

	products, err := h.uc.List(c.Request().Context(), usecase.ListProductInput{
		ShopID:   req.ShopID,
		Name:     req.Name,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Filter:   req.Filter,
		Deleted:  req.Deleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

type updateProductRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0"`
	DiscountedPrice *float64 `json:"discounted_price" validate:"omitempty,gte=0"`
	ImageURLs       []string `json:"image_url"`
	Category        *string  `json:"category"`
	Filter          []string `json:"filter"`
	Deleted         *bool    `json:"deleted"`
}

// Update patches a catalog item owned by the caller.
func (h *ProductHandler) Update(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product patch")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.uc.Update(c.Request().Context(), usecase.UpdateProductInput{
		ProductID:       productID,
		CallerID:        claims.SubjectID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		ImageURLs:       req.ImageURLs,
		Category:        req.Category,
		Filter:          req.Filter,
		Deleted:         req.Deleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete permanently removes a catalog item owned by the caller.
func (h *ProductHandler) Delete(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.Delete(c.Request().Context(), productID, claims.SubjectID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
