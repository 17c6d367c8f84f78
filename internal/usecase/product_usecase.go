package usecase

import (
	"context"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data a shop supplies for a new catalog item.
type CreateProductInput struct {
	OwnerID         uuid.UUID
	Name            string
	Description     string
	Price           float64
	DiscountedPrice float64
	ImageURLs       []string
	Category        string
	Filter          []string
}

// ListProductInput narrows product listings.
type ListProductInput struct {
	ShopID   uuid.UUID
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Filter   []string
	Deleted  *bool
}

// UpdateProductInput carries a partial patch for a product. Nil fields are left untouched.
type UpdateProductInput struct {
	ProductID       uuid.UUID
	CallerID        uuid.UUID
	Name            *string
	Description     *string
	Price           *float64
	DiscountedPrice *float64
	ImageURLs       []string
	Category        *string
	Filter          []string
	Deleted         *bool
}

// ProductUsecase defines the shop catalog business operations.
// Mutations enforce that the caller owns the product.
type ProductUsecase interface {
	Create(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, input ListProductInput) ([]*entity.Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*entity.Product, error)
	// Delete permanently removes a product owned by the caller.
	Delete(ctx context.Context, productID, callerID uuid.UUID) error
}
