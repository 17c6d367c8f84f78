package usecase

import (
	"context"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateDishInput defines the data a restaurant supplies for a new menu item.
type CreateDishInput struct {
	OwnerID         uuid.UUID
	Name            string
	Description     string
	Price           float64
	DiscountedPrice float64
	ImageURL        string
	Category        string
	Filter          []string
}

// ListDishInput narrows dish listings.
type ListDishInput struct {
	RestaurantID uuid.UUID
	Name         string
	Category     string
	MinPrice     *float64
	MaxPrice     *float64
	Filter       []string
	Deleted      *bool
}

// UpdateDishInput carries a partial patch for a dish. Nil fields are left untouched.
type UpdateDishInput struct {
	DishID          uuid.UUID
	CallerID        uuid.UUID
	Name            *string
	Description     *string
	Price           *float64
	DiscountedPrice *float64
	ImageURL        *string
	Category        *string
	Filter          []string
	Deleted         *bool
}

// DishUsecase defines the restaurant menu business operations.
// Mutations enforce that the caller owns the dish.
type DishUsecase interface {
	Create(ctx context.Context, input CreateDishInput) (*entity.Dish, error)
	Get(ctx context.Context, dishID uuid.UUID) (*entity.Dish, error)
	List(ctx context.Context, input ListDishInput) ([]*entity.Dish, error)
	Update(ctx context.Context, input UpdateDishInput) (*entity.Dish, error)
	// Delete permanently removes a dish owned by the caller.
	Delete(ctx context.Context, dishID, callerID uuid.UUID) error
}
