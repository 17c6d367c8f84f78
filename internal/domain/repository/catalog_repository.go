package repository

import (
	"context"
	"errors"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrDishNotFound is returned when a dish does not exist.
	ErrDishNotFound = errors.New("dish not found")
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("task not found")
)

// CatalogFilter narrows catalog item listings. All fields are optional.
type CatalogFilter struct {
	// Name matches as a case-insensitive substring.
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	// Filter matches items tagged with any of the given tags.
	Filter []string
	// Deleted filters on the soft-delete flag when non-nil; nil returns everything.
	Deleted *bool
	// ParentID scopes to the owning restaurant, shop or activity.
	ParentID uuid.UUID
}

// DishRepository defines the standard operations for dish persistence.
type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)
	List(ctx context.Context, filter CatalogFilter) ([]*entity.Dish, error)
	Update(ctx context.Context, dish *entity.Dish) error
	// Delete permanently removes a dish.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter CatalogFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete permanently removes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	List(ctx context.Context, filter CatalogFilter) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	// SoftDelete marks a task logically removed while retaining the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// IDsByActivity lists the task IDs under an activity, including soft-deleted
	// tasks so historical reviews keep contributing to roll-ups consistently.
	IDsByActivity(ctx context.Context, activityID uuid.UUID) ([]uuid.UUID, error)

	// UpdateRating overwrites the aggregate rating of a task.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error
}
