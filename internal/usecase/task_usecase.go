package usecase

import (
	"context"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateTaskInput defines the data an activity organizer supplies for a new task.
type CreateTaskInput struct {
	OwnerID            uuid.UUID
	Name               string
	Description        string
	WhatsIncluded      []string
	AdditionalInfo     entity.TaskInfo
	Price              float64
	Slots              []string
	DiscountPercentage float64
	ImageURLs          []string
	Filter             []string
	CanReserve         *bool
}

// ListTaskInput narrows task listings.
type ListTaskInput struct {
	ActivityID uuid.UUID
	Name       string
	MinPrice   *float64
	MaxPrice   *float64
	Filter     []string
	Deleted    *bool
}

// UpdateTaskInput carries a partial patch for a task. Nil fields are left untouched.
type UpdateTaskInput struct {
	TaskID             uuid.UUID
	CallerID           uuid.UUID
	Name               *string
	Description        *string
	WhatsIncluded      []string
	AdditionalInfo     *entity.TaskInfo
	Price              *float64
	Slots              []string
	DiscountPercentage *float64
	ImageURLs          []string
	Filter             []string
	CanReserve         *bool
	Deleted            *bool
}

// TaskUsecase defines the activity task business operations.
// Mutations enforce that the caller owns the task.
type TaskUsecase interface {
	Create(ctx context.Context, input CreateTaskInput) (*entity.Task, error)
	Get(ctx context.Context, taskID uuid.UUID) (*entity.Task, error)
	List(ctx context.Context, input ListTaskInput) ([]*entity.Task, error)
	Update(ctx context.Context, input UpdateTaskInput) (*entity.Task, error)
	// Delete soft-deletes a task owned by the caller; historical reviews of the
	// task keep contributing to the activity's rolled-up rating.
	Delete(ctx context.Context, taskID, callerID uuid.UUID) error
}
