package repository

import (
	"context"
	"errors"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review regardless of its soft-delete flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListForBusinesses retrieves non-deleted reviews targeting any of the given
	// business IDs of one kind, with the reviewer's booking contact preloaded.
	ListForBusinesses(ctx context.Context, kind entity.BusinessKind, businessIDs []uuid.UUID) ([]*entity.Review, error)

	// AverageRating computes the arithmetic mean of the rating field over all
	// non-deleted reviews targeting the given business IDs of one kind.
	// Returns 0 when no such reviews exist.
	AverageRating(ctx context.Context, kind entity.BusinessKind, businessIDs []uuid.UUID) (float64, error)

	// SoftDelete marks a review logically removed while retaining the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
