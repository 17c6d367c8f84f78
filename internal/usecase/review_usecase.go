package usecase

import (
	"context"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput defines the data a verified customer supplies for a review.
type CreateReviewInput struct {
	BookingID   uuid.UUID
	Business    entity.BusinessRef
	Title       string
	Rating      int
	Description string
}

// ReviewUsecase defines the review and rating-aggregation business operations.
// Each write recomputes the target's aggregate rating as the arithmetic mean
// over its non-deleted reviews in the same transaction. A task review also
// rolls the mean over all the parent activity's task reviews up onto the activity.
type ReviewUsecase interface {
	// Create validates the target exists and stores the review.
	Create(ctx context.Context, input CreateReviewInput) (*entity.Review, error)

	// ListForBusiness returns the non-deleted reviews of a business with the
	// reviewer's booking contact attached. For the Task kind, businessID is
	// the activity identity and reviews of all its tasks are returned.
	ListForBusiness(ctx context.Context, kind entity.BusinessKind, businessID uuid.UUID) ([]*entity.Review, error)

	// Delete soft-deletes a review and recomputes the target's rating.
	Delete(ctx context.Context, reviewID uuid.UUID) error
}
