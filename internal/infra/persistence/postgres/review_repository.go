package postgres

import (
	"context"

	"tripdesk/internal/domain/entity"
	domainerrors "tripdesk/internal/domain/errors"
	"tripdesk/internal/domain/repository"
	"tripdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookingNotFound.WrapMessage("invalid booking reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review regardless of its soft-delete flag.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// ListForBusinesses retrieves non-deleted reviews targeting any of the given
// business IDs of one kind, with the reviewer's booking contact preloaded.
func (repo *reviewRepository) ListForBusinesses(ctx context.Context, kind entity.BusinessKind, businessIDs []uuid.UUID) ([]*entity.Review, error) {
	if len(businessIDs) == 0 {
		return []*entity.Review{}, nil
	}

	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Preload("Booking").
		Where("business_type = ? AND business_id IN ? AND is_deleted = ?", string(kind), businessIDs, false).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews for businesses")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// AverageRating computes the arithmetic mean of the rating field over all
// non-deleted reviews targeting the given business IDs of one kind.
func (repo *reviewRepository) AverageRating(ctx context.Context, kind entity.BusinessKind, businessIDs []uuid.UUID) (float64, error) {
	if len(businessIDs) == 0 {
		return 0, nil
	}

	var average *float64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("business_type = ? AND business_id IN ? AND is_deleted = ?", string(kind), businessIDs, false).
		Select("AVG(rating)").
		Scan(&average).Error; err != nil {
		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	// AVG over zero rows yields NULL; a business with no reviews rates 0.
	if average == nil {
		return 0, nil
	}

	return *average, nil
}

// SoftDelete marks a review logically removed while retaining the row.
func (repo *reviewRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("is_deleted", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft-delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		BookingID: data.BookingID,
		Business: entity.BusinessRef{
			Kind: entity.BusinessKind(data.BusinessType),
			ID:   data.BusinessID,
		},
		Title:       data.Title,
		Rating:      data.Rating,
		Description: data.Description,
		Deleted:     data.IsDeleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Reviewer:    toBookingDomain(data.Booking),
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		BookingID:    data.BookingID,
		BusinessType: string(data.Business.Kind),
		BusinessID:   data.Business.ID,
		Title:        data.Title,
		Rating:       data.Rating,
		Description:  data.Description,
		IsDeleted:    data.Deleted,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
