package impl

import (
	"context"
	"log/slog"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/domain/entity"
	domainerrors "tripdesk/internal/domain/errors"
	"tripdesk/internal/domain/repository"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	taskRepo   repository.TaskRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	TaskRepo   repository.TaskRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		taskRepo:   params.TaskRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a review and recomputes the target's aggregate rating in the
// same transaction, so the stored mean never drifts from the review rows.
func (srv *reviewService) Create(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if !input.Business.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidBusinessType
	}

	review := &entity.Review{
		ID:          uuid.New(),
		BookingID:   input.BookingID,
		Business:    input.Business,
		Title:       input.Title,
		Rating:      input.Rating,
		Description: input.Description,
	}
	if !review.ValidRating() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		store, ok := repoFactory.Businesses().Lookup(input.Business.Kind)
		if !ok {
			return domainerrors.ErrInvalidBusinessType
		}

		exists, err := store.Exists(ctx, input.Business.ID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve reviewed business")
		}
		if !exists {
			return domainerrors.ErrBusinessNotFound
		}

		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return srv.recomputeRating(ctx, repoFactory, input.Business)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute review creation transaction",
			slog.Any("businessID", input.Business.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	srv.log(ctx).Info("Review created",
		slog.Any("reviewID", review.ID),
		slog.String("businessType", string(input.Business.Kind)),
		slog.Any("businessID", input.Business.ID))

	return review, nil
}

// ListForBusiness returns the non-deleted reviews of a business. For the Task
// kind the given ID is the activity identity and reviews of every task under
// it are returned.
func (srv *reviewService) ListForBusiness(ctx context.Context, kind entity.BusinessKind, businessID uuid.UUID) ([]*entity.Review, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrInvalidBusinessType
	}

	businessIDs := []uuid.UUID{businessID}
	if kind == entity.BusinessTask {
		taskIDs, err := srv.taskRepo.IDsByActivity(ctx, businessID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve activity tasks")
		}
		businessIDs = taskIDs
	}

	if len(businessIDs) == 0 {
		return []*entity.Review{}, nil
	}

	reviews, err := srv.reviewRepo.ListForBusinesses(ctx, kind, businessIDs)

	return reviews, errors.Wrap(err, "failed to list reviews")
}

// Delete soft-deletes a review and recomputes the target's rating, same as a
// creation would.
func (srv *reviewService) Delete(ctx context.Context, reviewID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}

		if err := reviewRepo.SoftDelete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return srv.recomputeRating(ctx, repoFactory, review.Business)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute review deletion transaction",
			slog.Any("reviewID", reviewID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute review deletion transaction")
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID))

	return nil
}

// recomputeRating overwrites the target's aggregate rating with the mean of
// its non-deleted reviews. A task write additionally rolls the mean over all
// the parent activity's task reviews up onto the activity profile.
func (srv *reviewService) recomputeRating(ctx context.Context, repoFactory repository.RepositoryFactory, ref entity.BusinessRef) error {
	store, ok := repoFactory.Businesses().Lookup(ref.Kind)
	if !ok {
		return domainerrors.ErrInvalidBusinessType
	}

	reviewRepo := repoFactory.ReviewRepo()

	mean, err := reviewRepo.AverageRating(ctx, ref.Kind, []uuid.UUID{ref.ID})
	if err != nil {
		return errors.Wrap(err, "failed to compute business rating")
	}
	if err := store.UpdateRating(ctx, ref.ID, mean); err != nil {
		return errors.Wrap(err, "failed to store business rating")
	}

	if ref.Kind != entity.BusinessTask {
		return nil
	}

	task, err := repoFactory.TaskRepo().FindByID(ctx, ref.ID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve task for activity roll-up")
	}

	taskIDs, err := repoFactory.TaskRepo().IDsByActivity(ctx, task.ActivityID)
	if err != nil {
		return errors.Wrap(err, "failed to list activity tasks for roll-up")
	}

	rollup, err := reviewRepo.AverageRating(ctx, entity.BusinessTask, taskIDs)
	if err != nil {
		return errors.Wrap(err, "failed to compute activity roll-up rating")
	}

	return errors.Wrap(repoFactory.ActivityRepo().UpdateActivityRating(ctx, task.ActivityID, rollup),
		"failed to store activity roll-up rating")
}
