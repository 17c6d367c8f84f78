package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tripdesk/internal/domain/entity"
	domainerrors "tripdesk/internal/domain/errors"
	"tripdesk/internal/domain/repository"
	mockRepo "tripdesk/internal/mocks/repository"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	taskRepo   *mockRepo.MockTaskRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		TaskRepo:   taskRepo,
		Logger:     logger,
	})

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
		taskRepo:   taskRepo,
	}
}

func TestReviewService_Create_RecomputesRestaurantRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	ref := entity.BusinessRef{Kind: entity.BusinessRestaurant, ID: restaurantID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockStore := mockRepo.NewMockBusinessStore(t)

			mockStore.EXPECT().Kind().Return(entity.BusinessRestaurant)
			mockFactory.EXPECT().Businesses().Return(repository.NewBusinessRegistry(mockStore))
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockStore.EXPECT().Exists(ctx, restaurantID).Return(true, nil)
			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Return(nil)

			mockReviewRepo.EXPECT().
				AverageRating(ctx, entity.BusinessRestaurant, []uuid.UUID{restaurantID}).
				Return(4.5, nil)
			mockStore.EXPECT().UpdateRating(ctx, restaurantID, 4.5).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	review, err := fx.service.Create(ctx, usecase.CreateReviewInput{
		BookingID:   uuid.New(),
		Business:    ref,
		Title:       "Great dinner",
		Rating:      5,
		Description: "Fantastic food and service.",
	})

	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, ref, review.Business)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_Create_TaskRatingRollsUpOntoActivity(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	taskID := uuid.New()
	siblingID := uuid.New()
	activityID := uuid.New()
	ref := entity.BusinessRef{Kind: entity.BusinessTask, ID: taskID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockTaskRepo := mockRepo.NewMockTaskRepository(t)
			mockActivityRepo := mockRepo.NewMockActivityRepository(t)
			mockStore := mockRepo.NewMockBusinessStore(t)

			mockStore.EXPECT().Kind().Return(entity.BusinessTask)
			mockFactory.EXPECT().Businesses().Return(repository.NewBusinessRegistry(mockStore))
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().TaskRepo().Return(mockTaskRepo)
			mockFactory.EXPECT().ActivityRepo().Return(mockActivityRepo)

			mockStore.EXPECT().Exists(ctx, taskID).Return(true, nil)
			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Return(nil)

			mockReviewRepo.EXPECT().
				AverageRating(ctx, entity.BusinessTask, []uuid.UUID{taskID}).
				Return(4.0, nil)
			mockStore.EXPECT().UpdateRating(ctx, taskID, 4.0).Return(nil)

			mockTaskRepo.EXPECT().
				FindByID(ctx, taskID).
				Return(&entity.Task{ID: taskID, ActivityID: activityID}, nil)
			mockTaskRepo.EXPECT().
				IDsByActivity(ctx, activityID).
				Return([]uuid.UUID{taskID, siblingID}, nil)
			mockReviewRepo.EXPECT().
				AverageRating(ctx, entity.BusinessTask, []uuid.UUID{taskID, siblingID}).
				Return(4.2, nil)
			mockActivityRepo.EXPECT().UpdateActivityRating(ctx, activityID, 4.2).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	review, err := fx.service.Create(ctx, usecase.CreateReviewInput{
		BookingID: uuid.New(),
		Business:  ref,
		Title:     "Sunrise trek",
		Rating:    4,
	})

	require.NoError(t, err)
	require.NotNil(t, review)
}

func TestReviewService_Create_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	review, err := fx.service.Create(context.Background(), usecase.CreateReviewInput{
		BookingID: uuid.New(),
		Business:  entity.BusinessRef{Kind: entity.BusinessShop, ID: uuid.New()},
		Rating:    6,
	})

	require.Error(t, err)
	assert.Nil(t, review)
}

func TestReviewService_Create_BusinessMissing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStore := mockRepo.NewMockBusinessStore(t)

			mockStore.EXPECT().Kind().Return(entity.BusinessShop)
			mockFactory.EXPECT().Businesses().Return(repository.NewBusinessRegistry(mockStore))

			mockStore.EXPECT().Exists(ctx, shopID).Return(false, nil)

			return fn(mockFactory)
		})

	review, err := fx.service.Create(ctx, usecase.CreateReviewInput{
		BookingID: uuid.New(),
		Business:  entity.BusinessRef{Kind: entity.BusinessShop, ID: shopID},
		Rating:    3,
	})

	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestReviewService_ListForBusiness_TaskKindExpandsActivityTasks(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	activityID := uuid.New()
	taskIDs := []uuid.UUID{uuid.New(), uuid.New()}
	expected := []*entity.Review{{ID: uuid.New(), Rating: 4}}

	fx.taskRepo.EXPECT().IDsByActivity(ctx, activityID).Return(taskIDs, nil)
	fx.reviewRepo.EXPECT().
		ListForBusinesses(ctx, entity.BusinessTask, taskIDs).
		Return(expected, nil)

	reviews, err := fx.service.ListForBusiness(ctx, entity.BusinessTask, activityID)

	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}

func TestReviewService_ListForBusiness_ActivityWithoutTasks(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	activityID := uuid.New()

	fx.taskRepo.EXPECT().IDsByActivity(ctx, activityID).Return([]uuid.UUID{}, nil)

	reviews, err := fx.service.ListForBusiness(ctx, entity.BusinessTask, activityID)

	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewService_Delete_RecomputesRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	restaurantID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockStore := mockRepo.NewMockBusinessStore(t)

			mockStore.EXPECT().Kind().Return(entity.BusinessRestaurant)
			mockFactory.EXPECT().Businesses().Return(repository.NewBusinessRegistry(mockStore))
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockReviewRepo.EXPECT().
				FindByID(ctx, reviewID).
				Return(&entity.Review{
					ID:       reviewID,
					Business: entity.BusinessRef{Kind: entity.BusinessRestaurant, ID: restaurantID},
					Rating:   2,
				}, nil)
			mockReviewRepo.EXPECT().SoftDelete(ctx, reviewID).Return(nil)

			mockReviewRepo.EXPECT().
				AverageRating(ctx, entity.BusinessRestaurant, []uuid.UUID{restaurantID}).
				Return(4.8, nil)
			mockStore.EXPECT().UpdateRating(ctx, restaurantID, 4.8).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Delete(ctx, reviewID)

	require.NoError(t, err)
}
