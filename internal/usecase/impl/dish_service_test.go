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

// dishServiceFixtures holds all test dependencies for dish service tests.
type dishServiceFixtures struct {
	service  usecase.DishUsecase
	dishRepo *mockRepo.MockDishRepository
}

func createTestDishService(t *testing.T) dishServiceFixtures {
	dishRepo := mockRepo.NewMockDishRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDishService(DishServiceParams{DishRepo: dishRepo, Logger: logger})

	return dishServiceFixtures{service: service, dishRepo: dishRepo}
}

func TestDishService_Create_SetsOwner(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.dishRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Dish")).
		Return(nil)

	dish, err := fx.service.Create(ctx, usecase.CreateDishInput{
		OwnerID:  ownerID,
		Name:     "Paneer Tikka",
		Price:    240,
		Category: "Starters",
	})

	require.NoError(t, err)
	require.NotNil(t, dish)
	assert.Equal(t, ownerID, dish.UserID)
	assert.Equal(t, ownerID, dish.RestaurantID)
	assert.NotEqual(t, uuid.Nil, dish.ID)
}

func TestDishService_Update_NotOwner(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	newName := "Paneer Tikka Masala"

	fx.dishRepo.EXPECT().
		FindByID(ctx, dishID).
		Return(&entity.Dish{ID: dishID, UserID: uuid.New()}, nil)

	dish, err := fx.service.Update(ctx, usecase.UpdateDishInput{
		DishID:   dishID,
		CallerID: uuid.New(),
		Name:     &newName,
	})

	require.Error(t, err)
	assert.Nil(t, dish)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestDishService_Update_Success(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	ownerID := uuid.New()
	newPrice := 260.0

	fx.dishRepo.EXPECT().
		FindByID(ctx, dishID).
		Return(&entity.Dish{ID: dishID, UserID: ownerID, Name: "Paneer Tikka", Price: 240}, nil)

	fx.dishRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Dish")).
		Run(func(ctx context.Context, dish *entity.Dish) {
			assert.Equal(t, 260.0, dish.Price)
			assert.Equal(t, "Paneer Tikka", dish.Name)
		}).
		Return(nil)

	dish, err := fx.service.Update(ctx, usecase.UpdateDishInput{
		DishID:   dishID,
		CallerID: ownerID,
		Price:    &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 260.0, dish.Price)
}

func TestDishService_Delete_NotOwner(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()

	fx.dishRepo.EXPECT().
		FindByID(ctx, dishID).
		Return(&entity.Dish{ID: dishID, UserID: uuid.New()}, nil)

	err := fx.service.Delete(ctx, dishID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestDishService_Delete_Success(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	ownerID := uuid.New()

	fx.dishRepo.EXPECT().
		FindByID(ctx, dishID).
		Return(&entity.Dish{ID: dishID, UserID: ownerID}, nil)
	fx.dishRepo.EXPECT().Delete(ctx, dishID).Return(nil)

	err := fx.service.Delete(ctx, dishID, ownerID)

	require.NoError(t, err)
}

func TestDishService_Get_Missing(t *testing.T) {
	fx := createTestDishService(t)

	ctx := context.Background()
	dishID := uuid.New()

	fx.dishRepo.EXPECT().FindByID(ctx, dishID).Return(nil, repository.ErrDishNotFound)

	dish, err := fx.service.Get(ctx, dishID)

	require.Error(t, err)
	assert.Nil(t, dish)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
