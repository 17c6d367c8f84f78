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

// reservationServiceFixtures holds all test dependencies for reservation service tests.
type reservationServiceFixtures struct {
	service         usecase.ReservationUsecase
	reservationRepo *mockRepo.MockReservationRepository
	restaurantRepo  *mockRepo.MockRestaurantRepository
	taskRepo        *mockRepo.MockTaskRepository
}

func createTestReservationService(t *testing.T) reservationServiceFixtures {
	reservationRepo := mockRepo.NewMockReservationRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReservationService(ReservationServiceParams{
		ReservationRepo: reservationRepo,
		RestaurantRepo:  restaurantRepo,
		TaskRepo:        taskRepo,
		Logger:          logger,
	})

	return reservationServiceFixtures{
		service:         service,
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		taskRepo:        taskRepo,
	}
}

func TestReservationService_Book_RestaurantSuccess(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurant(ctx, restaurantID).
		Return(&entity.RestaurantProfile{UserID: restaurantID, CanReserve: true}, nil)

	fx.reservationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Reservation")).
		Return(nil)

	reservation, err := fx.service.Book(ctx, usecase.BookReservationInput{
		BookingID:  uuid.New(),
		Business:   entity.BusinessRef{Kind: entity.BusinessRestaurant, ID: restaurantID},
		Date:       "Mon Mar 17 2025",
		BookedTime: "19:30",
	})

	require.NoError(t, err)
	require.NotNil(t, reservation)
	assert.Equal(t, entity.ReservationPending, reservation.Status)
	assert.Equal(t, 1, reservation.TotalMembers)
	assert.False(t, reservation.Deleted)
}

func TestReservationService_Book_ShopKindRejected(t *testing.T) {
	fx := createTestReservationService(t)

	reservation, err := fx.service.Book(context.Background(), usecase.BookReservationInput{
		BookingID: uuid.New(),
		Business:  entity.BusinessRef{Kind: entity.BusinessShop, ID: uuid.New()},
	})

	require.Error(t, err)
	assert.Nil(t, reservation)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBusinessType)
}

func TestReservationService_Book_RestaurantNotReservable(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurant(ctx, restaurantID).
		Return(&entity.RestaurantProfile{UserID: restaurantID, CanReserve: false}, nil)

	reservation, err := fx.service.Book(ctx, usecase.BookReservationInput{
		BookingID: uuid.New(),
		Business:  entity.BusinessRef{Kind: entity.BusinessRestaurant, ID: restaurantID},
	})

	require.Error(t, err)
	assert.Nil(t, reservation)
}

func TestReservationService_Book_TaskMissing(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(nil, repository.ErrTaskNotFound)

	reservation, err := fx.service.Book(ctx, usecase.BookReservationInput{
		BookingID: uuid.New(),
		Business:  entity.BusinessRef{Kind: entity.BusinessTask, ID: taskID},
	})

	require.Error(t, err)
	assert.Nil(t, reservation)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestReservationService_Update_TerminalStatusRetiresReservation(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservationID := uuid.New()
	status := entity.ReservationCompleted

	fx.reservationRepo.EXPECT().
		FindByID(ctx, reservationID).
		Return(&entity.Reservation{ID: reservationID, Status: entity.ReservationConfirmed}, nil)

	fx.reservationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Reservation")).
		Run(func(ctx context.Context, reservation *entity.Reservation) {
			assert.Equal(t, entity.ReservationCompleted, reservation.Status)
			assert.True(t, reservation.Deleted)
		}).
		Return(nil)

	reservation, err := fx.service.Update(ctx, usecase.UpdateReservationInput{
		ReservationID: reservationID,
		Status:        &status,
	})

	require.NoError(t, err)
	assert.True(t, reservation.Deleted)
}

func TestReservationService_Update_PendingStatusRevivesReservation(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservationID := uuid.New()
	status := entity.ReservationPending

	fx.reservationRepo.EXPECT().
		FindByID(ctx, reservationID).
		Return(&entity.Reservation{
			ID:      reservationID,
			Status:  entity.ReservationCancelled,
			Deleted: true,
		}, nil)

	fx.reservationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Reservation")).
		Run(func(ctx context.Context, reservation *entity.Reservation) {
			assert.Equal(t, entity.ReservationPending, reservation.Status)
			assert.False(t, reservation.Deleted)
		}).
		Return(nil)

	reservation, err := fx.service.Update(ctx, usecase.UpdateReservationInput{
		ReservationID: reservationID,
		Status:        &status,
	})

	require.NoError(t, err)
	assert.False(t, reservation.Deleted)
}

func TestReservationService_Update_UnknownStatus(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservationID := uuid.New()
	status := entity.ReservationStatus("Paused")

	fx.reservationRepo.EXPECT().
		FindByID(ctx, reservationID).
		Return(&entity.Reservation{ID: reservationID, Status: entity.ReservationPending}, nil)

	reservation, err := fx.service.Update(ctx, usecase.UpdateReservationInput{
		ReservationID: reservationID,
		Status:        &status,
	})

	require.Error(t, err)
	assert.Nil(t, reservation)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservationID := uuid.New()

	fx.reservationRepo.EXPECT().
		FindByID(ctx, reservationID).
		Return(&entity.Reservation{ID: reservationID, Status: entity.ReservationConfirmed}, nil)

	fx.reservationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Reservation")).
		Run(func(ctx context.Context, reservation *entity.Reservation) {
			assert.Equal(t, entity.ReservationCancelled, reservation.Status)
			assert.True(t, reservation.Deleted)
		}).
		Return(nil)

	err := fx.service.Cancel(ctx, reservationID)

	require.NoError(t, err)
}

func TestReservationService_ListForBusiness_PartitionsActiveAndInactive(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	booking := &entity.Booking{ID: uuid.New()}

	active := &entity.Reservation{
		ID:      uuid.New(),
		Status:  entity.ReservationConfirmed,
		Booking: booking,
	}
	retired := &entity.Reservation{
		ID:      uuid.New(),
		Status:  entity.ReservationCompleted,
		Deleted: true,
		Booking: booking,
	}

	fx.reservationRepo.EXPECT().
		ListByBusinesses(ctx, entity.BusinessRestaurant, []uuid.UUID{restaurantID}, repository.ReservationFilter{}).
		Return([]*entity.Reservation{active, retired}, nil)

	output, err := fx.service.ListForBusiness(ctx, usecase.ListBusinessReservationsInput{
		Kind:       entity.BusinessRestaurant,
		BusinessID: restaurantID,
	})

	require.NoError(t, err)
	assert.Equal(t, []*entity.Reservation{active}, output.Active)
	assert.Equal(t, []*entity.Reservation{retired}, output.Inactive)
}

func TestReservationService_ListForBusiness_TaskKindExpandsActivityTasks(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	activityID := uuid.New()
	taskIDs := []uuid.UUID{uuid.New(), uuid.New()}

	fx.taskRepo.EXPECT().IDsByActivity(ctx, activityID).Return(taskIDs, nil)
	fx.reservationRepo.EXPECT().
		ListByBusinesses(ctx, entity.BusinessTask, taskIDs, repository.ReservationFilter{}).
		Return([]*entity.Reservation{}, nil)

	output, err := fx.service.ListForBusiness(ctx, usecase.ListBusinessReservationsInput{
		Kind:       entity.BusinessTask,
		BusinessID: activityID,
	})

	require.NoError(t, err)
	assert.Empty(t, output.Active)
	assert.Empty(t, output.Inactive)
}

func TestReservationService_ListByBooking_AttachesBusinessDetails(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	restaurantID := uuid.New()
	restaurant := &entity.RestaurantProfile{UserID: restaurantID, BusinessName: "Spice Garden"}

	fx.reservationRepo.EXPECT().
		ListByBooking(ctx, bookingID).
		Return([]*entity.Reservation{{
			ID:       uuid.New(),
			Business: entity.BusinessRef{Kind: entity.BusinessRestaurant, ID: restaurantID},
		}}, nil)
	fx.restaurantRepo.EXPECT().FindRestaurant(ctx, restaurantID).Return(restaurant, nil)

	reservations, err := fx.service.ListByBooking(ctx, bookingID)

	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, restaurant, reservations[0].BusinessDetails)
}
