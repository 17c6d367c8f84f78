package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tripdesk/internal/domain/entity"
	domainerrors "tripdesk/internal/domain/errors"
	mockRepo "tripdesk/internal/mocks/repository"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// taskServiceFixtures holds all test dependencies for task service tests.
type taskServiceFixtures struct {
	service  usecase.TaskUsecase
	taskRepo *mockRepo.MockTaskRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTaskService(TaskServiceParams{TaskRepo: taskRepo, Logger: logger})

	return taskServiceFixtures{service: service, taskRepo: taskRepo}
}

func TestTaskService_Create_DefaultsReservable(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Return(nil)

	task, err := fx.service.Create(ctx, usecase.CreateTaskInput{
		OwnerID: ownerID,
		Name:    "Sunrise Trek",
		Price:   1200,
	})

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, ownerID, task.UserID)
	assert.Equal(t, ownerID, task.ActivityID)
	assert.True(t, task.CanReserve)
}

func TestTaskService_Create_UnknownDifficulty(t *testing.T) {
	fx := createTestTaskService(t)

	task, err := fx.service.Create(context.Background(), usecase.CreateTaskInput{
		OwnerID:        uuid.New(),
		Name:           "Sunrise Trek",
		AdditionalInfo: entity.TaskInfo{Difficulty: "Impossible"},
	})

	require.Error(t, err)
	assert.Nil(t, task)
}

func TestTaskService_Delete_SoftDeletesOwnedTask(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	taskID := uuid.New()
	ownerID := uuid.New()

	fx.taskRepo.EXPECT().
		FindByID(ctx, taskID).
		Return(&entity.Task{ID: taskID, UserID: ownerID}, nil)
	fx.taskRepo.EXPECT().SoftDelete(ctx, taskID).Return(nil)

	err := fx.service.Delete(ctx, taskID, ownerID)

	require.NoError(t, err)
}

func TestTaskService_Delete_NotOwner(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().
		FindByID(ctx, taskID).
		Return(&entity.Task{ID: taskID, UserID: uuid.New()}, nil)

	err := fx.service.Delete(ctx, taskID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}
