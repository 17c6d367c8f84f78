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

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{taskRepo: params.TaskRepo, logger: params.Logger}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a task owned by the calling activity organizer.
func (srv *taskService) Create(ctx context.Context, input usecase.CreateTaskInput) (*entity.Task, error) {
	if input.AdditionalInfo.Difficulty != "" && !input.AdditionalInfo.Difficulty.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown task difficulty")
	}

	task := &entity.Task{
		ID:                 uuid.New(),
		UserID:             input.OwnerID,
		ActivityID:         input.OwnerID,
		Name:               input.Name,
		Description:        input.Description,
		WhatsIncluded:      input.WhatsIncluded,
		AdditionalInfo:     input.AdditionalInfo,
		Price:              input.Price,
		Slots:              input.Slots,
		DiscountPercentage: input.DiscountPercentage,
		ImageURLs:          input.ImageURLs,
		Filter:             input.Filter,
		CanReserve:         true,
	}
	if input.CanReserve != nil {
		task.CanReserve = *input.CanReserve
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	return task, nil
}

func (srv *taskService) Get(ctx context.Context, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("task not found")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	return task, nil
}

func (srv *taskService) List(ctx context.Context, input usecase.ListTaskInput) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.List(ctx, repository.CatalogFilter{
		ParentID: input.ActivityID,
		Name:     input.Name,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Filter:   input.Filter,
		Deleted:  input.Deleted,
	})

	return tasks, errors.Wrap(err, "failed to list tasks")
}

// Update patches a task after checking the caller owns it.
func (srv *taskService) Update(ctx context.Context, input usecase.UpdateTaskInput) (*entity.Task, error) {
	task, err := srv.ownedTask(ctx, input.TaskID, input.CallerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.WhatsIncluded != nil {
		task.WhatsIncluded = input.WhatsIncluded
	}
	if input.AdditionalInfo != nil {
		if input.AdditionalInfo.Difficulty != "" && !input.AdditionalInfo.Difficulty.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown task difficulty")
		}
		task.AdditionalInfo = *input.AdditionalInfo
	}
	if input.Price != nil {
		task.Price = *input.Price
	}
	if input.Slots != nil {
		task.Slots = input.Slots
	}
	if input.DiscountPercentage != nil {
		task.DiscountPercentage = *input.DiscountPercentage
	}
	if input.ImageURLs != nil {
		task.ImageURLs = input.ImageURLs
	}
	if input.Filter != nil {
		task.Filter = input.Filter
	}
	if input.CanReserve != nil {
		task.CanReserve = *input.CanReserve
	}
	if input.Deleted != nil {
		task.Deleted = *input.Deleted
	}

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to update task")
	}

	return task, nil
}

// Delete soft-deletes a task after checking the caller owns it. The row stays
// so historical reviews keep feeding the activity's rolled-up rating.
func (srv *taskService) Delete(ctx context.Context, taskID, callerID uuid.UUID) error {
	if _, err := srv.ownedTask(ctx, taskID, callerID); err != nil {
		return err
	}

	if err := srv.taskRepo.SoftDelete(ctx, taskID); err != nil {
		return errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Info("Task deleted", slog.Any("taskID", taskID), slog.Any("callerID", callerID))

	return nil
}

func (srv *taskService) ownedTask(ctx context.Context, taskID, callerID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("task not found")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	if task.UserID != callerID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return task, nil
}
