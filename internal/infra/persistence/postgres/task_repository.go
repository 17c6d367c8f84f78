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

// taskRepository implements repository.TaskRepository and, as the reviewable
// unit of the Activity role, repository.BusinessStore.
type taskRepository struct {
	db *gorm.DB
}

func newTaskRepository(db *gorm.DB) *taskRepository {
	return &taskRepository{db: db}
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return newTaskRepository(db)
}

// Kind identifies which business kind this store serves.
func (repo *taskRepository) Kind() entity.BusinessKind {
	return entity.BusinessTask
}

// Create persists a new task.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid activity reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindByID retrieves a task by its unique ID.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by ID")
	}

	return toTaskDomain(&taskM), nil
}

// List retrieves tasks matching the filter.
func (repo *taskRepository) List(ctx context.Context, filter repository.CatalogFilter) ([]*entity.Task, error) {
	query := applyCatalogFilter(repo.db.WithContext(ctx).Model(&model.TaskModel{}), "activity_id", filter)

	var taskModels []*model.TaskModel
	if err := query.Order("created_at DESC").Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// Update modifies an existing task.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", task.ID).
		Select("name", "description", "whats_included", "additional_info", "price", "slots",
			"discount_percentage", "image_urls", "filter", "can_reserve", "is_deleted").
		Updates(taskM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// SoftDelete marks a task logically removed while retaining the row.
func (repo *taskRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", id).
		Update("is_deleted", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft-delete task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// IDsByActivity lists the task IDs under an activity, including soft-deleted
// tasks so historical reviews keep contributing to roll-ups consistently.
func (repo *taskRepository) IDsByActivity(ctx context.Context, activityID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("activity_id = ?", activityID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list task IDs by activity")
	}

	return ids, nil
}

// UpdateRating overwrites the aggregate rating of a task.
func (repo *taskRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", id).
		Update("customer_rating", rating)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update task rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Exists reports whether the referenced task is present and not soft-deleted.
func (repo *taskRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check task existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:                 data.ID,
		UserID:             data.UserID,
		ActivityID:         data.ActivityID,
		Name:               data.Name,
		Description:        data.Description,
		WhatsIncluded:      data.WhatsIncluded,
		AdditionalInfo:     data.AdditionalInfo,
		Price:              data.Price,
		Slots:              data.Slots,
		DiscountPercentage: data.DiscountPercentage,
		ImageURLs:          data.ImageURLs,
		Filter:             data.Filter,
		CustomerRating:     data.CustomerRating,
		CanReserve:         data.CanReserve,
		Deleted:            data.IsDeleted,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		ActivityID:         data.ActivityID,
		Name:               data.Name,
		Description:        data.Description,
		WhatsIncluded:      data.WhatsIncluded,
		AdditionalInfo:     data.AdditionalInfo,
		Price:              data.Price,
		Slots:              data.Slots,
		DiscountPercentage: data.DiscountPercentage,
		ImageURLs:          data.ImageURLs,
		Filter:             data.Filter,
		CustomerRating:     data.CustomerRating,
		CanReserve:         data.CanReserve,
		IsDeleted:          data.Deleted,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
