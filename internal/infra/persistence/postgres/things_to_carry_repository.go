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

// thingsToCarryRepository implements the repository.ThingsToCarryRepository interface.
type thingsToCarryRepository struct {
	db *gorm.DB
}

// NewThingsToCarryRepository is the constructor for thingsToCarryRepository.
func NewThingsToCarryRepository(db *gorm.DB) repository.ThingsToCarryRepository {
	return &thingsToCarryRepository{
		db: db,
	}
}

// Create persists a new packing-list item.
func (repo *thingsToCarryRepository) Create(ctx context.Context, item *entity.ThingToCarry) error {
	itemM := fromThingToCarryDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid location reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create thing to carry")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves a packing-list item by its unique ID.
func (repo *thingsToCarryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ThingToCarry, error) {
	var itemM model.ThingToCarryModel

	if err := repo.db.WithContext(ctx).
		Preload("Location").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrThingToCarryNotFound
		}

		return nil, errors.Wrap(err, "failed to find thing to carry by ID")
	}

	return toThingToCarryDomain(&itemM), nil
}

// ListByLocation retrieves the packing-list items of a location.
func (repo *thingsToCarryRepository) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.ThingToCarry, error) {
	var itemModels []*model.ThingToCarryModel

	if err := repo.db.WithContext(ctx).
		Preload("Location").
		Where("location_id = ?", locationID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list things to carry by location")
	}

	items := make([]*entity.ThingToCarry, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toThingToCarryDomain(itemM))
	}

	return items, nil
}

// Update modifies an existing packing-list item.
func (repo *thingsToCarryRepository) Update(ctx context.Context, item *entity.ThingToCarry) error {
	itemM := fromThingToCarryDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.ThingToCarryModel{}).
		Where("id = ?", item.ID).
		Select("location_id", "name").
		Updates(itemM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrNotFound.WrapMessage("invalid location reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update thing to carry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrThingToCarryNotFound
	}

	return nil
}

// Delete permanently removes a packing-list item.
func (repo *thingsToCarryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ThingToCarryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete thing to carry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrThingToCarryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toThingToCarryDomain(data *model.ThingToCarryModel) *entity.ThingToCarry {
	if data == nil {
		return nil
	}

	item := &entity.ThingToCarry{
		ID:         data.ID,
		LocationID: data.LocationID,
		Name:       data.Name,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Location != nil {
		item.LocationName = data.Location.Name
	}

	return item
}

func fromThingToCarryDomain(data *entity.ThingToCarry) *model.ThingToCarryModel {
	if data == nil {
		return nil
	}

	return &model.ThingToCarryModel{
		ID:         data.ID,
		LocationID: data.LocationID,
		Name:       data.Name,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
