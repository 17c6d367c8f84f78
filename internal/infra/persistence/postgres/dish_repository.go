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

// dishRepository implements the repository.DishRepository interface.
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{
		db: db,
	}
}

// Create persists a new dish.
func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Create(dishM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid restaurant reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required dish information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = dishM.ID
	dish.CreatedAt = dishM.CreatedAt
	dish.UpdatedAt = dishM.UpdatedAt

	return nil
}

// FindByID retrieves a dish by its unique ID.
func (repo *dishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	var dishM model.DishModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dishM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish by ID")
	}

	return toDishDomain(&dishM), nil
}

// List retrieves dishes matching the filter.
func (repo *dishRepository) List(ctx context.Context, filter repository.CatalogFilter) ([]*entity.Dish, error) {
	query := applyCatalogFilter(repo.db.WithContext(ctx).Model(&model.DishModel{}), "restaurant_id", filter)

	var dishModels []*model.DishModel
	if err := query.Order("created_at DESC").Find(&dishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dishes")
	}

	dishes := make([]*entity.Dish, 0, len(dishModels))
	for _, dishM := range dishModels {
		dishes = append(dishes, toDishDomain(dishM))
	}

	return dishes, nil
}

// Update modifies an existing dish.
func (repo *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	result := repo.db.WithContext(ctx).
		Model(&model.DishModel{}).
		Where("id = ?", dish.ID).
		Select("name", "description", "price", "discounted_price", "image_url", "category", "filter", "is_deleted").
		Updates(dishM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// Delete permanently removes a dish.
func (repo *dishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DishModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete dish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// applyCatalogFilter translates the shared catalog filter into WHERE clauses.
// parentColumn names the column linking the item to its owning profile.
func applyCatalogFilter(query *gorm.DB, parentColumn string, filter repository.CatalogFilter) *gorm.DB {
	if filter.ParentID != uuid.Nil {
		query = query.Where(parentColumn+" = ?", filter.ParentID)
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if len(filter.Filter) > 0 {
		// Any overlap between the stored tags and the requested ones matches.
		tagged := query.Session(&gorm.Session{NewDB: true})
		for i, tag := range filter.Filter {
			if i == 0 {
				tagged = tagged.Where("filter @> to_jsonb(?::text)", tag)
			} else {
				tagged = tagged.Or("filter @> to_jsonb(?::text)", tag)
			}
		}
		query = query.Where(tagged)
	}
	if filter.Deleted != nil {
		query = query.Where("is_deleted = ?", *filter.Deleted)
	}

	return query
}

// --- Mapper Functions ---

func toDishDomain(data *model.DishModel) *entity.Dish {
	if data == nil {
		return nil
	}

	return &entity.Dish{
		ID:              data.ID,
		UserID:          data.UserID,
		RestaurantID:    data.RestaurantID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		DiscountedPrice: data.DiscountedPrice,
		ImageURL:        data.ImageURL,
		Category:        data.Category,
		Filter:          data.Filter,
		Deleted:         data.IsDeleted,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromDishDomain(data *entity.Dish) *model.DishModel {
	if data == nil {
		return nil
	}

	return &model.DishModel{
		ID:              data.ID,
		UserID:          data.UserID,
		RestaurantID:    data.RestaurantID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		DiscountedPrice: data.DiscountedPrice,
		ImageURL:        data.ImageURL,
		Category:        data.Category,
		Filter:          data.Filter,
		IsDeleted:       data.Deleted,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
