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

// destinationRepository implements the repository.DestinationRepository interface.
type destinationRepository struct {
	db *gorm.DB
}

// NewDestinationRepository is the constructor for destinationRepository.
func NewDestinationRepository(db *gorm.DB) repository.DestinationRepository {
	return &destinationRepository{
		db: db,
	}
}

// Create persists a new destination.
func (repo *destinationRepository) Create(ctx context.Context, destination *entity.Destination) error {
	destinationM := fromDestinationDomain(destination)

	if err := repo.db.WithContext(ctx).Create(destinationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid location reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create destination")
	}

	destination.ID = destinationM.ID
	destination.CreatedAt = destinationM.CreatedAt
	destination.UpdatedAt = destinationM.UpdatedAt

	return nil
}

// FindByID retrieves a non-deleted destination.
func (repo *destinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error) {
	var destinationM model.DestinationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&destinationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDestinationNotFound
		}

		return nil, errors.Wrap(err, "failed to find destination by ID")
	}

	return toDestinationDomain(&destinationM), nil
}

// ListByLocation retrieves the non-deleted destinations under a location.
func (repo *destinationRepository) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Destination, error) {
	var destinationModels []*model.DestinationModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ? AND is_deleted = ?", locationID, false).
		Order("created_at DESC").
		Find(&destinationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list destinations by location")
	}

	return toDestinationDomainList(destinationModels), nil
}

// List retrieves every non-deleted destination.
func (repo *destinationRepository) List(ctx context.Context) ([]*entity.Destination, error) {
	var destinationModels []*model.DestinationModel

	if err := repo.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&destinationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list destinations")
	}

	return toDestinationDomainList(destinationModels), nil
}

// Update modifies an existing destination.
func (repo *destinationRepository) Update(ctx context.Context, destination *entity.Destination) error {
	destinationM := fromDestinationDomain(destination)

	result := repo.db.WithContext(ctx).
		Model(&model.DestinationModel{}).
		Where("id = ? AND is_deleted = ?", destination.ID, false).
		Select("location_id", "place_name", "map_link", "iframe_url", "near_by_attractions",
			"best_time_to_visit", "short_summary", "image_urls", "top_destination").
		Updates(destinationM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update destination")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDestinationNotFound
	}

	return nil
}

// SoftDelete marks a destination logically removed.
func (repo *destinationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DestinationModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft-delete destination")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDestinationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDestinationDomain(data *model.DestinationModel) *entity.Destination {
	if data == nil {
		return nil
	}

	return &entity.Destination{
		ID:                data.ID,
		LocationID:        data.LocationID,
		PlaceName:         data.PlaceName,
		MapLink:           data.MapLink,
		IframeURL:         data.IframeURL,
		NearByAttractions: data.NearByAttractions,
		BestTimeToVisit:   data.BestTimeToVisit,
		ShortSummary:      data.ShortSummary,
		ImageURLs:         data.ImageURLs,
		TopDestination:    data.TopDestination,
		Deleted:           data.IsDeleted,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toDestinationDomainList(models []*model.DestinationModel) []*entity.Destination {
	destinations := make([]*entity.Destination, 0, len(models))
	for _, destinationM := range models {
		destinations = append(destinations, toDestinationDomain(destinationM))
	}

	return destinations
}

func fromDestinationDomain(data *entity.Destination) *model.DestinationModel {
	if data == nil {
		return nil
	}

	return &model.DestinationModel{
		ID:                data.ID,
		LocationID:        data.LocationID,
		PlaceName:         data.PlaceName,
		MapLink:           data.MapLink,
		IframeURL:         data.IframeURL,
		NearByAttractions: data.NearByAttractions,
		BestTimeToVisit:   data.BestTimeToVisit,
		ShortSummary:      data.ShortSummary,
		ImageURLs:         data.ImageURLs,
		TopDestination:    data.TopDestination,
		IsDeleted:         data.Deleted,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
