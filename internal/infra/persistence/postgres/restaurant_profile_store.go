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

// restaurantProfileColumns is the allowlist for partial profile updates.
var restaurantProfileColumns = map[string]string{
	"location_id":         "location_id",
	"business_name":       "business_name",
	"owner_name":          "owner_name",
	"image_url":           "image_urls",
	"logo_url":            "logo_url",
	"address":             "address",
	"single_line_address": "single_line_address",
	"city":                "city",
	"pincode":             "pincode",
	"category":            "category",
	"discount":            "discount",
	"businessHours":       "business_hours",
	"description":         "description",
	"map_url":             "map_url",
	"canReserve":          "can_reserve",
}

// restaurantProfileStore implements repository.ProfileStore,
// repository.RestaurantRepository and repository.BusinessStore.
type restaurantProfileStore struct {
	db *gorm.DB
}

func newRestaurantProfileStore(db *gorm.DB) *restaurantProfileStore {
	return &restaurantProfileStore{db: db}
}

// NewRestaurantRepository is the constructor for the typed restaurant profile view.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return newRestaurantProfileStore(db)
}

// Role identifies which role this store serves.
func (repo *restaurantProfileStore) Role() entity.Role {
	return entity.RoleRestaurant
}

// Kind identifies which business kind this store serves.
func (repo *restaurantProfileStore) Kind() entity.BusinessKind {
	return entity.BusinessRestaurant
}

// Create persists a new restaurant profile.
func (repo *restaurantProfileStore) Create(ctx context.Context, profile entity.Profile) error {
	restaurant, ok := profile.(*entity.RestaurantProfile)
	if !ok {
		return errors.Errorf("restaurant profile store cannot persist %T", profile)
	}

	profileM := fromRestaurantDomain(restaurant)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid identity reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant profile")
	}

	restaurant.CreatedAt = profileM.CreatedAt
	restaurant.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile linked to an identity.
func (repo *restaurantProfileStore) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Profile, error) {
	return repo.FindRestaurant(ctx, userID)
}

// FindRestaurant retrieves a restaurant profile by its owning identity.
func (repo *restaurantProfileStore) FindRestaurant(ctx context.Context, userID uuid.UUID) (*entity.RestaurantProfile, error) {
	var profileM model.RestaurantProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant profile")
	}

	return toRestaurantDomain(&profileM), nil
}

// FindByUserIDs retrieves profiles for a set of identities, keyed by user ID.
func (repo *restaurantProfileStore) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.Profile, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]entity.Profile{}, nil
	}

	var profileModels []*model.RestaurantProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant profiles")
	}

	profiles := make(map[uuid.UUID]entity.Profile, len(profileModels))
	for _, profileM := range profileModels {
		profiles[profileM.UserID] = toRestaurantDomain(profileM)
	}

	return profiles, nil
}

// ListRestaurants retrieves restaurant profiles matching the filter. The
// owning identity is joined so deleted partners stay hidden by default.
func (repo *restaurantProfileStore) ListRestaurants(ctx context.Context, filter repository.PartnerFilter) ([]*entity.RestaurantProfile, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.RestaurantProfileModel{}).
		Joins("JOIN users ON users.id = restaurant_profiles.user_id")

	query = applyPartnerFilter(query, "restaurant_profiles", filter)
	if filter.Category != "" {
		query = query.Where("restaurant_profiles.category @> to_jsonb(?::text)", filter.Category)
	}

	var profileModels []*model.RestaurantProfileModel
	if err := query.Order("restaurant_profiles.created_at DESC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant profiles")
	}

	profiles := make([]*entity.RestaurantProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toRestaurantDomain(profileM))
	}

	return profiles, nil
}

// UpdateFields applies an allowlisted column patch to the profile of an identity.
func (repo *restaurantProfileStore) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	updates := filterColumns(fields, restaurantProfileColumns)
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantProfileModel{}).
		Where("user_id = ?", userID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// DeleteByUserID permanently removes the profile of an identity.
func (repo *restaurantProfileStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RestaurantProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete restaurant profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Exists reports whether the referenced restaurant is present.
func (repo *restaurantProfileStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantProfileModel{}).
		Where("user_id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check restaurant existence")
	}

	return count > 0, nil
}

// UpdateRating overwrites the aggregate rating of the referenced restaurant.
func (repo *restaurantProfileStore) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantProfileModel{}).
		Where("user_id = ?", id).
		Update("customer_rating", rating)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update restaurant rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// applyPartnerFilter translates the shared partner filter into WHERE clauses.
// The owning identity's soft-delete flag defaults to hiding deleted partners.
func applyPartnerFilter(query *gorm.DB, table string, filter repository.PartnerFilter) *gorm.DB {
	deleted := false
	if filter.Deleted != nil {
		deleted = *filter.Deleted
	}
	query = query.Where("users.is_deleted = ?", deleted)

	if filter.BusinessName != "" {
		query = query.Where(table+".business_name ILIKE ?", "%"+filter.BusinessName+"%")
	}
	if filter.OwnerName != "" {
		query = query.Where(table+".owner_name ILIKE ?", "%"+filter.OwnerName+"%")
	}
	if filter.City != "" {
		query = query.Where(table+".city ILIKE ?", filter.City)
	}
	if filter.Pincode != "" {
		query = query.Where(table+".pincode = ?", filter.Pincode)
	}
	if filter.LocationID != uuid.Nil {
		query = query.Where(table+".location_id = ?", filter.LocationID)
	}

	return query
}

// --- Mapper Functions ---

func toRestaurantDomain(data *model.RestaurantProfileModel) *entity.RestaurantProfile {
	if data == nil {
		return nil
	}

	return &entity.RestaurantProfile{
		UserID:            data.UserID,
		LocationID:        data.LocationID,
		BusinessName:      data.BusinessName,
		OwnerName:         data.OwnerName,
		ImageURLs:         data.ImageURLs,
		LogoURL:           data.LogoURL,
		Address:           data.Address,
		SingleLineAddress: data.SingleLineAddress,
		City:              data.City,
		Pincode:           data.Pincode,
		CustomerRating:    data.CustomerRating,
		Category:          data.Category,
		Discount:          data.Discount,
		BusinessHours:     data.BusinessHours,
		Description:       data.Description,
		MapURL:            data.MapURL,
		CanReserve:        data.CanReserve,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.RestaurantProfile) *model.RestaurantProfileModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantProfileModel{
		UserID:            data.UserID,
		LocationID:        data.LocationID,
		BusinessName:      data.BusinessName,
		OwnerName:         data.OwnerName,
		ImageURLs:         data.ImageURLs,
		LogoURL:           data.LogoURL,
		Address:           data.Address,
		SingleLineAddress: data.SingleLineAddress,
		City:              data.City,
		Pincode:           data.Pincode,
		CustomerRating:    data.CustomerRating,
		Category:          data.Category,
		Discount:          data.Discount,
		BusinessHours:     data.BusinessHours,
		Description:       data.Description,
		MapURL:            data.MapURL,
		CanReserve:        data.CanReserve,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
