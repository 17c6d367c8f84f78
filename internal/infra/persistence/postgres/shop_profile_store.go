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

// shopProfileColumns is the allowlist for partial profile updates.
var shopProfileColumns = map[string]string{
	"location_id":         "location_id",
	"business_name":       "business_name",
	"owner_name":          "owner_name",
	"image_url":           "image_urls",
	"logo_url":            "logo_url",
	"address":             "address",
	"single_line_address": "single_line_address",
	"city":                "city",
	"pincode":             "pincode",
	"shopType":            "shop_type",
	"discount":            "discount",
	"businessHours":       "business_hours",
	"description":         "description",
	"map_url":             "map_url",
}

// shopProfileStore implements repository.ProfileStore,
// repository.ShopRepository and repository.BusinessStore.
type shopProfileStore struct {
	db *gorm.DB
}

func newShopProfileStore(db *gorm.DB) *shopProfileStore {
	return &shopProfileStore{db: db}
}

// NewShopRepository is the constructor for the typed shop profile view.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return newShopProfileStore(db)
}

// Role identifies which role this store serves.
func (repo *shopProfileStore) Role() entity.Role {
	return entity.RoleShop
}

// Kind identifies which business kind this store serves.
func (repo *shopProfileStore) Kind() entity.BusinessKind {
	return entity.BusinessShop
}

// Create persists a new shop profile.
func (repo *shopProfileStore) Create(ctx context.Context, profile entity.Profile) error {
	shop, ok := profile.(*entity.ShopProfile)
	if !ok {
		return errors.Errorf("shop profile store cannot persist %T", profile)
	}

	profileM := fromShopDomain(shop)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid identity reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop profile")
	}

	shop.CreatedAt = profileM.CreatedAt
	shop.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile linked to an identity.
func (repo *shopProfileStore) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Profile, error) {
	return repo.FindShop(ctx, userID)
}

// FindShop retrieves a shop profile by its owning identity.
func (repo *shopProfileStore) FindShop(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error) {
	var profileM model.ShopProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop profile")
	}

	return toShopDomain(&profileM), nil
}

// FindByUserIDs retrieves profiles for a set of identities, keyed by user ID.
func (repo *shopProfileStore) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.Profile, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]entity.Profile{}, nil
	}

	var profileModels []*model.ShopProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shop profiles")
	}

	profiles := make(map[uuid.UUID]entity.Profile, len(profileModels))
	for _, profileM := range profileModels {
		profiles[profileM.UserID] = toShopDomain(profileM)
	}

	return profiles, nil
}

// ListShops retrieves shop profiles matching the filter.
func (repo *shopProfileStore) ListShops(ctx context.Context, filter repository.PartnerFilter) ([]*entity.ShopProfile, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ShopProfileModel{}).
		Joins("JOIN users ON users.id = shop_profiles.user_id")

	query = applyPartnerFilter(query, "shop_profiles", filter)
	if filter.Category != "" {
		query = query.Where("shop_profiles.shop_type ILIKE ?", filter.Category)
	}

	var profileModels []*model.ShopProfileModel
	if err := query.Order("shop_profiles.created_at DESC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shop profiles")
	}

	profiles := make([]*entity.ShopProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toShopDomain(profileM))
	}

	return profiles, nil
}

// UpdateFields applies an allowlisted column patch to the profile of an identity.
func (repo *shopProfileStore) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	updates := filterColumns(fields, shopProfileColumns)
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShopProfileModel{}).
		Where("user_id = ?", userID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// DeleteByUserID permanently removes the profile of an identity.
func (repo *shopProfileStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ShopProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shop profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Exists reports whether the referenced shop is present.
func (repo *shopProfileStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ShopProfileModel{}).
		Where("user_id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check shop existence")
	}

	return count > 0, nil
}

// UpdateRating overwrites the aggregate rating of the referenced shop.
func (repo *shopProfileStore) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopProfileModel{}).
		Where("user_id = ?", id).
		Update("customer_rating", rating)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shop rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopProfileModel) *entity.ShopProfile {
	if data == nil {
		return nil
	}

	return &entity.ShopProfile{
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
		ShopType:          data.ShopType,
		CustomerRating:    data.CustomerRating,
		Discount:          data.Discount,
		BusinessHours:     data.BusinessHours,
		Description:       data.Description,
		MapURL:            data.MapURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.ShopProfile) *model.ShopProfileModel {
	if data == nil {
		return nil
	}

	return &model.ShopProfileModel{
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
		ShopType:          data.ShopType,
		CustomerRating:    data.CustomerRating,
		Discount:          data.Discount,
		BusinessHours:     data.BusinessHours,
		Description:       data.Description,
		MapURL:            data.MapURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
