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

// activityProfileColumns is the allowlist for partial profile updates.
var activityProfileColumns = map[string]string{
	"location_id":         "location_id",
	"business_name":       "business_name",
	"owner_name":          "owner_name",
	"address":             "address",
	"single_line_address": "single_line_address",
	"city":                "city",
	"pincode":             "pincode",
	"image_url":           "image_urls",
	"logo_url":            "logo_url",
	"businessHours":       "business_hours",
	"title":               "title",
	"description":         "description",
}

// activityProfileStore implements repository.ProfileStore and
// repository.ActivityRepository. Activities are not reviewed directly; their
// rating rolls up from the reviews of their tasks.
type activityProfileStore struct {
	db *gorm.DB
}

func newActivityProfileStore(db *gorm.DB) *activityProfileStore {
	return &activityProfileStore{db: db}
}

// NewActivityRepository is the constructor for the typed activity profile view.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return newActivityProfileStore(db)
}

// Role identifies which role this store serves.
func (repo *activityProfileStore) Role() entity.Role {
	return entity.RoleActivity
}

// Create persists a new activity profile.
func (repo *activityProfileStore) Create(ctx context.Context, profile entity.Profile) error {
	activity, ok := profile.(*entity.ActivityProfile)
	if !ok {
		return errors.Errorf("activity profile store cannot persist %T", profile)
	}

	profileM := fromActivityDomain(activity)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid identity reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity profile")
	}

	activity.CreatedAt = profileM.CreatedAt
	activity.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile linked to an identity.
func (repo *activityProfileStore) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Profile, error) {
	return repo.FindActivity(ctx, userID)
}

// FindActivity retrieves an activity profile by its owning identity.
func (repo *activityProfileStore) FindActivity(ctx context.Context, userID uuid.UUID) (*entity.ActivityProfile, error) {
	var profileM model.ActivityProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity profile")
	}

	return toActivityDomain(&profileM), nil
}

// FindByUserIDs retrieves profiles for a set of identities, keyed by user ID.
func (repo *activityProfileStore) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.Profile, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]entity.Profile{}, nil
	}

	var profileModels []*model.ActivityProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activity profiles")
	}

	profiles := make(map[uuid.UUID]entity.Profile, len(profileModels))
	for _, profileM := range profileModels {
		profiles[profileM.UserID] = toActivityDomain(profileM)
	}

	return profiles, nil
}

// ListActivities retrieves activity profiles matching the filter.
func (repo *activityProfileStore) ListActivities(ctx context.Context, filter repository.PartnerFilter) ([]*entity.ActivityProfile, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ActivityProfileModel{}).
		Joins("JOIN users ON users.id = activity_profiles.user_id")

	query = applyPartnerFilter(query, "activity_profiles", filter)

	var profileModels []*model.ActivityProfileModel
	if err := query.Order("activity_profiles.created_at DESC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity profiles")
	}

	profiles := make([]*entity.ActivityProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toActivityDomain(profileM))
	}

	return profiles, nil
}

// UpdateFields applies an allowlisted column patch to the profile of an identity.
func (repo *activityProfileStore) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	updates := filterColumns(fields, activityProfileColumns)
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ActivityProfileModel{}).
		Where("user_id = ?", userID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// DeleteByUserID permanently removes the profile of an identity.
func (repo *activityProfileStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ActivityProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete activity profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateActivityRating overwrites the rolled-up rating of an activity.
func (repo *activityProfileStore) UpdateActivityRating(ctx context.Context, userID uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityProfileModel{}).
		Where("user_id = ?", userID).
		Update("customer_rating", rating)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update activity rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toActivityDomain(data *model.ActivityProfileModel) *entity.ActivityProfile {
	if data == nil {
		return nil
	}

	return &entity.ActivityProfile{
		UserID:            data.UserID,
		LocationID:        data.LocationID,
		BusinessName:      data.BusinessName,
		OwnerName:         data.OwnerName,
		Address:           data.Address,
		SingleLineAddress: data.SingleLineAddress,
		City:              data.City,
		Pincode:           data.Pincode,
		ImageURLs:         data.ImageURLs,
		LogoURL:           data.LogoURL,
		BusinessHours:     data.BusinessHours,
		Title:             data.Title,
		Description:       data.Description,
		CustomerRating:    data.CustomerRating,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromActivityDomain(data *entity.ActivityProfile) *model.ActivityProfileModel {
	if data == nil {
		return nil
	}

	return &model.ActivityProfileModel{
		UserID:            data.UserID,
		LocationID:        data.LocationID,
		BusinessName:      data.BusinessName,
		OwnerName:         data.OwnerName,
		Address:           data.Address,
		SingleLineAddress: data.SingleLineAddress,
		City:              data.City,
		Pincode:           data.Pincode,
		ImageURLs:         data.ImageURLs,
		LogoURL:           data.LogoURL,
		BusinessHours:     data.BusinessHours,
		Title:             data.Title,
		Description:       data.Description,
		CustomerRating:    data.CustomerRating,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
