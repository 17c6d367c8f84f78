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

// superAdminProfileStore implements repository.ProfileStore for the SuperAdmin
// role. The profile is a bare link row, so most operations are trivial.
type superAdminProfileStore struct {
	db *gorm.DB
}

func newSuperAdminProfileStore(db *gorm.DB) *superAdminProfileStore {
	return &superAdminProfileStore{db: db}
}

// Role identifies which role this store serves.
func (repo *superAdminProfileStore) Role() entity.Role {
	return entity.RoleSuperAdmin
}

// Create persists a new superadmin link row.
func (repo *superAdminProfileStore) Create(ctx context.Context, profile entity.Profile) error {
	admin, ok := profile.(*entity.SuperAdminProfile)
	if !ok {
		return errors.Errorf("superadmin profile store cannot persist %T", profile)
	}

	profileM := &model.SuperAdminProfileModel{UserID: admin.UserID}
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create superadmin profile")
	}

	admin.CreatedAt = profileM.CreatedAt
	admin.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the link row of an identity.
func (repo *superAdminProfileStore) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Profile, error) {
	var profileM model.SuperAdminProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find superadmin profile")
	}

	return &entity.SuperAdminProfile{
		UserID:    profileM.UserID,
		CreatedAt: profileM.CreatedAt,
		UpdatedAt: profileM.UpdatedAt,
	}, nil
}

// FindByUserIDs retrieves link rows for a set of identities.
func (repo *superAdminProfileStore) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.Profile, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]entity.Profile{}, nil
	}

	var profileModels []*model.SuperAdminProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find superadmin profiles")
	}

	profiles := make(map[uuid.UUID]entity.Profile, len(profileModels))
	for _, profileM := range profileModels {
		profiles[profileM.UserID] = &entity.SuperAdminProfile{
			UserID:    profileM.UserID,
			CreatedAt: profileM.CreatedAt,
			UpdatedAt: profileM.UpdatedAt,
		}
	}

	return profiles, nil
}

// UpdateFields is a no-op; the superadmin profile carries no business columns.
func (repo *superAdminProfileStore) UpdateFields(_ context.Context, _ uuid.UUID, _ map[string]any) error {
	return nil
}

// DeleteByUserID permanently removes the link row of an identity.
func (repo *superAdminProfileStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SuperAdminProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete superadmin profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}
