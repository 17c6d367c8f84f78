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

// agentProfileColumns is the allowlist for partial profile updates.
var agentProfileColumns = map[string]string{
	"company_name": "company_name",
	"logo":         "logo",
	"address":      "address",
	"pincode":      "pincode",
	"city":         "city",
}

// agentProfileStore implements repository.ProfileStore and repository.AgentRepository.
type agentProfileStore struct {
	db *gorm.DB
}

func newAgentProfileStore(db *gorm.DB) *agentProfileStore {
	return &agentProfileStore{db: db}
}

// NewAgentRepository is the constructor for the typed agent profile view.
func NewAgentRepository(db *gorm.DB) repository.AgentRepository {
	return newAgentProfileStore(db)
}

// Role identifies which role this store serves.
func (repo *agentProfileStore) Role() entity.Role {
	return entity.RoleAgent
}

// Create persists a new agent profile.
func (repo *agentProfileStore) Create(ctx context.Context, profile entity.Profile) error {
	agent, ok := profile.(*entity.AgentProfile)
	if !ok {
		return errors.Errorf("agent profile store cannot persist %T", profile)
	}

	profileM := fromAgentDomain(agent)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid identity reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create agent profile")
	}

	agent.CreatedAt = profileM.CreatedAt
	agent.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile linked to an identity.
func (repo *agentProfileStore) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Profile, error) {
	return repo.FindAgent(ctx, userID)
}

// FindAgent retrieves the agent profile of an identity.
func (repo *agentProfileStore) FindAgent(ctx context.Context, userID uuid.UUID) (*entity.AgentProfile, error) {
	var profileM model.AgentProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent profile")
	}

	return toAgentDomain(&profileM), nil
}

// FindByUserIDs retrieves profiles for a set of identities, keyed by user ID.
func (repo *agentProfileStore) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.Profile, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]entity.Profile{}, nil
	}

	var profileModels []*model.AgentProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find agent profiles")
	}

	profiles := make(map[uuid.UUID]entity.Profile, len(profileModels))
	for _, profileM := range profileModels {
		profiles[profileM.UserID] = toAgentDomain(profileM)
	}

	return profiles, nil
}

// UpdateFields applies an allowlisted column patch to the profile of an identity.
func (repo *agentProfileStore) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	updates := filterColumns(fields, agentProfileColumns)
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AgentProfileModel{}).
		Where("user_id = ?", userID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update agent profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// DeleteByUserID permanently removes the profile of an identity.
func (repo *agentProfileStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.AgentProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete agent profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// filterColumns keeps only the patch keys present in the allowlist, remapping
// request keys to column names.
func filterColumns(fields map[string]any, allowlist map[string]string) map[string]any {
	updates := make(map[string]any, len(fields))
	for key, value := range fields {
		if column, ok := allowlist[key]; ok {
			updates[column] = value
		}
	}

	return updates
}

// --- Mapper Functions ---

func toAgentDomain(data *model.AgentProfileModel) *entity.AgentProfile {
	if data == nil {
		return nil
	}

	return &entity.AgentProfile{
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		Logo:        data.Logo,
		Address:     data.Address,
		Pincode:     data.Pincode,
		City:        data.City,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAgentDomain(data *entity.AgentProfile) *model.AgentProfileModel {
	if data == nil {
		return nil
	}

	return &model.AgentProfileModel{
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		Logo:        data.Logo,
		Address:     data.Address,
		Pincode:     data.Pincode,
		City:        data.City,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
