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

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// Create persists a new booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookingNotFound.WrapMessage("invalid agent or location reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	// Update the entity with generated values
	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// FindByID retrieves a booking regardless of its soft-delete flag.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by ID")
	}

	return toBookingDomain(&bookingM), nil
}

// FindActiveByID retrieves a booking that has not been soft-deleted.
func (repo *bookingRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find active booking by ID")
	}

	return toBookingDomain(&bookingM), nil
}

// ListByAgent retrieves every booking created by an agent, deleted or not.
func (repo *bookingRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by agent")
	}

	return toBookingDomainList(bookingModels), nil
}

// ListActive retrieves every non-deleted booking.
func (repo *bookingRepository) ListActive(ctx context.Context) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active bookings")
	}

	return toBookingDomainList(bookingModels), nil
}

// Update modifies an existing booking.
func (repo *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", booking.ID).
		Select("name", "email", "phone_number", "location_id", "amt_earned", "start_date", "end_date", "is_deleted").
		Updates(bookingM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// Delete permanently removes a booking owned by the given agent.
func (repo *bookingRepository) Delete(ctx context.Context, id, agentID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND agent_id = ?", id, agentID).
		Delete(&model.BookingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete booking")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingModel to a domain Booking entity.
func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:          data.ID,
		AgentID:     data.AgentID,
		Name:        data.Name,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		LocationID:  data.LocationID,
		AmtEarned:   data.AmtEarned,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Deleted:     data.IsDeleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toBookingDomainList(models []*model.BookingModel) []*entity.Booking {
	bookings := make([]*entity.Booking, 0, len(models))
	for _, bookingM := range models {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:          data.ID,
		AgentID:     data.AgentID,
		Name:        data.Name,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		LocationID:  data.LocationID,
		AmtEarned:   data.AmtEarned,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		IsDeleted:   data.Deleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
