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

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// Create persists a new reservation.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookingNotFound.WrapMessage("invalid booking reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required reservation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt
	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

// FindByID retrieves a reservation regardless of its soft-delete mirror.
func (repo *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by ID")
	}

	return toReservationDomain(&reservationM), nil
}

// ListByBooking retrieves the non-deleted reservations of a booking.
func (repo *reservationRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("booking_id = ? AND is_deleted = ?", bookingID, false).
		Order("created_at DESC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reservations by booking")
	}

	reservations := make([]*entity.Reservation, 0, len(reservationModels))
	for _, reservationM := range reservationModels {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations, nil
}

// ListByBusinesses retrieves reservations targeting any of the given business
// IDs of one kind, with the backing booking preloaded so callers can partition
// active from inactive entries.
func (repo *reservationRepository) ListByBusinesses(ctx context.Context, kind entity.BusinessKind, businessIDs []uuid.UUID, filter repository.ReservationFilter) ([]*entity.Reservation, error) {
	if len(businessIDs) == 0 {
		return []*entity.Reservation{}, nil
	}

	query := repo.db.WithContext(ctx).
		Preload("Booking").
		Where("business_type = ? AND business_id IN ?", string(kind), businessIDs)

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.Deleted != nil {
		query = query.Where("is_deleted = ?", *filter.Deleted)
	}

	var reservationModels []*model.ReservationModel
	if err := query.Order("created_at DESC").Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reservations by businesses")
	}

	reservations := make([]*entity.Reservation, 0, len(reservationModels))
	for _, reservationM := range reservationModels {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations, nil
}

// Update modifies an existing reservation. The status and its is_deleted
// mirror are written in the same statement.
func (repo *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ?", reservation.ID).
		Select("date", "booked_time", "total_members", "advance_amt", "status", "is_deleted").
		Updates(reservationM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:        data.ID,
		BookingID: data.BookingID,
		Business: entity.BusinessRef{
			Kind: entity.BusinessKind(data.BusinessType),
			ID:   data.BusinessID,
		},
		Date:         data.Date,
		BookedTime:   data.BookedTime,
		TotalMembers: data.TotalMembers,
		AdvanceAmt:   data.AdvanceAmt,
		Status:       entity.ReservationStatus(data.Status),
		Deleted:      data.IsDeleted,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Booking:      toBookingDomain(data.Booking),
	}
}

func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	if data == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:           data.ID,
		BookingID:    data.BookingID,
		BusinessType: string(data.Business.Kind),
		BusinessID:   data.Business.ID,
		Date:         data.Date,
		BookedTime:   data.BookedTime,
		TotalMembers: data.TotalMembers,
		AdvanceAmt:   data.AdvanceAmt,
		Status:       string(data.Status),
		IsDeleted:    data.Deleted,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
