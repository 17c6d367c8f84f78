package impl

import (
	"context"
	"log/slog"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/domain/entity"
	domainerrors "tripdesk/internal/domain/errors"
	"tripdesk/internal/domain/repository"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	reservationRepo repository.ReservationRepository
	restaurantRepo  repository.RestaurantRepository
	taskRepo        repository.TaskRepository
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for reservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	ReservationRepo repository.ReservationRepository
	RestaurantRepo  repository.RestaurantRepository
	TaskRepo        repository.TaskRepository
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		reservationRepo: params.ReservationRepo,
		restaurantRepo:  params.RestaurantRepo,
		taskRepo:        params.TaskRepo,
		logger:          params.Logger,
	}
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Book opens a reservation in the Pending state. Only restaurants and tasks
// accept reservations, and only while they advertise themselves reservable.
func (srv *reservationService) Book(ctx context.Context, input usecase.BookReservationInput) (*entity.Reservation, error) {
	if !input.Business.Kind.Reservable() {
		return nil, domainerrors.ErrInvalidBusinessType.WrapMessage("reservations accept restaurants and tasks only")
	}

	if err := srv.checkReservable(ctx, input.Business); err != nil {
		return nil, err
	}

	reservation := &entity.Reservation{
		ID:           uuid.New(),
		BookingID:    input.BookingID,
		Business:     input.Business,
		Date:         input.Date,
		BookedTime:   input.BookedTime,
		TotalMembers: input.TotalMembers,
		AdvanceAmt:   input.AdvanceAmt,
		Status:       entity.ReservationPending,
	}
	if reservation.TotalMembers <= 0 {
		reservation.TotalMembers = 1
	}

	if err := srv.reservationRepo.Create(ctx, reservation); err != nil {
		srv.log(ctx).Error("Failed to create reservation",
			slog.Any("bookingID", input.BookingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create reservation")
	}

	srv.log(ctx).Info("Reservation booked",
		slog.Any("reservationID", reservation.ID),
		slog.String("businessType", string(input.Business.Kind)),
		slog.Any("businessID", input.Business.ID))

	return reservation, nil
}

// checkReservable resolves the target and rejects targets that exist but have
// reservations switched off.
func (srv *reservationService) checkReservable(ctx context.Context, ref entity.BusinessRef) error {
	switch ref.Kind {
	case entity.BusinessRestaurant:
		restaurant, err := srv.restaurantRepo.FindRestaurant(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrBusinessNotFound
			}

			return errors.Wrap(err, "failed to resolve restaurant")
		}
		if !restaurant.CanReserve {
			return domainerrors.ErrValidationFailed.WithDetails("restaurant does not take reservations")
		}
	case entity.BusinessTask:
		task, err := srv.taskRepo.FindByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return domainerrors.ErrBusinessNotFound
			}

			return errors.Wrap(err, "failed to resolve task")
		}
		if task.Deleted || !task.CanReserve {
			return domainerrors.ErrValidationFailed.WithDetails("task does not take reservations")
		}
	}

	return nil
}

// ListByBooking returns the caller's active reservations with the reserved
// business resolved for display.
func (srv *reservationService) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.Reservation, error) {
	reservations, err := srv.reservationRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	for _, reservation := range reservations {
		srv.attachBusinessDetails(ctx, reservation)
	}

	return reservations, nil
}

// attachBusinessDetails fills the display payload for one reservation. A
// resolution failure leaves the details empty rather than failing the listing.
func (srv *reservationService) attachBusinessDetails(ctx context.Context, reservation *entity.Reservation) {
	switch reservation.Business.Kind {
	case entity.BusinessRestaurant:
		if restaurant, err := srv.restaurantRepo.FindRestaurant(ctx, reservation.Business.ID); err == nil {
			reservation.BusinessDetails = restaurant
		}
	case entity.BusinessTask:
		if task, err := srv.taskRepo.FindByID(ctx, reservation.Business.ID); err == nil {
			reservation.BusinessDetails = task
		}
	}
}

// ListForBusiness returns a business's reservations partitioned into active
// and inactive. For the Task kind the given ID is the activity identity and
// reservations of every task under it are resolved.
func (srv *reservationService) ListForBusiness(ctx context.Context, input usecase.ListBusinessReservationsInput) (*usecase.BusinessReservationsOutput, error) {
	if !input.Kind.Reservable() {
		return nil, domainerrors.ErrInvalidBusinessType.WrapMessage("reservations accept restaurants and tasks only")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown reservation status: " + string(input.Status))
	}

	businessIDs := []uuid.UUID{input.BusinessID}
	if input.Kind == entity.BusinessTask {
		taskIDs, err := srv.taskRepo.IDsByActivity(ctx, input.BusinessID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve activity tasks")
		}
		businessIDs = taskIDs
	}

	output := &usecase.BusinessReservationsOutput{
		Active:   []*entity.Reservation{},
		Inactive: []*entity.Reservation{},
	}
	if len(businessIDs) == 0 {
		return output, nil
	}

	reservations, err := srv.reservationRepo.ListByBusinesses(ctx, input.Kind, businessIDs, repository.ReservationFilter{
		Status: input.Status,
		Date:   input.Date,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business reservations")
	}

	for _, reservation := range reservations {
		if reservation.Active() {
			output.Active = append(output.Active, reservation)
		} else {
			output.Inactive = append(output.Inactive, reservation)
		}
	}

	return output, nil
}

// Update patches a reservation. Writing a status keeps the deleted mirror
// consistent: terminal states retire the reservation, anything else revives it.
func (srv *reservationService) Update(ctx context.Context, input usecase.UpdateReservationInput) (*entity.Reservation, error) {
	reservation, err := srv.findReservation(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		reservation.Date = *input.Date
	}
	if input.BookedTime != nil {
		reservation.BookedTime = *input.BookedTime
	}
	if input.TotalMembers != nil {
		reservation.TotalMembers = *input.TotalMembers
	}
	if input.AdvanceAmt != nil {
		reservation.AdvanceAmt = *input.AdvanceAmt
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown reservation status: " + string(*input.Status))
		}
		reservation.ApplyStatus(*input.Status)
	}

	if err := srv.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, errors.Wrap(err, "failed to update reservation")
	}

	return reservation, nil
}

// Cancel retires a reservation through the Cancelled state.
func (srv *reservationService) Cancel(ctx context.Context, reservationID uuid.UUID) error {
	reservation, err := srv.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	reservation.ApplyStatus(entity.ReservationCancelled)

	if err := srv.reservationRepo.Update(ctx, reservation); err != nil {
		return errors.Wrap(err, "failed to cancel reservation")
	}

	srv.log(ctx).Info("Reservation cancelled", slog.Any("reservationID", reservationID))

	return nil
}

func (srv *reservationService) findReservation(ctx context.Context, reservationID uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("reservation not found")
		}

		return nil, errors.Wrap(err, "failed to find reservation")
	}

	return reservation, nil
}
