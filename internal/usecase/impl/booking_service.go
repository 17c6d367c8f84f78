package impl

import (
	"context"
	"log/slog"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/domain/entity"
	domainerrors "tripdesk/internal/domain/errors"
	"tripdesk/internal/domain/repository"
	"tripdesk/internal/domain/service"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo  repository.BookingRepository
	userRepo     repository.UserRepository
	agentRepo    repository.AgentRepository
	tokenService service.TokenService
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo  repository.BookingRepository
	UserRepo     repository.UserRepository
	AgentRepo    repository.AgentRepository
	TokenService service.TokenService
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo:  params.BookingRepo,
		userRepo:     params.UserRepo,
		agentRepo:    params.AgentRepo,
		tokenService: params.TokenService,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a booking envelope for a customer.
func (srv *bookingService) Create(ctx context.Context, input usecase.CreateBookingInput) (*entity.Booking, error) {
	booking := &entity.Booking{
		ID:          uuid.New(),
		AgentID:     input.AgentID,
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		LocationID:  input.LocationID,
		AmtEarned:   input.AmtEarned,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	if !booking.ValidateDates() {
		return nil, domainerrors.ErrInvalidDateRange
	}

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		srv.log(ctx).Error("Failed to create booking", slog.Any("agentID", input.AgentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created", slog.Any("bookingID", booking.ID), slog.Any("agentID", input.AgentID))

	return booking, nil
}

// Verify matches the claimed customer name against a non-deleted booking and
// mints a scoped booking token. A generic verify error hides whether the
// booking exists or the name mismatched.
func (srv *bookingService) Verify(ctx context.Context, input usecase.VerifyBookingInput) (*usecase.VerifyBookingOutput, error) {
	booking, err := srv.bookingRepo.FindActiveByID(ctx, input.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingVerifyFailed
		}

		return nil, errors.Wrap(err, "failed to look up booking for verification")
	}

	if !booking.MatchesCustomerName(input.Name) {
		srv.log(ctx).Info("Booking verification rejected", slog.Any("bookingID", input.BookingID))

		return nil, domainerrors.ErrBookingVerifyFailed
	}

	token, err := srv.tokenService.GenerateBookingToken(booking, srv.agentLogo(ctx, booking.AgentID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate booking token")
	}

	srv.log(ctx).Info("Booking verified", slog.Any("bookingID", booking.ID))

	return &usecase.VerifyBookingOutput{Token: token, Booking: booking}, nil
}

// VerifyQR decodes a scanned hand-off QR payload and verifies like Verify.
func (srv *bookingService) VerifyQR(ctx context.Context, input usecase.VerifyBookingQRInput) (*usecase.VerifyBookingOutput, error) {
	bookingID, err := srv.qrService.ParseBookingQR(input.QRData)
	if err != nil {
		return nil, domainerrors.ErrBookingVerifyFailed.WithDetails(err.Error())
	}

	return srv.Verify(ctx, usecase.VerifyBookingInput{BookingID: bookingID, Name: input.Name})
}

// agentLogo resolves the owning agent's display logo; a missing profile
// simply leaves the claim empty.
func (srv *bookingService) agentLogo(ctx context.Context, agentID uuid.UUID) string {
	profile, err := srv.agentRepo.FindAgent(ctx, agentID)
	if err != nil {
		srv.log(ctx).Warn("Agent profile missing for booking token", slog.Any("agentID", agentID))

		return ""
	}

	return profile.Logo
}

// GetProfile returns the booking and the owning agent's display fields.
func (srv *bookingService) GetProfile(ctx context.Context, bookingID uuid.UUID) (*usecase.BookingProfileOutput, error) {
	booking, err := srv.bookingRepo.FindActiveByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	output := &usecase.BookingProfileOutput{Booking: booking}

	if agent, err := srv.userRepo.FindByID(ctx, booking.AgentID); err == nil {
		output.AgentName = agent.Name
	}
	if profile, err := srv.agentRepo.FindAgent(ctx, booking.AgentID); err == nil {
		output.AgentLogo = profile.Logo
		output.CompanyName = profile.CompanyName
	}

	return output, nil
}

// List returns the bookings visible to an actor. Agents see everything they
// created, deleted or not; every other role sees all non-deleted bookings.
func (srv *bookingService) List(ctx context.Context, actorID uuid.UUID, role entity.Role) ([]*entity.Booking, error) {
	if role == entity.RoleAgent {
		bookings, err := srv.bookingRepo.ListByAgent(ctx, actorID)

		return bookings, errors.Wrap(err, "failed to list agent bookings")
	}

	bookings, err := srv.bookingRepo.ListActive(ctx)

	return bookings, errors.Wrap(err, "failed to list bookings")
}

// Update patches a booking owned by the calling agent.
func (srv *bookingService) Update(ctx context.Context, input usecase.UpdateBookingInput) (*entity.Booking, error) {
	booking, err := srv.ownedBooking(ctx, input.BookingID, input.AgentID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		booking.Name = *input.Name
	}
	if input.Email != nil {
		booking.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		booking.PhoneNumber = *input.PhoneNumber
	}
	if input.LocationID != nil {
		booking.LocationID = *input.LocationID
	}
	if input.AmtEarned != nil {
		booking.AmtEarned = *input.AmtEarned
	}
	if input.StartDate != nil {
		booking.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		booking.EndDate = *input.EndDate
	}

	if !booking.ValidateDates() {
		return nil, domainerrors.ErrInvalidDateRange
	}

	if err := srv.bookingRepo.Update(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to update booking")
	}

	return booking, nil
}

// Delete removes a booking owned by the calling agent. Tokens already minted
// from the booking stay valid until they expire.
func (srv *bookingService) Delete(ctx context.Context, bookingID, agentID uuid.UUID) error {
	if _, err := srv.ownedBooking(ctx, bookingID, agentID); err != nil {
		return err
	}

	if err := srv.bookingRepo.Delete(ctx, bookingID, agentID); err != nil {
		return errors.Wrap(err, "failed to delete booking")
	}

	srv.log(ctx).Info("Booking deleted", slog.Any("bookingID", bookingID), slog.Any("agentID", agentID))

	return nil
}

// GenerateQR renders the hand-off QR code of a booking owned by the agent.
func (srv *bookingService) GenerateQR(ctx context.Context, bookingID, agentID uuid.UUID) ([]byte, error) {
	if _, err := srv.ownedBooking(ctx, bookingID, agentID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateBookingQR(bookingID)

	return png, errors.Wrap(err, "failed to render booking QR code")
}

// ownedBooking loads a booking and enforces that the agent owns it.
func (srv *bookingService) ownedBooking(ctx context.Context, bookingID, agentID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	if booking.AgentID != agentID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return booking, nil
}
