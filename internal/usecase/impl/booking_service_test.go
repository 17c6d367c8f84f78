package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tripdesk/internal/domain/entity"
	domainerrors "tripdesk/internal/domain/errors"
	"tripdesk/internal/domain/repository"
	mockRepo "tripdesk/internal/mocks/repository"
	mockSvc "tripdesk/internal/mocks/service"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookingServiceFixtures holds all test dependencies for booking service tests.
type bookingServiceFixtures struct {
	service      usecase.BookingUsecase
	bookingRepo  *mockRepo.MockBookingRepository
	userRepo     *mockRepo.MockUserRepository
	agentRepo    *mockRepo.MockAgentRepository
	tokenService *mockSvc.MockTokenService
	qrService    *mockSvc.MockQRCodeService
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	agentRepo := mockRepo.NewMockAgentRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewBookingService(BookingServiceParams{
		BookingRepo:  bookingRepo,
		UserRepo:     userRepo,
		AgentRepo:    agentRepo,
		TokenService: tokenService,
		QRService:    qrService,
		Logger:       logger,
	})

	return bookingServiceFixtures{
		service:      service,
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		agentRepo:    agentRepo,
		tokenService: tokenService,
		qrService:    qrService,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	agentID := uuid.New()
	start := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	fx.bookingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Booking")).
		Return(nil)

	booking, err := fx.service.Create(ctx, usecase.CreateBookingInput{
		AgentID:    agentID,
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		LocationID: uuid.New(),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 7),
	})

	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, agentID, booking.AgentID)
	assert.NotEqual(t, uuid.Nil, booking.ID)
}

func TestBookingService_Create_EndBeforeStart(t *testing.T) {
	fx := createTestBookingService(t)

	start := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	booking, err := fx.service.Create(context.Background(), usecase.CreateBookingInput{
		AgentID:   uuid.New(),
		Name:      "Jane Doe",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, -1),
	})

	require.Error(t, err)
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
}

func TestBookingService_Verify_NameMatchIgnoresCaseAndSpace(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	agentID := uuid.New()
	booking := &entity.Booking{ID: bookingID, AgentID: agentID, Name: "Jane Doe"}

	fx.bookingRepo.EXPECT().FindActiveByID(ctx, bookingID).Return(booking, nil)
	fx.agentRepo.EXPECT().
		FindAgent(ctx, agentID).
		Return(&entity.AgentProfile{UserID: agentID, Logo: "https://cdn.example/logo.png"}, nil)
	fx.tokenService.EXPECT().
		GenerateBookingToken(booking, "https://cdn.example/logo.png").
		Return("booking_token", nil)

	output, err := fx.service.Verify(ctx, usecase.VerifyBookingInput{
		BookingID: bookingID,
		Name:      "  jAnE dOe ",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "booking_token", output.Token)
}

func TestBookingService_Verify_NameMismatch(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()

	fx.bookingRepo.EXPECT().
		FindActiveByID(ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, Name: "Jane Doe"}, nil)

	output, err := fx.service.Verify(ctx, usecase.VerifyBookingInput{
		BookingID: bookingID,
		Name:      "John Doe",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBookingVerifyFailed)
}

func TestBookingService_Verify_UnknownBooking(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()

	fx.bookingRepo.EXPECT().
		FindActiveByID(ctx, bookingID).
		Return(nil, repository.ErrBookingNotFound)

	output, err := fx.service.Verify(ctx, usecase.VerifyBookingInput{
		BookingID: bookingID,
		Name:      "Jane Doe",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBookingVerifyFailed)
}

func TestBookingService_Verify_MissingAgentProfileStillMintsToken(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	agentID := uuid.New()
	booking := &entity.Booking{ID: bookingID, AgentID: agentID, Name: "Jane Doe"}

	fx.bookingRepo.EXPECT().FindActiveByID(ctx, bookingID).Return(booking, nil)
	fx.agentRepo.EXPECT().FindAgent(ctx, agentID).Return(nil, repository.ErrProfileNotFound)
	fx.tokenService.EXPECT().GenerateBookingToken(booking, "").Return("booking_token", nil)

	output, err := fx.service.Verify(ctx, usecase.VerifyBookingInput{
		BookingID: bookingID,
		Name:      "Jane Doe",
	})

	require.NoError(t, err)
	assert.Equal(t, "booking_token", output.Token)
}

func TestBookingService_VerifyQR_DecodesAndVerifies(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	agentID := uuid.New()
	booking := &entity.Booking{ID: bookingID, AgentID: agentID, Name: "Jane Doe"}

	fx.qrService.EXPECT().ParseBookingQR("qr-payload").Return(bookingID, nil)
	fx.bookingRepo.EXPECT().FindActiveByID(ctx, bookingID).Return(booking, nil)
	fx.agentRepo.EXPECT().
		FindAgent(ctx, agentID).
		Return(&entity.AgentProfile{UserID: agentID, Logo: "logo"}, nil)
	fx.tokenService.EXPECT().GenerateBookingToken(booking, "logo").Return("booking_token", nil)

	output, err := fx.service.VerifyQR(ctx, usecase.VerifyBookingQRInput{
		QRData: "qr-payload",
		Name:   "Jane Doe",
	})

	require.NoError(t, err)
	assert.Equal(t, "booking_token", output.Token)
}

func TestBookingService_List_AgentSeesOwnBookings(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	agentID := uuid.New()
	expected := []*entity.Booking{{ID: uuid.New(), AgentID: agentID}}

	fx.bookingRepo.EXPECT().ListByAgent(ctx, agentID).Return(expected, nil)

	bookings, err := fx.service.List(ctx, agentID, entity.RoleAgent)

	require.NoError(t, err)
	assert.Equal(t, expected, bookings)
}

func TestBookingService_List_OtherRolesSeeActiveBookings(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	expected := []*entity.Booking{{ID: uuid.New()}}

	fx.bookingRepo.EXPECT().ListActive(ctx).Return(expected, nil)

	bookings, err := fx.service.List(ctx, uuid.New(), entity.RoleSuperAdmin)

	require.NoError(t, err)
	assert.Equal(t, expected, bookings)
}

func TestBookingService_Update_NotOwner(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()

	fx.bookingRepo.EXPECT().
		FindByID(ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, AgentID: uuid.New(), Name: "Jane Doe"}, nil)

	output, err := fx.service.Update(ctx, usecase.UpdateBookingInput{
		BookingID: bookingID,
		AgentID:   uuid.New(),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestBookingService_Delete_Success(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	agentID := uuid.New()

	fx.bookingRepo.EXPECT().
		FindByID(ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, AgentID: agentID}, nil)
	fx.bookingRepo.EXPECT().Delete(ctx, bookingID, agentID).Return(nil)

	err := fx.service.Delete(ctx, bookingID, agentID)

	require.NoError(t, err)
}

func TestBookingService_GenerateQR_Owned(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	agentID := uuid.New()

	fx.bookingRepo.EXPECT().
		FindByID(ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, AgentID: agentID}, nil)
	fx.qrService.EXPECT().GenerateBookingQR(bookingID).Return([]byte{0x89, 0x50}, nil)

	png, err := fx.service.GenerateQR(ctx, bookingID, agentID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
