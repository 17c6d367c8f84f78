package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	profileStore *mockRepo.MockProfileStore
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, role entity.Role) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	profileStore := mockRepo.NewMockProfileStore(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	profileStore.EXPECT().Role().Return(role)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Profiles:     repository.NewProfileRegistry(profileStore),
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		profileStore: profileStore,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t, entity.RoleRestaurant)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:        "Spice Garden",
		Email:       "owner@spicegarden.example",
		PhoneNumber: "9876543210",
		Password:    "Password123!",
		Profile: &entity.RestaurantProfile{
			BusinessName: "Spice Garden",
			City:         "Pune",
		},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().Profiles().Return(repository.NewProfileRegistry(fx.profileStore))

			mockUserRepo.EXPECT().
				FindByEmailOrPhone(ctx, input.Email, input.PhoneNumber).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			fx.profileStore.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RestaurantProfile")).
				Run(func(ctx context.Context, profile entity.Profile) {
					assert.NotEqual(t, uuid.Nil, profile.OwnerID())
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleRestaurant, output.User.Role)
	assert.True(t, output.User.Pending)
	assert.Empty(t, output.User.PasswordHash)
}

func TestUserService_Register_DuplicateCredentials(t *testing.T) {
	fx := createTestUserService(t, entity.RoleAgent)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:        "Wanderly Tours",
		Email:       "hello@wanderly.example",
		PhoneNumber: "9000000001",
		Password:    "Password123!",
		Profile:     &entity.AgentProfile{CompanyName: "Wanderly Tours"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmailOrPhone(ctx, input.Email, input.PhoneNumber).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_MissingProfile(t *testing.T) {
	fx := createTestUserService(t, entity.RoleAgent)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "No Profile",
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestUserService_Register_SuperAdminRoleRejected(t *testing.T) {
	fx := createTestUserService(t, entity.RoleAgent)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Sneaky Admin",
		Email:    "admin@example.com",
		Password: "Password123!",
		Profile:  &entity.SuperAdminProfile{},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBusinessType)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, entity.RoleAgent)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "hello@wanderly.example",
		PasswordHash: "hashed_password",
		Role:         entity.RoleAgent,
		Pending:      false,
	}

	fx.userRepo.EXPECT().
		FindForLogin(ctx, user.Email, "", entity.RoleAgent).
		Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(userID, entity.RoleAgent).Return("access_token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
		Role:     "Agent",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Empty(t, output.User.PasswordHash)
}

func TestUserService_Login_PendingApproval(t *testing.T) {
	fx := createTestUserService(t, entity.RoleRestaurant)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "owner@spicegarden.example",
		PasswordHash: "hashed_password",
		Role:         entity.RoleRestaurant,
		Pending:      true,
	}

	fx.userRepo.EXPECT().
		FindForLogin(ctx, user.Email, "", entity.RoleRestaurant).
		Return(user, nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
		Role:     "Restaurant",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrApprovalPending)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, entity.RoleAgent)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "hello@wanderly.example",
		PasswordHash: "hashed_password",
		Role:         entity.RoleAgent,
	}

	fx.userRepo.EXPECT().
		FindForLogin(ctx, user.Email, "", entity.RoleAgent).
		Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
		Role:     "Agent",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownAccount(t *testing.T) {
	fx := createTestUserService(t, entity.RoleAgent)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindForLogin(ctx, "ghost@example.com", "", entity.RoleAgent).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "Password123!",
		Role:     "Agent",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t, entity.RoleAgent)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Wanderly", Role: entity.RoleAgent, PasswordHash: "hashed"}
	profile := &entity.AgentProfile{UserID: userID, CompanyName: "Wanderly Tours"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.profileStore.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, profile, output.Profile)
	assert.Empty(t, output.User.PasswordHash)
}
