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

// superAdminServiceFixtures holds all test dependencies for superadmin service tests.
type superAdminServiceFixtures struct {
	service      usecase.SuperAdminUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	profileStore *mockRepo.MockProfileStore
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestSuperAdminService(t *testing.T, role entity.Role) superAdminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	profileStore := mockRepo.NewMockProfileStore(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	profileStore.EXPECT().Role().Return(role)

	service := NewSuperAdminService(SuperAdminServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Profiles:     repository.NewProfileRegistry(profileStore),
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return superAdminServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		profileStore: profileStore,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestSuperAdminService_Signup_Success(t *testing.T) {
	fx := createTestSuperAdminService(t, entity.RoleSuperAdmin)

	ctx := context.Background()
	input := usecase.SuperAdminSignupInput{
		Name:        "Root",
		Email:       "root@tripdesk.example",
		PhoneNumber: "9000000000",
		Password:    "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().Profiles().Return(repository.NewProfileRegistry(fx.profileStore))

			mockUserRepo.EXPECT().CountByRole(ctx, entity.RoleSuperAdmin).Return(int64(0), nil)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			fx.profileStore.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.SuperAdminProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleSuperAdmin).
		Return("access_token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.False(t, output.User.Pending)
	assert.Empty(t, output.User.PasswordHash)
}

func TestSuperAdminService_Signup_AlreadyExists(t *testing.T) {
	fx := createTestSuperAdminService(t, entity.RoleSuperAdmin)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().CountByRole(ctx, entity.RoleSuperAdmin).Return(int64(1), nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Signup(ctx, usecase.SuperAdminSignupInput{
		Name:     "Second Root",
		Email:    "root2@tripdesk.example",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSuperAdminExists)
}

func TestSuperAdminService_ReviewRegistration_Approve(t *testing.T) {
	fx := createTestSuperAdminService(t, entity.RoleRestaurant)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleRestaurant, Pending: true}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.False(t, user.Pending)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ReviewRegistration(ctx, usecase.ReviewRegistrationInput{UserID: userID, Approved: true})

	require.NoError(t, err)
}

func TestSuperAdminService_ReviewRegistration_RejectRemovesBothRows(t *testing.T) {
	fx := createTestSuperAdminService(t, entity.RoleShop)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().Profiles().Return(repository.NewProfileRegistry(fx.profileStore))

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleShop, Pending: true}, nil)

			fx.profileStore.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ReviewRegistration(ctx, usecase.ReviewRegistrationInput{UserID: userID, Approved: false})

	require.NoError(t, err)
}

func TestSuperAdminService_ListUsers_PartnerFilter(t *testing.T) {
	fx := createTestSuperAdminService(t, entity.RoleRestaurant)

	ctx := context.Background()
	restaurantID := uuid.New()
	pending := true

	fx.userRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.UserFilter")).
		Run(func(ctx context.Context, filter repository.UserFilter) {
			assert.Equal(t, entity.PartnerRoles(), filter.Roles)
			assert.Equal(t, 20, filter.Offset)
			assert.Equal(t, 10, filter.Limit)
		}).
		Return([]*entity.User{
			{ID: restaurantID, Name: "Spice Garden", Role: entity.RoleRestaurant, Pending: true},
		}, nil)

	fx.profileStore.EXPECT().
		FindByUserIDs(ctx, []uuid.UUID{restaurantID}).
		Return(map[uuid.UUID]entity.Profile{
			restaurantID: &entity.RestaurantProfile{UserID: restaurantID, BusinessName: "Spice Garden"},
		}, nil)

	views, err := fx.service.ListUsers(ctx, usecase.ListUsersInput{
		Role:    "Partner",
		Pending: &pending,
		Index:   2,
		Limit:   10,
	})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Spice Garden", views[0].ProfileFields["business_name"])
}

func TestSuperAdminService_UpdateUser_WrongCurrentPassword(t *testing.T) {
	fx := createTestSuperAdminService(t, entity.RoleAgent)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleAgent, PasswordHash: "hashed_password"}, nil)

			fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateUser(ctx, usecase.UpdateUserInput{
		UserID: userID,
		Fields: map[string]any{
			"password":        "NewPassword123!",
			"currentPassword": "wrong",
		},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)
}

func TestSuperAdminService_UpdateUser_SplitsIdentityAndProfileFields(t *testing.T) {
	fx := createTestSuperAdminService(t, entity.RoleAgent)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().Profiles().Return(repository.NewProfileRegistry(fx.profileStore))

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleAgent, Name: "Old Name"}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "New Name", user.Name)
				}).
				Return(nil)

			fx.profileStore.EXPECT().
				UpdateFields(ctx, userID, map[string]any{"company_name": "Wanderly Tours"}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateUser(ctx, usecase.UpdateUserInput{
		UserID: userID,
		Fields: map[string]any{
			"name":         "New Name",
			"company_name": "Wanderly Tours",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "New Name", output.Name)
}

func TestSuperAdminService_DeleteUser_RemovesProfileAndUser(t *testing.T) {
	fx := createTestSuperAdminService(t, entity.RoleActivity)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().Profiles().Return(repository.NewProfileRegistry(fx.profileStore))

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleActivity}, nil)

			fx.profileStore.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}
