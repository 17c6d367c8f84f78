// Package impl contains the implementation of the application's business logic.
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	profiles     *repository.ProfileRegistry
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Profiles     *repository.ProfileRegistry
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		profiles:     params.Profiles,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// attachProfileOwner links a freshly generated identity to its role profile.
func attachProfileOwner(profile entity.Profile, userID uuid.UUID) {
	switch p := profile.(type) {
	case *entity.SuperAdminProfile:
		p.UserID = userID
	case *entity.AgentProfile:
		p.UserID = userID
	case *entity.RestaurantProfile:
		p.UserID = userID
	case *entity.ShopProfile:
		p.UserID = userID
	case *entity.ActivityProfile:
		p.UserID = userID
	}
}

// Register creates a new identity together with its role profile. The account
// starts pending and cannot log in until a SuperAdmin approves it.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Profile == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role profile data is required")
	}

	role := input.Profile.ProfileRole()
	if !role.IsValid() || role == entity.RoleSuperAdmin {
		return nil, domainerrors.ErrInvalidBusinessType.WrapMessage("unsupported registration role")
	}

	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: passwordHash,
		Role:         role,
		Pending:      true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByEmailOrPhone(ctx, input.Email, input.PhoneNumber)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for duplicate credentials")
		}
		if existing != nil {
			return domainerrors.ErrUserAlreadyExists
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		store, ok := repoFactory.Profiles().Lookup(role)
		if !ok {
			return domainerrors.ErrInvalidBusinessType.WrapMessage("no profile store for role")
		}

		attachProfileOwner(input.Profile, user.ID)
		if err := store.Create(ctx, input.Profile); err != nil {
			return errors.Wrap(err, "failed to create role profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.Any("role", role), slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user.Sanitized()}, nil
}

// Login authenticates an account for a role and mints an access token.
// Pending accounts are rejected with an approval error, not a credential one.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role)
	}

	user, err := srv.userRepo.FindForLogin(ctx, input.Email, input.PhoneNumber, role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if user.Pending {
		srv.log(ctx).Info("Login blocked on pending approval", slog.Any("userID", user.ID), slog.Any("role", role))

		return nil, domainerrors.ErrApprovalPending
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID), slog.Any("role", role))

	return &usecase.LoginOutput{AccessToken: token, User: user.Sanitized()}, nil
}

// GetProfile returns the merged identity + role-profile view of an account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	store, ok := srv.profiles.Lookup(user.Role)
	if !ok {
		return nil, domainerrors.ErrInvalidBusinessType.WrapMessage("no profile store for role")
	}

	profile, err := store.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("role profile missing for account")
		}

		return nil, errors.Wrap(err, "failed to find role profile")
	}

	return &usecase.ProfileOutput{User: user.Sanitized(), Profile: profile}, nil
}
