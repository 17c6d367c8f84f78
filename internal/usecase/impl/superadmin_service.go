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

// superAdminService implements the SuperAdminUsecase interface.
type superAdminService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	profiles     *repository.ProfileRegistry
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SuperAdminServiceParams holds dependencies for superAdminService, injected by Fx.
type SuperAdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Profiles     *repository.ProfileRegistry
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSuperAdminService is the constructor for superAdminService.
func NewSuperAdminService(params SuperAdminServiceParams) usecase.SuperAdminUsecase {
	return &superAdminService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		profiles:     params.Profiles,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *superAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the single SuperAdmin account. Unlike partner registration
// the account skips the approval gate and is logged in immediately.
func (srv *superAdminService) Signup(ctx context.Context, input usecase.SuperAdminSignupInput) (*usecase.SuperAdminSignupOutput, error) {
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
		Role:         entity.RoleSuperAdmin,
		Pending:      false,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		count, err := userRepo.CountByRole(ctx, entity.RoleSuperAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to count existing superadmins")
		}
		if count > 0 {
			return domainerrors.ErrSuperAdminExists
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create superadmin user")
		}

		store, ok := repoFactory.Profiles().Lookup(entity.RoleSuperAdmin)
		if !ok {
			return domainerrors.ErrInvalidBusinessType.WrapMessage("no profile store for superadmin")
		}

		return errors.Wrap(store.Create(ctx, &entity.SuperAdminProfile{UserID: user.ID}),
			"failed to create superadmin profile")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute superadmin signup transaction",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute superadmin signup transaction")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("SuperAdmin created", slog.Any("userID", user.ID))

	return &usecase.SuperAdminSignupOutput{AccessToken: token, User: user.Sanitized()}, nil
}

// ReviewRegistration approves or rejects a pending registration. Rejection
// removes the identity and its profile atomically so the email and phone
// become available for a fresh registration.
func (srv *superAdminService) ReviewRegistration(ctx context.Context, input usecase.ReviewRegistrationInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user under review")
		}

		if input.Approved {
			user.Pending = false

			return errors.Wrap(userRepo.Update(ctx, user), "failed to approve registration")
		}

		store, ok := repoFactory.Profiles().Lookup(user.Role)
		if !ok {
			return domainerrors.ErrInvalidBusinessType.WrapMessage("no profile store for role")
		}
		if err := store.DeleteByUserID(ctx, user.ID); err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to delete rejected profile")
		}

		return errors.Wrap(userRepo.Delete(ctx, user.ID), "failed to delete rejected user")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to review registration",
			slog.Any("userID", input.UserID), slog.Bool("approved", input.Approved), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute registration review transaction")
	}

	srv.log(ctx).Info("Registration reviewed",
		slog.Any("userID", input.UserID), slog.Bool("approved", input.Approved))

	return nil
}

// ListUsers returns accounts matching the filter merged with their role
// profiles. The "Partner" pseudo-role expands to the three partner roles.
func (srv *superAdminService) ListUsers(ctx context.Context, input usecase.ListUsersInput) ([]*usecase.UserView, error) {
	filter := repository.UserFilter{Pending: input.Pending, Limit: input.Limit}
	if input.Limit > 0 {
		filter.Offset = input.Index * input.Limit
	}

	switch input.Role {
	case "":
		// Every role except SuperAdmin.
	case "Partner":
		filter.Roles = entity.PartnerRoles()
	default:
		role, ok := entity.ParseRole(input.Role)
		if !ok || role == entity.RoleSuperAdmin {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role filter: " + input.Role)
		}
		filter.Roles = []entity.Role{role}
	}

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	// Batch the profile lookups per role instead of one query per user.
	idsByRole := make(map[entity.Role][]uuid.UUID)
	for _, user := range users {
		idsByRole[user.Role] = append(idsByRole[user.Role], user.ID)
	}

	profilesByUser := make(map[uuid.UUID]entity.Profile, len(users))
	for role, ids := range idsByRole {
		store, ok := srv.profiles.Lookup(role)
		if !ok {
			continue
		}

		found, err := store.FindByUserIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load role profiles")
		}
		for id, profile := range found {
			profilesByUser[id] = profile
		}
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		view := &usecase.UserView{User: user.Sanitized(), ProfileFields: map[string]any{}}
		if profile, ok := profilesByUser[user.ID]; ok {
			view.ProfileFields = profile.PublicFields()
		}
		views = append(views, view)
	}

	return views, nil
}

// identityFields maps recognized identity patch keys to a setter on the user.
var identityFields = map[string]func(*entity.User, string){
	"name":         func(u *entity.User, v string) { u.Name = v },
	"email":        func(u *entity.User, v string) { u.Email = v },
	"phone_number": func(u *entity.User, v string) { u.PhoneNumber = v },
	"phoneNumber":  func(u *entity.User, v string) { u.PhoneNumber = v },
}

// UpdateUser splits a mixed patch into identity fields and role-profile fields
// and applies both in one transaction. A password change is only accepted with
// the matching current password.
func (srv *superAdminService) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for update")
		}

		profileFields := make(map[string]any, len(input.Fields))
		touchedIdentity := false

		for key, value := range input.Fields {
			if key == "password" || key == "currentPassword" {
				continue
			}
			if setter, ok := identityFields[key]; ok {
				if text, ok := value.(string); ok {
					setter(user, text)
					touchedIdentity = true
				}

				continue
			}
			profileFields[key] = value
		}

		if newPassword, ok := input.Fields["password"].(string); ok && newPassword != "" {
			current, _ := input.Fields["currentPassword"].(string)
			if !srv.hasher.Check(current, user.PasswordHash) {
				return domainerrors.ErrCurrentPasswordIncorrect
			}

			hash, err := srv.hasher.Hash(newPassword)
			if err != nil {
				return domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
			}
			user.PasswordHash = hash
			touchedIdentity = true
		}

		if touchedIdentity {
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to update user")
			}
		}

		if len(profileFields) > 0 {
			store, ok := repoFactory.Profiles().Lookup(user.Role)
			if !ok {
				return domainerrors.ErrInvalidBusinessType.WrapMessage("no profile store for role")
			}
			if err := store.UpdateFields(ctx, user.ID, profileFields); err != nil {
				return errors.Wrap(err, "failed to update role profile")
			}
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update user", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	return updated.Sanitized(), nil
}

// DeleteUser permanently removes an account and its role profile together.
func (srv *superAdminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for deletion")
		}

		store, ok := repoFactory.Profiles().Lookup(user.Role)
		if !ok {
			return domainerrors.ErrInvalidBusinessType.WrapMessage("no profile store for role")
		}
		if err := store.DeleteByUserID(ctx, userID); err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to delete role profile")
		}

		return errors.Wrap(userRepo.Delete(ctx, userID), "failed to delete user")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", userID))

	return nil
}
