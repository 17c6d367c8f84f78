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

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	restaurantRepo repository.RestaurantRepository
	shopRepo       repository.ShopRepository
	activityRepo   repository.ActivityRepository
	logger         *slog.Logger
}

// PartnerServiceParams holds dependencies for partnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	ShopRepo       repository.ShopRepository
	ActivityRepo   repository.ActivityRepository
	Logger         *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		restaurantRepo: params.RestaurantRepo,
		shopRepo:       params.ShopRepo,
		activityRepo:   params.ActivityRepo,
		logger:         params.Logger,
	}
}

func toPartnerFilter(input usecase.PartnerListInput) repository.PartnerFilter {
	return repository.PartnerFilter{
		BusinessName: input.BusinessName,
		OwnerName:    input.OwnerName,
		City:         input.City,
		Pincode:      input.Pincode,
		Category:     input.Category,
		LocationID:   input.LocationID,
		Deleted:      input.Deleted,
	}
}

func (srv *partnerService) ListRestaurants(ctx context.Context, input usecase.PartnerListInput) ([]*entity.RestaurantProfile, error) {
	restaurants, err := srv.restaurantRepo.ListRestaurants(ctx, toPartnerFilter(input))

	return restaurants, errors.Wrap(err, "failed to list restaurants")
}

func (srv *partnerService) GetRestaurant(ctx context.Context, userID uuid.UUID) (*entity.RestaurantProfile, error) {
	restaurant, err := srv.restaurantRepo.FindRestaurant(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

func (srv *partnerService) ListShops(ctx context.Context, input usecase.PartnerListInput) ([]*entity.ShopProfile, error) {
	shops, err := srv.shopRepo.ListShops(ctx, toPartnerFilter(input))

	return shops, errors.Wrap(err, "failed to list shops")
}

func (srv *partnerService) GetShop(ctx context.Context, userID uuid.UUID) (*entity.ShopProfile, error) {
	shop, err := srv.shopRepo.FindShop(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

func (srv *partnerService) ListActivities(ctx context.Context, input usecase.PartnerListInput) ([]*entity.ActivityProfile, error) {
	activities, err := srv.activityRepo.ListActivities(ctx, toPartnerFilter(input))

	return activities, errors.Wrap(err, "failed to list activities")
}

func (srv *partnerService) GetActivity(ctx context.Context, userID uuid.UUID) (*entity.ActivityProfile, error) {
	activity, err := srv.activityRepo.FindActivity(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	return activity, nil
}

func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
