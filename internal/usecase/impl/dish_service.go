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

// dishService implements the DishUsecase interface.
type dishService struct {
	dishRepo repository.DishRepository
	logger   *slog.Logger
}

// DishServiceParams holds dependencies for dishService, injected by Fx.
type DishServiceParams struct {
	fx.In

	DishRepo repository.DishRepository
	Logger   *slog.Logger
}

// NewDishService is the constructor for dishService.
func NewDishService(params DishServiceParams) usecase.DishUsecase {
	return &dishService{dishRepo: params.DishRepo, logger: params.Logger}
}

func (srv *dishService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a menu item owned by the calling restaurant.
func (srv *dishService) Create(ctx context.Context, input usecase.CreateDishInput) (*entity.Dish, error) {
	dish := &entity.Dish{
		ID:              uuid.New(),
		UserID:          input.OwnerID,
		RestaurantID:    input.OwnerID,
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		DiscountedPrice: input.DiscountedPrice,
		ImageURL:        input.ImageURL,
		Category:        input.Category,
		Filter:          input.Filter,
	}

	if err := srv.dishRepo.Create(ctx, dish); err != nil {
		srv.log(ctx).Error("Failed to create dish", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create dish")
	}

	return dish, nil
}

func (srv *dishService) Get(ctx context.Context, dishID uuid.UUID) (*entity.Dish, error) {
	dish, err := srv.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("dish not found")
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	return dish, nil
}

func (srv *dishService) List(ctx context.Context, input usecase.ListDishInput) ([]*entity.Dish, error) {
	dishes, err := srv.dishRepo.List(ctx, repository.CatalogFilter{
		ParentID: input.RestaurantID,
		Name:     input.Name,
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Filter:   input.Filter,
		Deleted:  input.Deleted,
	})

	return dishes, errors.Wrap(err, "failed to list dishes")
}

// Update patches a dish after checking the caller owns it.
func (srv *dishService) Update(ctx context.Context, input usecase.UpdateDishInput) (*entity.Dish, error) {
	dish, err := srv.ownedDish(ctx, input.DishID, input.CallerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		dish.Name = *input.Name
	}
	if input.Description != nil {
		dish.Description = *input.Description
	}
	if input.Price != nil {
		dish.Price = *input.Price
	}
	if input.DiscountedPrice != nil {
		dish.DiscountedPrice = *input.DiscountedPrice
	}
	if input.ImageURL != nil {
		dish.ImageURL = *input.ImageURL
	}
	if input.Category != nil {
		dish.Category = *input.Category
	}
	if input.Filter != nil {
		dish.Filter = input.Filter
	}
	if input.Deleted != nil {
		dish.Deleted = *input.Deleted
	}

	if err := srv.dishRepo.Update(ctx, dish); err != nil {
		return nil, errors.Wrap(err, "failed to update dish")
	}

	return dish, nil
}

// Delete permanently removes a dish after checking the caller owns it.
func (srv *dishService) Delete(ctx context.Context, dishID, callerID uuid.UUID) error {
	if _, err := srv.ownedDish(ctx, dishID, callerID); err != nil {
		return err
	}

	if err := srv.dishRepo.Delete(ctx, dishID); err != nil {
		return errors.Wrap(err, "failed to delete dish")
	}

	srv.log(ctx).Info("Dish deleted", slog.Any("dishID", dishID), slog.Any("callerID", callerID))

	return nil
}

func (srv *dishService) ownedDish(ctx context.Context, dishID, callerID uuid.UUID) (*entity.Dish, error) {
	dish, err := srv.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("dish not found")
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	if dish.UserID != callerID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return dish, nil
}
