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

// placeService implements the PlaceUsecase interface.
type placeService struct {
	locationRepo    repository.LocationRepository
	destinationRepo repository.DestinationRepository
	thingsRepo      repository.ThingsToCarryRepository
	logger          *slog.Logger
}

// PlaceServiceParams holds dependencies for placeService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	LocationRepo    repository.LocationRepository
	DestinationRepo repository.DestinationRepository
	ThingsRepo      repository.ThingsToCarryRepository
	Logger          *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		locationRepo:    params.LocationRepo,
		destinationRepo: params.DestinationRepo,
		thingsRepo:      params.ThingsRepo,
		logger:          params.Logger,
	}
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Locations ---

func (srv *placeService) CreateLocation(ctx context.Context, input usecase.LocationInput) (*entity.Location, error) {
	location := &entity.Location{
		ID:        uuid.New(),
		Name:      input.Name,
		MapURL:    input.MapURL,
		IframeURL: input.IframeURL,
	}

	if err := srv.locationRepo.Create(ctx, location); err != nil {
		srv.log(ctx).Error("Failed to create location", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create location")
	}

	return location, nil
}

func (srv *placeService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("location not found")
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

func (srv *placeService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := srv.locationRepo.List(ctx)

	return locations, errors.Wrap(err, "failed to list locations")
}

func (srv *placeService) ListLocationOptions(ctx context.Context) ([]repository.LocationOption, error) {
	options, err := srv.locationRepo.ListOptions(ctx)

	return options, errors.Wrap(err, "failed to list location options")
}

func (srv *placeService) UpdateLocation(ctx context.Context, id uuid.UUID, input usecase.LocationInput) (*entity.Location, error) {
	location, err := srv.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		location.Name = input.Name
	}
	if input.MapURL != "" {
		location.MapURL = input.MapURL
	}
	if input.IframeURL != "" {
		location.IframeURL = input.IframeURL
	}

	if err := srv.locationRepo.Update(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	return location, nil
}

func (srv *placeService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	if err := srv.locationRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("location not found")
		}

		return errors.Wrap(err, "failed to delete location")
	}

	return nil
}

// --- Destinations ---

func (srv *placeService) CreateDestination(ctx context.Context, input usecase.DestinationInput) (*entity.Destination, error) {
	if _, err := srv.GetLocation(ctx, input.LocationID); err != nil {
		return nil, err
	}

	destination := &entity.Destination{
		ID:                uuid.New(),
		LocationID:        input.LocationID,
		PlaceName:         input.PlaceName,
		MapLink:           input.MapLink,
		IframeURL:         input.IframeURL,
		NearByAttractions: input.NearByAttractions,
		BestTimeToVisit:   input.BestTimeToVisit,
		ShortSummary:      input.ShortSummary,
		ImageURLs:         input.ImageURLs,
		TopDestination:    input.TopDestination,
	}

	if err := srv.destinationRepo.Create(ctx, destination); err != nil {
		srv.log(ctx).Error("Failed to create destination", slog.String("place", input.PlaceName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create destination")
	}

	return destination, nil
}

func (srv *placeService) GetDestination(ctx context.Context, id uuid.UUID) (*entity.Destination, error) {
	destination, err := srv.destinationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("destination not found")
		}

		return nil, errors.Wrap(err, "failed to find destination")
	}

	return destination, nil
}

func (srv *placeService) ListDestinations(ctx context.Context, locationID uuid.UUID) ([]*entity.Destination, error) {
	if locationID == uuid.Nil {
		destinations, err := srv.destinationRepo.List(ctx)

		return destinations, errors.Wrap(err, "failed to list destinations")
	}

	destinations, err := srv.destinationRepo.ListByLocation(ctx, locationID)

	return destinations, errors.Wrap(err, "failed to list destinations by location")
}

func (srv *placeService) UpdateDestination(ctx context.Context, id uuid.UUID, input usecase.DestinationInput) (*entity.Destination, error) {
	destination, err := srv.GetDestination(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.LocationID != uuid.Nil {
		destination.LocationID = input.LocationID
	}
	if input.PlaceName != "" {
		destination.PlaceName = input.PlaceName
	}
	if input.MapLink != "" {
		destination.MapLink = input.MapLink
	}
	if input.IframeURL != "" {
		destination.IframeURL = input.IframeURL
	}
	if input.NearByAttractions != "" {
		destination.NearByAttractions = input.NearByAttractions
	}
	if input.BestTimeToVisit != "" {
		destination.BestTimeToVisit = input.BestTimeToVisit
	}
	if input.ShortSummary != "" {
		destination.ShortSummary = input.ShortSummary
	}
	if input.ImageURLs != nil {
		destination.ImageURLs = input.ImageURLs
	}
	destination.TopDestination = input.TopDestination

	if err := srv.destinationRepo.Update(ctx, destination); err != nil {
		return nil, errors.Wrap(err, "failed to update destination")
	}

	return destination, nil
}

func (srv *placeService) DeleteDestination(ctx context.Context, id uuid.UUID) error {
	if err := srv.destinationRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("destination not found")
		}

		return errors.Wrap(err, "failed to delete destination")
	}

	return nil
}

// --- Things to carry ---

func (srv *placeService) CreateThingToCarry(ctx context.Context, input usecase.ThingToCarryInput) (*entity.ThingToCarry, error) {
	if _, err := srv.GetLocation(ctx, input.LocationID); err != nil {
		return nil, err
	}

	item := &entity.ThingToCarry{
		ID:         uuid.New(),
		LocationID: input.LocationID,
		Name:       input.Name,
	}

	if err := srv.thingsRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create packing-list item")
	}

	return item, nil
}

func (srv *placeService) ListThingsToCarry(ctx context.Context, locationID uuid.UUID) ([]*entity.ThingToCarry, error) {
	items, err := srv.thingsRepo.ListByLocation(ctx, locationID)

	return items, errors.Wrap(err, "failed to list packing-list items")
}

func (srv *placeService) UpdateThingToCarry(ctx context.Context, id uuid.UUID, input usecase.ThingToCarryInput) (*entity.ThingToCarry, error) {
	item, err := srv.thingsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrThingToCarryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("thing to carry not found")
		}

		return nil, errors.Wrap(err, "failed to find packing-list item")
	}

	if input.LocationID != uuid.Nil && input.LocationID != item.LocationID {
		if _, err := srv.GetLocation(ctx, input.LocationID); err != nil {
			return nil, err
		}
		item.LocationID = input.LocationID
	}
	if input.Name != "" {
		item.Name = input.Name
	}

	if err := srv.thingsRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update packing-list item")
	}

	return item, nil
}

func (srv *placeService) DeleteThingToCarry(ctx context.Context, id uuid.UUID) error {
	if err := srv.thingsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrThingToCarryNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("thing to carry not found")
		}

		return errors.Wrap(err, "failed to delete packing-list item")
	}

	return nil
}
