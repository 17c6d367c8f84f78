package main

import (
	"context"
	"log/slog"
	"os"

	"tripdesk/config"
	"tripdesk/internal/delivery"
	"tripdesk/internal/delivery/http"
	"tripdesk/internal/delivery/http/middleware"
	"tripdesk/internal/delivery/http/router/handler"
	"tripdesk/internal/domain/service"
	"tripdesk/internal/infra/auth"
	logs "tripdesk/internal/infra/log"
	"tripdesk/internal/infra/persistence/postgres"
	"tripdesk/internal/infra/qrcode"
	"tripdesk/internal/infra/storage"
	"tripdesk/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAgentRepository,
			postgres.NewRestaurantRepository,
			postgres.NewShopRepository,
			postgres.NewActivityRepository,
			postgres.NewBookingRepository,
			postgres.NewDishRepository,
			postgres.NewProductRepository,
			postgres.NewTaskRepository,
			postgres.NewReviewRepository,
			postgres.NewReservationRepository,
			postgres.NewLocationRepository,
			postgres.NewDestinationRepository,
			postgres.NewThingsToCarryRepository,
			postgres.NewProfileRegistry,
			postgres.NewBusinessRegistry,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			newFileStore,
		),
	)
}

// newFileStore opens the blob bucket and ties its closer to the Fx lifecycle.
func newFileStore(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.FileStore, error) {
	store, closer, err := storage.NewBlobFileStore(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closer()
		},
	})

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSuperAdminService,
			impl.NewBookingService,
			impl.NewDishService,
			impl.NewProductService,
			impl.NewTaskService,
			impl.NewReviewService,
			impl.NewReservationService,
			impl.NewPartnerService,
			impl.NewPlaceService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSuperAdminHandler,
			handler.NewBookingHandler,
			handler.NewDishHandler,
			handler.NewProductHandler,
			handler.NewTaskHandler,
			handler.NewReviewHandler,
			handler.NewReservationHandler,
			handler.NewPartnerHandler,
			handler.NewPlaceHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
