package main

import (
	"context"
	"log/slog"
	"os"

	"aquatrace/config"
	"aquatrace/internal/delivery"
	"aquatrace/internal/delivery/http"
	"aquatrace/internal/delivery/http/router/handler"
	logs "aquatrace/internal/infra/log"
	"aquatrace/internal/infra/persistence/postgres"
	"aquatrace/internal/infra/reference"
	"aquatrace/internal/usecase/impl"

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
			postgres.NewTestingPointRepository,
			postgres.NewQualityParameterRepository,
			postgres.NewQualityTestRepository,
			postgres.NewDailyRecordRepository,
			postgres.NewQualityIncidentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			reference.NewHTTPReferenceClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTestingPointService,
			impl.NewQualityParameterService,
			impl.NewQualityTestService,
			impl.NewDailyRecordService,
			impl.NewQualityIncidentService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTestingPointHandler,
			handler.NewQualityParameterHandler,
			handler.NewQualityTestHandler,
			handler.NewDailyRecordHandler,
			handler.NewQualityIncidentHandler,
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
