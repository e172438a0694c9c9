package main

import (
	"context"
	"log/slog"
	"os"

	"lifeos/config"
	"lifeos/internal/delivery"
	"lifeos/internal/delivery/api"
	apimiddleware "lifeos/internal/delivery/api/middleware"
	"lifeos/internal/delivery/api/router/handler"
	"lifeos/internal/delivery/worker"
	"lifeos/internal/errors"
	"lifeos/internal/infra/auth"
	logs "lifeos/internal/infra/log"
	"lifeos/internal/infra/metrics"
	"lifeos/internal/infra/persistence/postgres"
	"lifeos/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
		metrics.New,
		postgres.New,
		newDBPinger,
	)
}

// newDBPinger exposes the connection pool to the health check
func newDBPinger(db *gorm.DB) (handler.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB for health check")
	}

	return sqlDB, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewChallengeRepository,
			postgres.NewStudyStructureRepository,
			postgres.NewFestivalRepository,
			postgres.NewSpecialScheduleRepository,
			postgres.NewDailyScheduleRepository,
			postgres.NewLifePlanRepository,
			postgres.NewTransactionRepository,
			postgres.NewDiaryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewChallengeService,
			impl.NewStudyService,
			impl.NewFestivalService,
			impl.NewSpecialScheduleService,
			impl.NewTimetableService,
			impl.NewLifePlanService,
			impl.NewTransactionService,
			impl.NewDiaryService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewChallengeHandler,
			handler.NewStudyHandler,
			handler.NewFestivalHandler,
			handler.NewScheduleHandler,
			handler.NewLifeHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSessionJanitor,
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
