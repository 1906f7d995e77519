package main

import (
	"context"
	"log/slog"
	"os"

	"taxgrid/config"
	"taxgrid/internal/delivery"
	"taxgrid/internal/delivery/http"
	"taxgrid/internal/delivery/http/middleware"
	"taxgrid/internal/delivery/http/router/handler"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/infra/geodata"
	logs "taxgrid/internal/infra/log"
	"taxgrid/internal/infra/persistence/postgres"
	"taxgrid/internal/infra/spatial"
	"taxgrid/internal/ratetable"
	"taxgrid/internal/usecase"
	"taxgrid/internal/usecase/impl"

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
		newRateTable,
	)
}

// newRateTable loads the configured rate table, falling back to the
// built-in New York table.
func newRateTable(cfg *config.Config) (*ratetable.Table, error) {
	if cfg.Tax == nil || cfg.Tax.RateTablePath == "" {
		return ratetable.NewYork(), nil
	}

	return ratetable.Load(cfg.Tax.RateTablePath)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOrderRepository,
			newJurisdictionRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newJurisdictionRepository wires the configured boundary tolerance into the
// jurisdiction store. With boundary files configured the store is an
// in-memory spatial index seeded at startup; otherwise lookups go to the
// PostGIS jurisdiction table.
func newJurisdictionRepository(
	ctx context.Context,
	db *gorm.DB,
	cfg *config.Config,
	table *ratetable.Table,
	logger *slog.Logger,
) (repository.JurisdictionRepository, error) {
	bufferDeg := config.DefaultBufferDegrees
	if cfg.Tax != nil && cfg.Tax.BufferDegrees > 0 {
		bufferDeg = cfg.Tax.BufferDegrees
	}

	if cfg.Tax == nil || len(cfg.Tax.BoundaryPaths) == 0 {
		return postgres.NewJurisdictionRepository(db, bufferDeg), nil
	}

	store := spatial.NewStore(bufferDeg)
	loader := geodata.NewLoader(store, table, logger, cfg.Tax.SubdivideMaxPoints)
	for _, path := range cfg.Tax.BoundaryPaths {
		result, err := loader.LoadFile(ctx, path)
		if err != nil {
			return nil, err
		}

		logger.Info("Loaded jurisdiction boundaries",
			slog.String("path", path),
			slog.Int("loaded", result.Loaded),
			slog.Int("skipped", result.Skipped),
			slog.Int("failed", result.Failed),
		)
	}

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRateComposer,
			impl.NewOrderService,
			newImportService,
		),
	)
}

func newImportService(
	calculator usecase.OrderUsecase,
	txManager repository.TransactionManager,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.ImportUsecase {
	chunkSize := config.DefaultChunkSize
	if cfg.Tax != nil && cfg.Tax.ChunkSize > 0 {
		chunkSize = cfg.Tax.ChunkSize
	}

	return impl.NewImportService(calculator, txManager, logger, chunkSize)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
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
