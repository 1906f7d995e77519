// Command seed loads GeoJSON boundary files into the jurisdiction store.
//
// Usage:
//
//	seed [-reset] file.geojson [file.geojson ...]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"taxgrid/config"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/infra/geodata"
	logs "taxgrid/internal/infra/log"
	"taxgrid/internal/infra/persistence/postgres"
	"taxgrid/internal/ratetable"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type seedParams struct {
	fx.In
	fx.Shutdowner

	Config *config.Config
	Logger *slog.Logger
	Repo   repository.JurisdictionRepository
	Table  *ratetable.Table
}

func main() {
	reset := flag.Bool("reset", false, "delete existing jurisdictions before loading")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		slog.Error("no GeoJSON files given")
		os.Exit(1)
	}

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newRateTable,
			newJurisdictionRepository,
		),
		fx.Invoke(func(ctx context.Context, params seedParams) {
			go seed(ctx, params, files, *reset)
		}),
	).Run()
}

func seed(ctx context.Context, params seedParams, files []string, reset bool) {
	exitCode := 0
	if err := run(ctx, params, files, reset); err != nil {
		params.Logger.Error("seed failed", slog.Any("error", err))
		exitCode = 1
	}

	_ = params.Shutdown(fx.ExitCode(exitCode))
}

func run(ctx context.Context, params seedParams, files []string, reset bool) error {
	if reset {
		if err := params.Repo.DeleteAllJurisdictions(ctx); err != nil {
			return err
		}

		params.Logger.Info("Existing jurisdictions deleted")
	}

	maxPoints := config.DefaultSubdivideMaxPoints
	if params.Config.Tax != nil && params.Config.Tax.SubdivideMaxPoints > 0 {
		maxPoints = params.Config.Tax.SubdivideMaxPoints
	}

	loader := geodata.NewLoader(params.Repo, params.Table, params.Logger, maxPoints)

	for _, path := range files {
		result, err := loader.LoadFile(ctx, path)
		if err != nil {
			return err
		}

		params.Logger.Info("File loaded",
			slog.String("path", path),
			slog.Int("loaded", result.Loaded),
			slog.Int("skipped", result.Skipped),
			slog.Int("failed", result.Failed),
		)
	}

	total, err := params.Repo.CountJurisdictions(ctx)
	if err != nil {
		return err
	}

	params.Logger.Info("Seed complete", slog.Int64("jurisdictions", total))

	return nil
}

func newRateTable(cfg *config.Config) (*ratetable.Table, error) {
	if cfg.Tax == nil || cfg.Tax.RateTablePath == "" {
		return ratetable.NewYork(), nil
	}

	return ratetable.Load(cfg.Tax.RateTablePath)
}

func newJurisdictionRepository(db *gorm.DB, cfg *config.Config) repository.JurisdictionRepository {
	bufferDeg := config.DefaultBufferDegrees
	if cfg.Tax != nil && cfg.Tax.BufferDegrees > 0 {
		bufferDeg = cfg.Tax.BufferDegrees
	}

	return postgres.NewJurisdictionRepository(db, bufferDeg)
}
