package main

import (
	"context"
	"log/slog"
	"os"

	"cakeshop/config"
	"cakeshop/internal/delivery"
	"cakeshop/internal/domain/service"
	"cakeshop/internal/infra/persistence/gormstore"
	"cakeshop/internal/infra/storage"
	"cakeshop/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var serveAutoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		fx.New(
			injectInfra(),
			injectService(),
			injectUsecase(),
			injectMiddleware(),
			injectHandler(),
			injectDelivery(),
			fx.Invoke(
				prepareDatabase,
				prepareImages,
				startServer,
			),
		).Run()

		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveAutoMigrate, "auto-migrate", false, "migrate the schema before serving")
}

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type prepareDatabaseParams struct {
	fx.In
	fx.Lifecycle

	DB        *gorm.DB
	CatalogUC usecase.CatalogUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// prepareDatabase migrates and seeds after the pool is up. Hooks run in
// registration order, so this runs after the database ping.
func prepareDatabase(params prepareDatabaseParams) {
	seed := params.Config.Catalog != nil && params.Config.Catalog.SeedOnStart
	if !serveAutoMigrate && !seed {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if serveAutoMigrate {
				if err := gormstore.AutoMigrate(ctx, params.DB); err != nil {
					return err
				}
				params.Logger.Info("Schema migrated")
			}
			if seed {
				inserted, err := params.CatalogUC.SeedCatalog(ctx)
				if err != nil {
					return err
				}
				params.Logger.Info("Catalog seeded", slog.Int("inserted", inserted))
			}

			return nil
		},
	})
}

type prepareImagesParams struct {
	fx.In
	fx.Lifecycle

	Images service.ImageStore
	Config *config.Config
	Logger *slog.Logger
}

// prepareImages uploads storage.seedDir into the image bucket before serving.
func prepareImages(params prepareImagesParams) {
	if params.Config.Storage == nil || params.Config.Storage.SeedDir == "" {
		return
	}
	dir := params.Config.Storage.SeedDir

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			uploaded, err := storage.UploadDir(ctx, params.Images, dir)
			if err != nil {
				return err
			}
			params.Logger.Info("Catalog images uploaded", slog.String("dir", dir), slog.Int("uploaded", uploaded))

			return nil
		},
	})
}

// startServer launches every delivery once the start hooks before it have succeeded.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
