package main

import (
	"context"
	"fmt"
	"log/slog"

	"cakeshop/config"
	"cakeshop/internal/domain/lifecycle"
	"cakeshop/internal/domain/service"
	"cakeshop/internal/errors"
	"cakeshop/internal/infra/persistence/gormstore"
	"cakeshop/internal/infra/storage"
	"cakeshop/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		var db *gorm.DB

		return runJob(cmd.Context(), fx.Populate(&db), func(ctx context.Context) error {
			if err := gormstore.AutoMigrate(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")

			return nil
		})
	},
}

var seedImagesDir string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default cakes into an empty catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			catalogUC usecase.CatalogUsecase
			images    service.ImageStore
			cfg       *config.Config
			logger    *slog.Logger
		)

		return runJob(cmd.Context(), fx.Populate(&catalogUC, &images, &cfg, &logger), func(ctx context.Context) error {
			inserted, err := catalogUC.SeedCatalog(ctx)
			if err != nil {
				return err
			}
			logger.Info("Catalog seeded", slog.Int("inserted", inserted))
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d products\n", inserted)

			dir := seedImagesDir
			if dir == "" && cfg.Storage != nil {
				dir = cfg.Storage.SeedDir
			}
			if dir == "" {
				return nil
			}

			uploaded, err := storage.UploadDir(ctx, images, dir)
			if err != nil {
				return err
			}
			logger.Info("Catalog images uploaded", slog.String("dir", dir), slog.Int("uploaded", uploaded))
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d images\n", uploaded)

			return nil
		})
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedImagesDir, "images", "", "directory of catalog images to upload (defaults to storage.seedDir)")
}

// runJob starts the infrastructure without the HTTP server, runs job and shuts down again.
func runJob(ctx context.Context, populate fx.Option, job func(ctx context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectService(),
		injectUsecase(),
		populate,
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	jobErr := job(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && jobErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return jobErr
}
