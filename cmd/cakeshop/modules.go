package main

import (
	"context"

	"cakeshop/config"
	"cakeshop/internal/delivery/api"
	apimiddleware "cakeshop/internal/delivery/api/middleware"
	"cakeshop/internal/delivery/api/router/handler"
	"cakeshop/internal/domain/service"
	"cakeshop/internal/infra/auth"
	"cakeshop/internal/infra/cache"
	logs "cakeshop/internal/infra/log"
	"cakeshop/internal/infra/metrics"
	"cakeshop/internal/infra/persistence/gormstore"
	"cakeshop/internal/infra/pubsub"
	"cakeshop/internal/infra/qrcode"
	"cakeshop/internal/infra/storage"
	"cakeshop/internal/usecase/impl"

	"go.uber.org/fx"
)

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormstore.New,
		gormstore.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			pubsub.NewEventPublisher,
			storage.New,
			cache.New,
			fx.Annotate(
				metrics.New,
				fx.As(fx.Self()),
				fx.As(new(service.MetricsRecorder)),
			),
		),
	)
}

// newQRCodeService reads the pickup code settings. config.New fills in the defaults.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewAccountService,
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
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewAccountHandler,
			handler.NewImageHandler,
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
		),
	)
}
