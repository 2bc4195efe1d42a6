package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cakeshop/config"
	deliverycontext "cakeshop/internal/delivery/context"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/domain/service"
	"cakeshop/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultImageMaxAge = time.Hour

var errImageNotFound = domainerrors.NewBaseError(http.StatusNotFound, "IMAGE_NOT_FOUND", "找不到圖片")

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	Store  service.ImageStore
	Config *config.Config
	Logger *slog.Logger
}

// ImageHandler streams product images out of blob storage
type ImageHandler struct {
	store  service.ImageStore
	maxAge time.Duration
	logger *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	maxAge := defaultImageMaxAge
	if params.Config.Storage != nil && params.Config.Storage.CacheMaxAge > 0 {
		maxAge = params.Config.Storage.CacheMaxAge
	}

	return &ImageHandler{
		store:  params.Store,
		maxAge: maxAge,
		logger: params.Logger,
	}
}

// Serve writes the image stored under the :key path parameter
func (h *ImageHandler) Serve(c echo.Context) error {
	ctx := c.Request().Context()

	reader, attrs, err := h.store.Open(ctx, c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			return errImageNotFound
		}

		return errors.Wrap(err, "failed to open image")
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to close image reader", slog.Any("error", closeErr))
		}
	}()

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
	if attrs.ETag != "" {
		header.Set("ETag", attrs.ETag)
	}
	if attrs.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(attrs.Size, 10))
	}

	contentType := attrs.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	if err := c.Stream(http.StatusOK, contentType, reader); err != nil {
		return errors.Wrap(err, "failed to stream image")
	}

	return nil
}
