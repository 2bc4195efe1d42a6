package handler

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"cakeshop/config"
	"cakeshop/internal/domain/service"
	mockservice "cakeshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newImageServer(t *testing.T, cfg *config.Config) (*testServer, *mockservice.MockImageStore) {
	t.Helper()

	store := mockservice.NewMockImageStore(t)
	srv := newTestServer(t, uuid.New())
	h := NewImageHandler(ImageHandlerParams{Store: store, Config: cfg, Logger: discardLogger})
	srv.e.GET("/images/:key", h.Serve)

	return srv, store
}

func TestImageHandler_Serve(t *testing.T) {
	t.Run("streams with cache headers", func(t *testing.T) {
		srv, store := newImageServer(t, &config.Config{Storage: &config.StorageConfig{CacheMaxAge: 10 * time.Minute}})
		store.EXPECT().Open(mock.Anything, "1.jpg").Return(
			io.NopCloser(strings.NewReader("jpeg-bytes")),
			&service.ImageAttributes{ContentType: "image/jpeg", Size: 10, ETag: `"abc"`},
			nil,
		)

		rec, _ := srv.do(t, http.MethodGet, "/images/1.jpg", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "public, max-age=600", rec.Header().Get(echo.HeaderCacheControl))
		assert.Equal(t, `"abc"`, rec.Header().Get("ETag"))
		assert.Equal(t, "jpeg-bytes", rec.Body.String())
	})

	t.Run("missing image", func(t *testing.T) {
		srv, store := newImageServer(t, &config.Config{})
		store.EXPECT().Open(mock.Anything, "nope.jpg").Return(nil, nil, service.ErrImageNotFound)

		rec, env := srv.do(t, http.MethodGet, "/images/nope.jpg", "", "")
		assertErrorCode(t, rec, env, http.StatusNotFound, "IMAGE_NOT_FOUND")
	})
}
