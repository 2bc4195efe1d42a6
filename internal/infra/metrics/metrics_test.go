package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cakeshop/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	m := New(&config.Config{})
	assert.False(t, m.Enabled())

	m = New(&config.Config{Metrics: &config.MetricsConfig{Enabled: true, Namespace: "shop"}})
	assert.True(t, m.Enabled())
}

func TestMetrics_Recorder(t *testing.T) {
	m := New(&config.Config{})

	m.OrderPlaced(decimal.RequireFromString("1720.00"))
	m.OrderPlaced(decimal.RequireFromString("550.00"))
	m.CheckoutFailed("EMPTY_CART")
	m.CartMutation("add")
	m.CartMutation("add")
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)

	assert.InDelta(t, 2, testutil.ToFloat64(m.ordersPlaced), 0)
	assert.InDelta(t, 2270, testutil.ToFloat64(m.orderRevenue), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.checkoutFailures.WithLabelValues("EMPTY_CART")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.cartMutations.WithLabelValues("add")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")), 0)
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}})

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/products/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, target := range []string{"/api/v1/products/abc", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.InDelta(t, 1, testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "/api/v1/products/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "/boom", "418")), 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "cakeshop_http_requests_total"))
}
