// Package metrics exposes Prometheus instrumentation for HTTP traffic and shop activity.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"cakeshop/config"
	"cakeshop/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const defaultNamespace = "cakeshop"

// Metrics owns a private registry so tests and multiple servers do not collide.
type Metrics struct {
	enabled  bool
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	inFlight        prometheus.Gauge

	ordersPlaced     prometheus.Counter
	orderRevenue     prometheus.Counter
	checkoutFailures *prometheus.CounterVec
	cartMutations    *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

// New builds the collectors and registers them with a fresh registry.
func New(cfg *config.Config) *Metrics {
	namespace := defaultNamespace
	enabled := false
	if cfg.Metrics != nil {
		enabled = cfg.Metrics.Enabled
		if cfg.Metrics.Namespace != "" {
			namespace = cfg.Metrics.Namespace
		}
	}

	m := &Metrics{
		enabled:  enabled,
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "orders_placed_total",
			Help:      "Orders committed by checkout.",
		}),
		orderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "order_amount_total",
			Help:      "Sum of committed order totals.",
		}),
		checkoutFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "failures_total",
			Help:      "Rejected or failed checkouts by error code.",
		}, []string{"reason"}),
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Cart writes by operation.",
		}, []string{"operation"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog_cache",
			Name:      "lookups_total",
			Help:      "Catalog cache lookups by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestTotal,
		m.inFlight,
		m.ordersPlaced,
		m.orderRevenue,
		m.checkoutFailures,
		m.cartMutations,
		m.cacheLookups,
	)

	return m
}

// Enabled reports whether /metrics should be mounted.
func (m *Metrics) Enabled() bool {
	return m.enabled
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records latency and status per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			m.requestTotal.WithLabelValues(labels...).Inc()
			m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

func (m *Metrics) OrderPlaced(total decimal.Decimal) {
	m.ordersPlaced.Inc()
	m.orderRevenue.Add(total.InexactFloat64())
}

func (m *Metrics) CheckoutFailed(reason string) {
	m.checkoutFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) CartMutation(operation string) {
	m.cartMutations.WithLabelValues(operation).Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
