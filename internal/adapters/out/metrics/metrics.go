// Package metrics exposes the service's prometheus collectors on a private
// registry, so tests and the /metrics endpoint only see bakery metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bakery"

// Collector holds every metric the service publishes.
type Collector struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	aggregatesCommitted *prometheus.CounterVec
	lowStockItems       prometheus.Gauge
	expiringItems       prometheus.Gauge
	alertScans          *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		aggregatesCommitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregates_committed_total",
				Help:      "Aggregates written by committed units of work",
			},
			[]string{"kind"},
		),
		lowStockItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_low_stock_items",
			Help:      "Inventory lines below the low stock threshold at the last scan",
		}),
		expiringItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_expiring_items",
			Help:      "Ingredients expiring within the alert window at the last scan",
		}),
		alertScans: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inventory_alert_scans_total",
				Help:      "Inventory alert scans by result",
			},
			[]string{"result"},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequests,
		c.httpRequestDuration,
		c.aggregatesCommitted,
		c.lowStockItems,
		c.expiringItems,
		c.alertScans,
	)

	return c
}

// Handler serves the registry in the prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry is exposed for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveRequest records one served request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	c.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// AggregateCommitted implements postgres.CommitObserver.
func (c *Collector) AggregateCommitted(kind string) {
	c.aggregatesCommitted.WithLabelValues(kind).Inc()
}

// SetInventoryAlerts publishes the result of an inventory alert scan.
func (c *Collector) SetInventoryAlerts(lowStock, expiring int) {
	c.lowStockItems.Set(float64(lowStock))
	c.expiringItems.Set(float64(expiring))
	c.alertScans.WithLabelValues("ok").Inc()
}

func (c *Collector) InventoryScanFailed() {
	c.alertScans.WithLabelValues("error").Inc()
}
