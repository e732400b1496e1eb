package providers

import (
	"time"
	"watd/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncEventsReceived()
	ObserveFlushDuration(duration time.Duration)
	SetTableRows(table string, count int)
	IncFetchTotal(mode, status string)
	IncCacheHits()
	IncCacheMisses()
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	eventsReceived  prometheus.Counter
	flushDuration   prometheus.Histogram
	tableRows       *prometheus.GaugeVec
	fetchTotal      *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncEventsReceived() {
	m.eventsReceived.Inc()
}

func (m *MetricsProvider) ObserveFlushDuration(duration time.Duration) {
	m.flushDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetTableRows(table string, count int) {
	m.tableRows.WithLabelValues(table).Set(float64(count))
}

func (m *MetricsProvider) IncFetchTotal(mode, status string) {
	m.fetchTotal.WithLabelValues(mode, status).Inc()
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "watd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		eventsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "watd_input_events_total",
			Help: "Total number of input activity events received",
		}),

		flushDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "watd_flush_duration_seconds",
			Help:    "Duration of activity table flushes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		tableRows: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "watd_table_rows",
			Help: "Row count per persisted table",
		}, []string{"table"}),

		fetchTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watd_order_fetch_total",
			Help: "Order-count pulls by mode and outcome",
		}, []string{"mode", "status"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "watd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "watd_cache_misses_total",
			Help: "Total number of cache misses",
		}),
	}

	return m
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncEventsReceived()                               {}
func (n *noopMetrics) ObserveFlushDuration(_ time.Duration)             {}
func (n *noopMetrics) SetTableRows(_ string, _ int)                     {}
func (n *noopMetrics) IncFetchTotal(_, _ string)                        {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
