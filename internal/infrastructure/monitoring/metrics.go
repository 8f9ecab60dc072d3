package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GriffinCanCode/CatOS/backend/internal/domain/session"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

var _ session.Observer = (*Metrics)(nil)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Desktop metrics
	Attention     prometheus.Gauge
	Priority      *prometheus.GaugeVec
	WindowsOpen   prometheus.Gauge
	LogEntries    *prometheus.CounterVec
	ProcessLoad   *prometheus.GaugeVec
	Crashes       prometheus.Counter
	CrashProgress prometheus.Gauge
	Zoomies       prometheus.Counter
	Notifications prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	startTime time.Time
}

// NewMetrics creates a collector backed by its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catos_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catos_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catos_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catos_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Desktop metrics
		Attention: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catos_attention",
				Help: "Current attention span, 0 to 100",
			},
		),
		Priority: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "catos_priority",
				Help: "Current priority, 1 for the active one",
			},
			[]string{"priority"},
		),
		WindowsOpen: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catos_windows_open",
				Help: "Number of open windows",
			},
		),
		LogEntries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catos_log_entries_total",
				Help: "Total number of log panel entries by severity",
			},
			[]string{"severity"},
		),
		ProcessLoad: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "catos_process_load",
				Help: "Load of each pseudo-process",
			},
			[]string{"process"},
		),
		Crashes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "catos_crashes_total",
				Help: "Total number of crash sequences started",
			},
		),
		CrashProgress: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catos_crash_progress",
				Help: "Progress of the running crash sequence",
			},
		),
		Zoomies: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "catos_zoomies_total",
				Help: "Total number of zoomies bursts",
			},
		),
		Notifications: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "catos_notifications_total",
				Help: "Total number of toast notifications",
			},
		),

		// WebSocket metrics
		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catos_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catos_ws_messages_total",
				Help: "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "catos_uptime_seconds",
			Help: "Backend uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	m.Attention.Set(types.MaxAttention)
	m.OnPriorityChanged(types.PriorityFood)

	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// IncWSConnections increments WebSocket connections
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
}

// DecWSConnections decrements WebSocket connections
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
}
