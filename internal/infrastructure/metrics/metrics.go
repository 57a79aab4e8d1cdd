package metrics

import (
	"net/http"
	"strconv"
	"time"

	"b2b_sourcing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns the service's Prometheus collectors on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	QuotesSubmitted     *prometheus.CounterVec
	RequestTransitions  *prometheus.CounterVec
	OrdersMaterialized  *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

var _ interfaces.IMetricsRecorder = (*Recorder)(nil)

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		QuotesSubmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sourcing_quotes_submitted_total",
				Help: "Vendor quotes stored, by resulting quote status",
			},
			[]string{"status"},
		),
		RequestTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sourcing_request_transitions_total",
				Help: "Committed quote request status transitions",
			},
			[]string{"from", "to"},
		),
		OrdersMaterialized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sourcing_orders_materialized_total",
				Help: "Order materialization attempts, by whether a new order was created",
			},
			[]string{"created"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sourcing_http_requests_total",
				Help: "HTTP requests by route, method and status code",
			},
			[]string{"path", "method", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sourcing_http_request_duration_seconds",
				Help:    "HTTP request latency by route and method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
	}
	r.registry.MustRegister(
		r.QuotesSubmitted,
		r.RequestTransitions,
		r.OrdersMaterialized,
		r.HTTPRequestsTotal,
		r.HTTPRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) QuoteSubmitted(status string) {
	r.QuotesSubmitted.WithLabelValues(status).Inc()
}

func (r *Recorder) RequestTransition(from, to string) {
	r.RequestTransitions.WithLabelValues(from, to).Inc()
}

func (r *Recorder) OrderMaterialized(created bool) {
	r.OrdersMaterialized.WithLabelValues(strconv.FormatBool(created)).Inc()
}

// Middleware records request counts and durations per route template.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		r.HTTPRequestsTotal.WithLabelValues(path, method, strconv.Itoa(c.Writer.Status())).Inc()
		r.HTTPRequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
