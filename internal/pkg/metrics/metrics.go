package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects the front end's Prometheus metrics.
type Metrics struct {
	PagesRendered    *prometheus.CounterVec
	BookingsTotal    *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	UpstreamErrors   prometheus.Counter
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PagesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stayfront_pages_rendered_total",
			Help: "Property pages rendered by outcome",
		}, []string{"outcome"}),

		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stayfront_bookings_total",
			Help: "Booking submissions by result",
		}, []string{"result"}),

		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stayfront_upstream_request_duration_seconds",
			Help:    "Duration of upstream API calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		UpstreamErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "stayfront_upstream_errors_total",
			Help: "Total number of failed upstream calls",
		}),

		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "stayfront_property_cache_hits_total",
			Help: "Property cache hits",
		}),

		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "stayfront_property_cache_misses_total",
			Help: "Property cache misses",
		}),
	}
}

// NewDefault registers against the default registry, for production wiring.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
