package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	Searches        *prometheus.CounterVec
	BatchSize       prometheus.Histogram
	SearchLatency   prometheus.Histogram
	BookingsCreated *prometheus.CounterVec
	RateLimited     prometheus.Counter
	LimiterErrors   prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "transitbook_searches_total",
		Help: "Searches served, by transport type and ordering.",
	}, []string{"type", "ordering"})
	batchSize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "transitbook_offers_per_batch",
		Buckets: prometheus.LinearBuckets(5, 1, 4),
	})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "transitbook_search_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	bookings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "transitbook_bookings_created_total",
	}, []string{"type"})
	limited := prometheus.NewCounter(prometheus.CounterOpts{Name: "transitbook_rate_limited_total"})
	limiterErrors := prometheus.NewCounter(prometheus.CounterOpts{Name: "transitbook_rate_limiter_errors_total"})

	r.MustRegister(searches, batchSize, latency, bookings, limited, limiterErrors)
	return &Registry{
		reg:             r,
		Searches:        searches,
		BatchSize:       batchSize,
		SearchLatency:   latency,
		BookingsCreated: bookings,
		RateLimited:     limited,
		LimiterErrors:   limiterErrors,
	}
}

// Gatherer exposes the underlying registry, mostly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
