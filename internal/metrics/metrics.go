package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	LookupsProcessed *prometheus.CounterVec
	UpstreamErrors   prometheus.Counter
	RequestSeconds   *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		LookupsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "zonelookup_lookups_total",
			Help: "Total number of processed address lookups.",
		}, []string{"status"}),
		UpstreamErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "zonelookup_upstream_errors_total",
			Help: "Total number of errors received from upstream services.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zonelookup_upstream_request_duration_seconds",
			Help:    "Duration of requests to the geocoder and feature layers.",
			Buckets: prometheus.DefBuckets,
		}, []string{"target"}),
	}
}
