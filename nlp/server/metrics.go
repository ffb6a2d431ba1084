package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	phrases  prometheus.Histogram
}

// newMetrics registers the service collectors on a fresh registry so that
// several apps can live in one process.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rake_http_requests_total",
				Help: "HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rake_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		phrases: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rake_keyword_phrases",
				Help:    "Candidate phrases ranked per extraction.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
	m.registry.MustRegister(
		m.requests,
		m.latency,
		m.phrases,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}
