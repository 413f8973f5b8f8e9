// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	CacheRequests *prometheus.CounterVec
	CacheLatency  *prometheus.HistogramVec
	ProviderCalls *prometheus.CounterVec
	ProviderTime  *prometheus.HistogramVec
}

// NewCollector registers every collector on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		CacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_cache_requests_total",
				Help: "Cache lookups by backend and result (hit, miss, error).",
			},
			[]string{"cache_type", "result"},
		),
		CacheLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_cache_duration_seconds",
				Help:    "Cache operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"cache_type", "operation"},
		),
		ProviderCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_calls_total",
				Help: "External provider call attempts by outcome.",
			},
			[]string{"provider", "outcome"},
		),
		ProviderTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "provider_call_duration_seconds",
				Help:    "External provider call duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
			},
			[]string{"provider"},
		),
	}
}

// ProviderMetrics is the providers.CallObserver backed by prometheus.
type ProviderMetrics struct {
	collector *Collector
}

func NewProviderMetrics(collector *Collector) *ProviderMetrics {
	return &ProviderMetrics{collector: collector}
}

func (p *ProviderMetrics) ObserveCall(provider, outcome string, duration time.Duration) {
	p.collector.ProviderCalls.WithLabelValues(provider, outcome).Inc()
	p.collector.ProviderTime.WithLabelValues(provider).Observe(duration.Seconds())
}
