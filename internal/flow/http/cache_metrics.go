package http

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	cacheMetricsMu          sync.Mutex
	cacheMetricsInitialized bool

	cacheHitCounter   prometheus.Counter
	cacheMissCounter  prometheus.Counter
	buildHistogram    prometheus.Histogram
	cacheMetricsError error
)

// SetupCacheMetrics registers Prometheus metrics for the statement cache.
// The registration is performed once and subsequent calls are ignored.
func SetupCacheMetrics(reg prometheus.Registerer) error {
	cacheMetricsMu.Lock()
	defer cacheMetricsMu.Unlock()
	if cacheMetricsInitialized {
		return cacheMetricsError
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	hits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "finflow_statement_cache_hits_total",
		Help: "Number of statement requests served from cache.",
	})
	misses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "finflow_statement_cache_miss_total",
		Help: "Number of statement requests that required a build.",
	})
	builds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "finflow_statement_build_duration_seconds",
		Help:    "Duration required to build financial statements.",
		Buckets: prometheus.DefBuckets,
	})
	cacheHitCounter = registerCounter(reg, hits)
	cacheMissCounter = registerCounter(reg, misses)
	buildHistogram, cacheMetricsError = registerHistogram(reg, builds)
	cacheMetricsInitialized = true
	return cacheMetricsError
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter) prometheus.Counter {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
		return nil
	}
	return c
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return h, nil
}

func recordCacheHit() {
	if cacheHitCounter != nil {
		cacheHitCounter.Inc()
	}
}

func recordCacheMiss() {
	if cacheMissCounter != nil {
		cacheMissCounter.Inc()
	}
}

func observeBuildDuration(d time.Duration) {
	if buildHistogram != nil {
		buildHistogram.Observe(d.Seconds())
	}
}
