package cache

import "github.com/prometheus/client_golang/prometheus"

var (
	// cacheRequests counts reads by outcome: fresh, stale or miss.
	cacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_requests_total",
			Help: "Query cache reads by outcome.",
		},
		[]string{"outcome"},
	)

	// cacheFetchErrors counts failed upstream fetches (never cached).
	cacheFetchErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "query_cache_fetch_errors_total",
			Help: "Upstream fetches that returned an error.",
		},
	)

	// cacheEvictions counts entries dropped to honor MaxEntries.
	cacheEvictions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "query_cache_evictions_total",
			Help: "Entries evicted because the cache was full.",
		},
	)

	// cacheEntries gauges the number of live entries across all caches.
	cacheEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "query_cache_entries",
			Help: "Current number of cached query results.",
		},
	)
)

func init() {
	prometheus.MustRegister(cacheRequests, cacheFetchErrors, cacheEvictions, cacheEntries)
}
