package service

import "github.com/prometheus/client_golang/prometheus"

const metricPrefix = "aquapulse_"

var (
	fleetCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "fleet_cache_hits_total",
		Help: "Unscoped fleet aggregations served from cache",
	})
	fleetCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "fleet_cache_misses_total",
		Help: "Unscoped fleet aggregations recomputed",
	})
	fleetCacheInvalidations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "fleet_cache_invalidations_total",
		Help: "Fleet cache dirty-bit flips caused by station builds or config updates",
	})
)

func init() {
	prometheus.MustRegister(fleetCacheHits, fleetCacheMisses, fleetCacheInvalidations)
}
