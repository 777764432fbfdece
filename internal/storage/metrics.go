package storage

import "github.com/prometheus/client_golang/prometheus"

const metricPrefix = "aquapulse_"

var (
	stationBuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "station_builds_total",
		Help: "Station records built from scratch (repository cache misses)",
	})
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "station_cache_hits_total",
		Help: "Station reads served from the memoized record",
	})
	configUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "station_config_updates_total",
		Help: "Station config updates applied",
	})
	cachedStations = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: metricPrefix + "stations_cached",
		Help: "Station records currently held in memory",
	})
)

func init() {
	prometheus.MustRegister(stationBuilds, cacheHits, configUpdates, cachedStations)
}
