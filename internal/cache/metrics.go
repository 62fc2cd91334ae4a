package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localscope_cache_hits_total",
			Help: "Total number of fresh cache hits served from the store",
		},
		[]string{"kind"},
	)

	cacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localscope_cache_misses_total",
			Help: "Total number of lookups that fell through to a live provider fetch",
		},
		[]string{"kind"},
	)

	cacheEvictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localscope_cache_evictions_total",
			Help: "Total number of stale batches deleted before a re-fetch",
		},
		[]string{"kind"},
	)
)
