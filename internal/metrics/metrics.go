// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starwars_api_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "starwars_api_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	FavoritesAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starwars_api_favorites_added_total",
			Help: "Favorites created, by target kind",
		},
		[]string{"kind"},
	)

	FavoritesRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starwars_api_favorites_removed_total",
			Help: "Favorites deleted, by target kind",
		},
		[]string{"kind"},
	)
)

var LogstashRecordsDropped = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "starwars_api_logstash_records_dropped_total",
		Help: "Log records not delivered to Logstash, by reason",
	},
	[]string{"reason"},
)
