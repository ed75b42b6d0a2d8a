package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bazaar_client",
			Name:      "requests_total",
			Help:      "API calls issued, by operation and HTTP status (\"error\" when no response).",
		},
		[]string{"operation", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bazaar_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of a single API call.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
