package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eterno_memorial_api_requests_total",
			Help: "Outbound backend requests by method, operation and status code",
		},
		[]string{"method", "operation", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eterno_memorial_api_request_duration_seconds",
			Help:    "Outbound backend request latency by method and operation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "operation"},
	)

	IngestedFilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eterno_memorial_ingested_files_total",
			Help: "Files pushed through the media ingestion pipeline by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)
