package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	DocumentsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_created_total",
			Help: "Total documents created by kind (invoice, quotation, expense)",
		},
		[]string{"kind"},
	)

	PaymentsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "Total payments recorded against invoices",
		},
	)
)
