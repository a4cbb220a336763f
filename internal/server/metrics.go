package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generateRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_analyzer_generate_requests_total",
		Help: "Generate requests by transport and outcome.",
	}, []string{"transport", "outcome"})

	generateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "product_analyzer_generate_duration_seconds",
		Help:    "End-to-end generate latency, dominated by the completion call.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	}, []string{"transport"})
)

const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid_argument"
	outcomeInternal = "internal"
)
