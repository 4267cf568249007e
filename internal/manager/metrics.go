package manager

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwservices_operations_total",
			Help: "Total number of catalog operations",
		},
		[]string{"service", "op", "status"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hwservices_operation_duration_seconds",
			Help:    "Duration of catalog operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "op"},
	)

	musicListSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hwservices_music_items",
			Help: "Current number of items in the music list",
		},
	)
)

func observe(service, op string, start time.Time, err error) {
	operationDuration.WithLabelValues(service, op).Observe(time.Since(start).Seconds())
	status := "success"
	if err != nil {
		status = "error"
	}
	operationCount.WithLabelValues(service, op, status).Inc()
}
