package broker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublishFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broker_publish_failures_total",
			Help: "Total number of failed broker publications",
		},
		[]string{"channel_kind", "reason"},
	)

	PublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "broker_publish_duration_seconds",
			Help:    "Duration of broker publish requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"channel_kind", "code"},
	)
)
