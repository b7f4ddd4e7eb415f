package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal: client - "user" для авторизованных вызовов, "addr" для анонимных.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "dispatch",
		Name:      "rate_limit_exceeded_total",
		Help:      "Requests rejected by the per-client rate limiter",
	},
	[]string{"method", "route", "client"},
)
