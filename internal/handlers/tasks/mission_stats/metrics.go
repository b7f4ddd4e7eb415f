package mission_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MissionsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "missions_by_status",
		Help: "Number of missions in each lifecycle status",
	},
	[]string{"status"},
)
