package mission_stats

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.MissionStatus]int64, error)
}

type taskLogger interface {
	With(fields ...logger.Field) logger.Logger
}

type MissionStats struct {
	log      taskLogger
	service  Service
	interval time.Duration
	gauge    *prometheus.GaugeVec
}

func NewMissionStats(log taskLogger, service Service, interval time.Duration) *MissionStats {
	return &MissionStats{
		log:      log,
		service:  service,
		interval: interval,
		gauge:    MissionsByStatus,
	}
}

func (s *MissionStats) TTL() time.Duration {
	return s.interval
}

// Do выставляет gauge для всех статусов, отсутствующие в выборке получают 0.
func (s *MissionStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	var active int64
	for _, status := range entities.MissionStatuses {
		count := counts[status]
		s.gauge.WithLabelValues(status.String()).Set(float64(count))
		if !status.IsTerminal() {
			active += count
		}
	}

	s.log.With(
		logger.NewField("active_missions", active),
	).Info("mission stats")

	return nil
}

func (s *MissionStats) Info() string {
	return "mission stats"
}
