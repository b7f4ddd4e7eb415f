package realtime

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/gateway/http/broker"
	"dispatch/pkg/logger"
)

const DefaultPublishTimeout = 2 * time.Second

type publication struct {
	channel string
	event   Event
}

type Notifier struct {
	gateway Gateway
	log     notifierLogger
	timeout time.Duration
	now     func() time.Time
}

func New(log notifierLogger, gateway Gateway, publishTimeout time.Duration) *Notifier {
	if publishTimeout <= 0 {
		publishTimeout = DefaultPublishTimeout
	}

	return &Notifier{
		gateway: gateway,
		log:     log.With(logger.NewField("component", "realtime")),
		timeout: publishTimeout,
		now:     time.Now,
	}
}

// MissionAssigned: канал миссии, канал водителя и урезанное событие в status.
func (n *Notifier) MissionAssigned(ctx context.Context, m *entities.Mission, driver *entities.User) {
	now := n.now()
	event := assignmentEvent(m, driver, now)

	pubs := []publication{{channel: broker.MissionChannel(m.ID), event: event}}
	if m.DriverID != nil {
		pubs = append(pubs, publication{channel: broker.DriverChannel(*m.DriverID), event: event})
	}
	pubs = append(pubs, publication{channel: broker.StatusChannel, event: globalStatusEvent(m, now)})

	n.settle(n.fanOut(ctx, m, EventAssignment, pubs))
}

// MissionStatusChanged используется для забора, перевозки, доставки и отмены.
func (n *Notifier) MissionStatusChanged(ctx context.Context, m *entities.Mission) {
	now := n.now()
	pubs := []publication{
		{channel: broker.MissionChannel(m.ID), event: statusEvent(m, now)},
		{channel: broker.StatusChannel, event: globalStatusEvent(m, now)},
	}

	n.settle(n.fanOut(ctx, m, EventStatus, pubs))
}

// DriverLocation публикуется только в канал миссии.
func (n *Notifier) DriverLocation(ctx context.Context, m *entities.Mission, location entities.Location) {
	pubs := []publication{
		{channel: broker.MissionChannel(m.ID), event: locationEvent(m, location, n.now())},
	}

	n.settle(n.fanOut(ctx, m, EventLocation, pubs))
}

// fanOut не зависит от отмены входящего запроса: транзакция уже закоммичена,
// а ответ клиенту ограничен только таймаутом публикации.
func (n *Notifier) fanOut(ctx context.Context, m *entities.Mission, kind EventType, pubs []publication) Report {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	report := Report{
		Event:     kind,
		MissionID: m.ID,
		Outcomes:  make([]Outcome, 0, len(pubs)),
	}
	for _, p := range pubs {
		report.Outcomes = append(report.Outcomes, Outcome{
			Channel: p.channel,
			Err:     n.gateway.Publish(ctx, p.channel, p.event),
		})
	}
	return report
}

func (n *Notifier) settle(report Report) {
	failed := report.Failed()
	if len(failed) == 0 {
		return
	}

	log := n.log.With(
		logger.NewField("mission", report.MissionID.String()),
		logger.NewField("event", string(report.Event)),
	)
	for _, o := range failed {
		log.With(
			logger.NewField("channel", o.Channel),
			logger.NewField("error", o.Err),
		).Warn("realtime publish failed, event dropped")
	}
}
