package driver_location

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dispatch/internal/service/mission"
	"dispatch/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	missionService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, missionService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "driver.location"),
	)

	return &Handler{
		missionService:           missionService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup фиксирует помеченные оффсеты, когда автокоммит выключен.
func (h *Handler) Cleanup(sess sarama.ConsumerGroupSession) error {
	sess.Commit()
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("driver.location: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("driver.location: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита сообщения.
// Координаты устаревают быстро, поэтому все прочие ошибки не ретраятся: сообщение помечается и пропускается.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event locationEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("driver.location handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	missionID, driverID, location, err := event.parse()
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("driver.location handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("mission", missionID.String()),
		logger.NewField("driver", driverID.String()),
		logger.NewField("offset", message.Offset),
	)

	err = h.missionService.ReportLocation(ctx, driverID, missionID, location)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.location handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, mission.ErrForbidden), errors.Is(err, mission.ErrNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.location handler rejected location for mission")

		case errors.Is(err, mission.ErrValidation), errors.Is(err, mission.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.location handler skipped location")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("driver.location handler failed to publish location")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("driver.location: published")

	sess.MarkMessage(message, "")
	return false
}
