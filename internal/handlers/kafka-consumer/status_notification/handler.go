package status_notification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"crm/internal/entities"
	"crm/internal/service/notification"
	"crm/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("request.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess.Context(), message)
			if shouldExit {
				return nil
			}
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("request.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing отправляет уведомление по одному событию.
// true только при отмене контекста сессии: сообщение не помечается и придет повторно.
// Ошибка отправки уведомления логируется, сообщение считается обработанным.
func (h *Handler) messageProcessing(sessCtx context.Context, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sessCtx, h.messageProcessingTimeout)
	defer cancel()

	var event entities.StatusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("request.status.changed handler received bad message")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event", event.EventID),
		logger.NewField("request", event.RequestID),
		logger.NewField("status", event.NewStatus.String()),
		logger.NewField("offset", message.Offset),
	)

	err = h.notificationService.NotifyStatusChanged(ctx, event)
	if err != nil {
		switch {
		case sessCtx.Err() != nil:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notification.ErrNoRecipient):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler event without recipient")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("request.status.changed handler failed to notify client")
		}
		return false
	}

	msgLog.Info("request.status.changed: client notified")
	return false
}
