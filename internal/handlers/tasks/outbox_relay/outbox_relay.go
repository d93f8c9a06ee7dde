package outbox_relay

import (
	"context"
	"time"

	"crm/internal/service/outbox"
	"crm/pkg/logger"
)

type Service interface {
	RelayPending(ctx context.Context) (outbox.RelayResult, error)
}

type OutboxRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	result, err := o.service.RelayPending(ctxWithTimeout)

	if result.Sent > 0 || result.Failed > 0 {
		o.log.With(
			logger.NewField("sent", result.Sent),
			logger.NewField("failed", result.Failed),
		).Info("outbox relay")
	}

	return err
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
