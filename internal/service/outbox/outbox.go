package outbox

import (
	"context"
	"fmt"

	"crm/pkg/logger"
)

// RelayResult итог одного прохода.
type RelayResult struct {
	Sent   int
	Failed int
}

type Outbox struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
	log        serviceLogger
	batchSize  uint64
}

func New(repository Repository, publisher Publisher, txManager TxManager, log serviceLogger, batchSize int) *Outbox {
	return &Outbox{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		log:        log,
		batchSize:  uint64(batchSize),
	}
}

// RelayPending публикует пачку неотправленных сообщений. Строки заблокированы до конца
// транзакции, так что параллельные релеи берут разные сообщения. Ошибка публикации
// не прерывает проход: сообщение остается в очереди со счетчиком попыток.
func (s *Outbox) RelayPending(ctx context.Context) (RelayResult, error) {
	var result RelayResult

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		result = RelayResult{}

		messages, err := s.repository.GetPending(ctx, s.batchSize)
		if err != nil {
			return err
		}

		for _, message := range messages {
			if err := s.publisher.Publish(ctx, message.Topic, message.Key, message.Payload); err != nil {
				s.log.Warn("outbox message publish failed",
					logger.NewField("id", message.ID),
					logger.NewField("topic", message.Topic),
					logger.NewField("attempts", message.Attempts+1),
					logger.NewField("error", err),
				)

				if err := s.repository.MarkFailed(ctx, message.ID, err.Error()); err != nil {
					return err
				}
				result.Failed++
				continue
			}

			if err := s.repository.MarkSent(ctx, message.ID); err != nil {
				return err
			}
			result.Sent++
		}
		return nil
	})
	if err != nil {
		return RelayResult{}, fmt.Errorf("relay outbox: %w", err)
	}
	return result, nil
}
