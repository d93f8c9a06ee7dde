//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"

	"crm/internal/entities"
	"crm/pkg/logger"
)

type Repository interface {
	GetPending(ctx context.Context, limit uint64) ([]entities.OutboxMessage, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, reason string) error
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
