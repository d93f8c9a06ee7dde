//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=counterparty_patch_test
package counterparty_patch

import (
	"context"

	"crm/internal/entities"
	"crm/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateCounterparty(ctx context.Context, counterpartyModify entities.CounterpartyModify) (*entities.Counterparty, error)
}
