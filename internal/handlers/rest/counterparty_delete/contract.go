//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=counterparty_delete_test
package counterparty_delete

import (
	"context"

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
	DeleteCounterparty(ctx context.Context, id int64) error
}
