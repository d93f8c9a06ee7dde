//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_delete_test
package rate_delete

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
	DeleteRate(ctx context.Context, id int64) error
}
