//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_delete_test
package schedule_delete

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
	DeleteEntry(ctx context.Context, id int64) error
}
