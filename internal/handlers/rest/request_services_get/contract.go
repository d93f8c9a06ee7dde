//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_services_get_test
package request_services_get

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
	GetServices(ctx context.Context, requestID int64) ([]entities.RequestService, error)
}
