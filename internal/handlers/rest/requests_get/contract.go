//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=requests_get_test
package requests_get

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
	GetRequests(ctx context.Context, filter entities.RequestFilter) ([]entities.ShipmentRequest, error)
}
