//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_put_test
package rate_put

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
	UpdateRate(ctx context.Context, rateModify entities.PriceRateModify) (*entities.PriceRate, error)
}
