//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_get_test
package invoice_get

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
	GetInvoice(ctx context.Context, id int64) (*entities.Invoice, error)
}
