//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_post_test
package invoice_post

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
	CreateInvoice(ctx context.Context, create entities.InvoiceCreate) (*entities.Invoice, error)
}
