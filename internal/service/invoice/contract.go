//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_test
package invoice

import (
	"context"

	"github.com/shopspring/decimal"

	"crm/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, create entities.InvoiceCreate, total decimal.Decimal) (*entities.Invoice, error)
	GetByID(ctx context.Context, id int64) (*entities.Invoice, error)
	GetAll(ctx context.Context) ([]entities.Invoice, error)
}

type CounterpartyReader interface {
	GetByID(ctx context.Context, id int64) (*entities.Counterparty, error)
}

type RequestReader interface {
	GetByID(ctx context.Context, id int64) (*entities.ShipmentRequest, error)
}

type Renderer interface {
	Render(invoice entities.Invoice) ([]byte, error)
}

type DocumentSender interface {
	SendDocument(ctx context.Context, chatID int64, fileName string, document []byte, caption string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
