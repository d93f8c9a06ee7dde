//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=line_item_test
package line_item

import (
	"context"

	"crm/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, item entities.RequestService) (*entities.RequestService, error)
	Update(ctx context.Context, item entities.RequestService) (*entities.RequestService, error)
	Delete(ctx context.Context, requestID, id int64) error
	GetByID(ctx context.Context, requestID, id int64) (*entities.RequestService, error)
	GetByRequestID(ctx context.Context, requestID int64) ([]entities.RequestService, error)
}

type RequestReader interface {
	GetByID(ctx context.Context, id int64) (*entities.ShipmentRequest, error)
}

type RateReader interface {
	GetByCityID(ctx context.Context, cityID int64) ([]entities.PriceRate, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
