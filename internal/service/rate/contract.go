//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_test
package rate

import (
	"context"

	"crm/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, rateModify entities.PriceRateModify) (*entities.PriceRate, error)
	Update(ctx context.Context, rateModify entities.PriceRateModify) (*entities.PriceRate, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entities.PriceRate, error)
	GetByCityID(ctx context.Context, cityID int64) ([]entities.PriceRate, error)
}

type CityService interface {
	GetCity(ctx context.Context, id int64) (*entities.City, error)
}
