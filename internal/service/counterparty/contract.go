//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=counterparty_test
package counterparty

import (
	"context"

	"crm/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, counterpartyModify entities.CounterpartyModify) (int64, error)
	Update(ctx context.Context, counterpartyModify entities.CounterpartyModify) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entities.Counterparty, error)
	GetAll(ctx context.Context) ([]entities.Counterparty, error)
	SetContacts(ctx context.Context, counterpartyID int64, clientIDs []int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
