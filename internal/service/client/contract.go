//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_test
package client

import (
	"context"

	"crm/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, profile entities.ClientProfile) (*entities.Client, error)
	SetConsent(ctx context.Context, profile entities.ClientProfile) (*entities.Client, error)
	GetByID(ctx context.Context, id int64) (*entities.Client, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*entities.Client, error)
	GetAll(ctx context.Context) ([]entities.Client, error)
}
