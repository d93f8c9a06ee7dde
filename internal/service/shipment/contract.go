//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"crm/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, request entities.ShipmentRequest) (*entities.ShipmentRequest, error)
	GetByID(ctx context.Context, id int64) (*entities.ShipmentRequest, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.ShipmentRequest, error)
	GetAll(ctx context.Context, filter entities.RequestFilter) ([]entities.ShipmentRequest, error)
	Update(ctx context.Context, id int64, update entities.RequestUpdate) (*entities.ShipmentRequest, error)
	UpdateStatus(ctx context.Context, id int64, status entities.RequestStatus) (*entities.ShipmentRequest, error)
}

type HistoryRepository interface {
	AddStatusEntry(ctx context.Context, entry entities.StatusHistoryEntry) (*entities.StatusHistoryEntry, error)
	AddFieldEntries(ctx context.Context, requestID int64, changes []entities.FieldChange, actor entities.Actor) error
	GetStatusHistory(ctx context.Context, requestID int64) ([]entities.StatusHistoryEntry, error)
	GetFieldHistory(ctx context.Context, requestID int64) ([]entities.FieldHistoryEntry, error)
}

type OutboxRepository interface {
	Add(ctx context.Context, message entities.OutboxMessage) error
}

type ClientService interface {
	UpsertProfile(ctx context.Context, profile entities.ClientProfile) (*entities.Client, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*entities.Client, error)
}

type CityResolver interface {
	FindCityByName(ctx context.Context, name string) (*entities.City, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
