//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"
	"time"

	"crm/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, cityID int64, deliveryDate time.Time, acceptDays string) (*entities.ScheduleEntry, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]entities.ScheduleEntry, error)
	GetDestinations(ctx context.Context) ([]string, error)
}
