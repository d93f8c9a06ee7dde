//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"
	"time"

	"crm/internal/entities"
)

type Repository interface {
	Get(ctx context.Context, telegramID int64) (*entities.BotSession, error)
	Save(ctx context.Context, botSession entities.BotSession, ttl time.Duration) error
	Delete(ctx context.Context, telegramID int64) error
}
