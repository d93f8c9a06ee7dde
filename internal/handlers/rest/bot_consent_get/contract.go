//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bot_consent_get_test
package bot_consent_get

import (
	"context"

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
	GetConsent(ctx context.Context, telegramID int64) (bool, error)
}
