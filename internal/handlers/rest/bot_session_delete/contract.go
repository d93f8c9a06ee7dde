//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bot_session_delete_test
package bot_session_delete

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
	DeleteSession(ctx context.Context, telegramID int64) error
}
